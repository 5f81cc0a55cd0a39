// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"io"

	"github.com/born-ml/ndarray/internal/tensor"
)

// Type aliases for public API

// Tensor is a dense, contiguous, row-major n-dimensional float64 array.
// It exclusively owns its shape and data.
type Tensor = tensor.Tensor

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// ShapeError describes a dimension conflict between two matmul operands.
type ShapeError = tensor.ShapeError

// RNG draws uniform and normal samples.
type RNG = tensor.RNG

// Error categories, to be matched with errors.Is.
var (
	ErrInvalidArgument      = tensor.ErrInvalidArgument
	ErrInvalidRank          = tensor.ErrInvalidRank
	ErrShapeIncompatible    = tensor.ErrShapeIncompatible
	ErrIncompatibleInnerDim = tensor.ErrIncompatibleInnerDim
	ErrAllocation           = tensor.ErrAllocation
)

// New creates a tensor from a flat row-major slice. The slice is copied.
//
// Example:
//
//	x, err := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
func New(data []float64, shape Shape) (*Tensor, error) {
	return tensor.New(data, shape)
}

// Empty creates a tensor with unspecified contents.
func Empty(shape Shape) (*Tensor, error) {
	return tensor.Empty(shape)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape) (*Tensor, error) {
	return tensor.Zeros(shape)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape) (*Tensor, error) {
	return tensor.Ones(shape)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64) (*Tensor, error) {
	return tensor.Full(shape, value)
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
func Arange(shape Shape) (*Tensor, error) {
	return tensor.Arange(shape)
}

// Randn creates a tensor of standard-normal samples (Box-Muller).
func Randn(shape Shape) (*Tensor, error) {
	return tensor.Randn(shape)
}

// Rand creates a tensor of samples uniformly distributed in [0, 1).
func Rand(shape Shape) (*Tensor, error) {
	return tensor.Rand(shape)
}

// Uniform returns a sample in [low, high), or NaN if low > high.
func Uniform(low, high float64) float64 {
	return tensor.Uniform(low, high)
}

// Normal returns a sample from N(mean, stddev²).
func Normal(mean, stddev float64) float64 {
	return tensor.Normal(mean, stddev)
}

// Seed reseeds the package-level generator.
func Seed(seed uint64) {
	tensor.Seed(seed)
}

// NewRNG creates an independent generator with a fixed seed.
func NewRNG(seed uint64) *RNG {
	return tensor.NewRNG(seed)
}

// Print writes the nested-bracket rendering of t to standard output.
func Print(t *Tensor) {
	tensor.Print(t)
}

// Fprint writes the nested-bracket rendering of t to w.
func Fprint(w io.Writer, t *Tensor) error {
	return tensor.Fprint(w, t)
}
