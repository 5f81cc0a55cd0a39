// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/interop"
)

// ToDense copies a 2D tensor into a new gonum dense matrix.
//
// Example:
//
//	m, err := tensor.ToDense(x)
//	fmt.Println(mat.Formatted(m))
func ToDense(t *Tensor) (*mat.Dense, error) {
	return interop.ToDense(t)
}

// FromDense copies a gonum matrix into a new 2D tensor in DefaultStore.
func FromDense(m mat.Matrix) (*Tensor, error) {
	return interop.FromDense(DefaultStore, m)
}

// BatchDense copies the b-th matrix of a tensor with rank >= 2 into a gonum
// dense matrix, flattening all leading dimensions into one batch axis.
func BatchDense(t *Tensor, b int) (*mat.Dense, error) {
	return interop.Batch(t, b)
}
