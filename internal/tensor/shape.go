package tensor

import (
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
// An empty shape has no elements since rank-0 tensors are not supported.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 0
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// NDim returns the rank of the shape.
func (s Shape) NDim() int {
	return len(s)
}

// Validate checks that the shape has at least one dimension, that every
// dimension is > 0 and that the element count fits in an int.
func (s Shape) Validate() error {
	if len(s) == 0 {
		return errors.Wrap(ErrInvalidArgument, "ndim cannot be zero")
	}
	n := 1
	for i, dim := range s {
		if dim <= 0 {
			return errors.Wrapf(ErrInvalidArgument,
				"tensor has zero elements: dimension %d is %d (must be > 0)", i, dim)
		}
		if n > math.MaxInt/dim {
			return errors.Wrapf(ErrAllocation, "element count of shape %v overflows", s)
		}
		n *= dim
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// String renders the shape as (d0, d1, ...).
func (s Shape) String() string {
	out := "("
	for i, dim := range s {
		if i > 0 {
			out += ", "
		}
		out += strconv.Itoa(dim)
	}
	return out + ")"
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// PadLeft returns a copy of s prepended with ones up to the given rank.
// The relative order of the existing dimensions is unchanged and s itself
// is never modified. A rank not above len(s) yields a plain clone.
//
// Example:
//
//	Shape{2, 3}.PadLeft(4) // (1, 1, 2, 3)
func (s Shape) PadLeft(rank int) Shape {
	if rank <= len(s) {
		return s.Clone()
	}
	padded := make(Shape, rank)
	pad := rank - len(s)
	for i := 0; i < pad; i++ {
		padded[i] = 1
	}
	copy(padded[pad:], s)
	return padded
}

// BatchSize returns the product of the leading (batch) dimensions, that is
// every dimension except the trailing two. Shapes of rank 2 have one batch.
func (s Shape) BatchSize() int {
	n := 1
	for i := 0; i < len(s)-2; i++ {
		n *= s[i]
	}
	return n
}

// ResolveMatMulShape computes the output shape of a batched matrix product.
//
// Both shapes must already be padded to the same rank (at least 2). The
// trailing two dimensions follow matrix-multiply rules: a[-1] must equal
// b[-2] and the result carries (a[-2], b[-1]). Leading dimensions follow
// NumPy broadcasting: they must be equal or one of them must be 1.
//
// Examples:
//
//	(1, 2, 3) x (4, 3, 5) → (4, 2, 5)
//	(2, 2, 2) x (3, 2, 2) → error at dimension 0
func ResolveMatMulShape(a, b Shape) (Shape, error) {
	ndim := len(a)
	if ndim != len(b) {
		return nil, errors.Wrapf(ErrInvalidRank,
			"matmul: shapes must be padded to the same rank, got %d and %d", len(a), len(b))
	}
	if ndim < 2 {
		return nil, errors.Wrapf(ErrInvalidRank,
			"matmul: both tensors must have at least 2 dimensions, got %d", ndim)
	}
	if a[ndim-1] != b[ndim-2] {
		return nil, &ShapeError{Op: "matmul", Dim: ndim - 1, A: a, B: b, Kind: ErrIncompatibleInnerDim}
	}

	out := make(Shape, ndim)
	for i := 0; i < ndim-2; i++ {
		switch {
		case a[i] == b[i], b[i] == 1:
			out[i] = a[i]
		case a[i] == 1:
			out[i] = b[i]
		default:
			return nil, &ShapeError{Op: "matmul", Dim: i, A: a, B: b, Kind: ErrShapeIncompatible}
		}
	}
	out[ndim-2] = a[ndim-2]
	out[ndim-1] = b[ndim-1]

	return out, nil
}
