package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error categories. Every error returned by this module wraps exactly one
// of these, so callers can branch with errors.Is.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInvalidRank          = errors.New("invalid rank")
	ErrShapeIncompatible    = errors.New("shapes are not compatible")
	ErrIncompatibleInnerDim = errors.New("incompatible inner dimension")
	ErrAllocation           = errors.New("allocation failed")
)

// ShapeError describes a dimension conflict between two operands.
type ShapeError struct {
	Op   string // Operation that detected the conflict (e.g. "matmul").
	Dim  int    // Offending dimension index.
	A, B Shape  // Operand shapes (rank-padded for batch conflicts).
	Kind error  // ErrShapeIncompatible or ErrIncompatibleInnerDim.
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.Kind == ErrIncompatibleInnerDim {
		na, nb := len(e.A), len(e.B)
		return fmt.Sprintf("%s: %v: (%d,%d) x (%d,%d)", e.Op, e.Kind,
			e.A[na-2], e.A[na-1], e.B[nb-2], e.B[nb-1])
	}
	return fmt.Sprintf("%s: %v at dimension %d (a[%d] = %d, b[%d] = %d)", e.Op, e.Kind,
		e.Dim, e.Dim, e.A[e.Dim], e.Dim, e.B[e.Dim])
}

// Unwrap returns the error category.
func (e *ShapeError) Unwrap() error {
	return e.Kind
}

// IsIncompatible reports whether err is any kind of shape conflict.
func IsIncompatible(err error) bool {
	return errors.Is(err, ErrShapeIncompatible) || errors.Is(err, ErrIncompatibleInnerDim)
}
