// Package interop converts between tensors and gonum matrices.
package interop

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/tensor"
)

// ToDense copies a rank-2 tensor into a new gonum dense matrix.
func ToDense(t *tensor.Tensor) (*mat.Dense, error) {
	if t == nil || t.Released() {
		return nil, errors.Wrap(tensor.ErrInvalidArgument, "interop: tensor is nil or released")
	}
	if t.NDim() != 2 {
		return nil, errors.Wrapf(tensor.ErrInvalidRank, "interop: expected a 2D tensor, got shape %v", t.Shape())
	}
	shape := t.Shape()
	data := make([]float64, t.NumElements())
	copy(data, t.Data())
	return mat.NewDense(shape[0], shape[1], data), nil
}

// FromDense copies any gonum matrix into a new rank-2 tensor allocated in s.
func FromDense(s *tensor.Store, m mat.Matrix) (*tensor.Tensor, error) {
	r, c := m.Dims()
	data := lo.FlatMap(lo.Range(r), func(i, _ int) []float64 {
		return lo.Map(lo.Range(c), func(j, _ int) float64 {
			return m.At(i, j)
		})
	})
	return s.New(data, tensor.Shape{r, c})
}

// Batch returns the b-th matrix of a tensor of rank >= 2 as a gonum
// matrix, treating all leading dimensions as one flattened batch axis.
func Batch(t *tensor.Tensor, b int) (*mat.Dense, error) {
	if t == nil || t.Released() {
		return nil, errors.Wrap(tensor.ErrInvalidArgument, "interop: tensor is nil or released")
	}
	shape := t.Shape()
	if len(shape) < 2 {
		return nil, errors.Wrapf(tensor.ErrInvalidRank, "interop: expected at least 2 dimensions, got %v", shape)
	}
	if b < 0 || b >= shape.BatchSize() {
		return nil, errors.Wrapf(tensor.ErrInvalidArgument, "interop: batch %d out of range for shape %v", b, shape)
	}
	rows, cols := shape[len(shape)-2], shape[len(shape)-1]
	size := rows * cols
	data := make([]float64, size)
	copy(data, t.Data()[b*size:(b+1)*size])
	return mat.NewDense(rows, cols, data), nil
}
