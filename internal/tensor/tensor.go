// Package tensor provides the dense float64 tensor type, its shape algebra
// and the allocation and printing utilities used by the backends.
package tensor

import (
	"fmt"

	"github.com/pkg/errors"
)

// Tensor is a dense, contiguous, row-major n-dimensional array of float64.
// It exclusively owns its shape and data; there are no views.
type Tensor struct {
	shape Shape
	data  []float64
	store *Store
}

// Shape returns the tensor's shape.
// The returned slice is owned by the tensor and must not be modified.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// NDim returns the rank of the tensor.
func (t *Tensor) NDim() int {
	return len(t.shape)
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return len(t.data)
}

// Store returns the store the tensor was allocated from.
func (t *Tensor) Store() *Store {
	return t.store
}

// Data returns the tensor's buffer in row-major order.
//
// WARNING: Modifications to the returned slice will modify the tensor.
func (t *Tensor) Data() []float64 {
	return t.data
}

// Released reports whether Release has been called.
func (t *Tensor) Released() bool {
	return t.data == nil
}

// Release frees the tensor's shape and buffer and updates the store
// accounting. A tensor must be released at most once; later calls are
// ignored.
func (t *Tensor) Release() {
	if t == nil || t.data == nil {
		return
	}
	if t.store != nil {
		t.store.free(len(t.data))
	}
	t.shape = nil
	t.data = nil
}

// offset computes the flat index of the given coordinates.
// Panics if the coordinates are out of bounds.
func (t *Tensor) offset(indices []int) int {
	if len(indices) != len(t.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.shape), len(indices)))
	}

	offset := 0
	strides := t.shape.ComputeStrides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.shape[i]))
		}
		offset += idx * strides[i]
	}
	return offset
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
//
// Example:
//
//	t, _ := tensor.Zeros(tensor.Shape{3, 4})
//	value := t.At(1, 2) // Row 1, column 2
func (t *Tensor) At(indices ...int) float64 {
	return t.data[t.offset(indices)]
}

// Set sets the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) Set(value float64, indices ...int) {
	t.data[t.offset(indices)] = value
}

// Clone creates a deep copy of the tensor in the same store.
func (t *Tensor) Clone() (*Tensor, error) {
	return t.Reshape(t.shape)
}

// Reshape returns a copy of the tensor with a new shape holding the same
// number of elements.
//
// Example:
//
//	a, _ := tensor.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
//	b, _ := a.Reshape(tensor.Shape{1, 2, 3})
func (t *Tensor) Reshape(shape Shape) (*Tensor, error) {
	if t.Released() {
		return nil, errors.Wrap(ErrInvalidArgument, "reshape of a released tensor")
	}
	if shape.NumElements() != len(t.data) {
		return nil, errors.Wrapf(ErrInvalidArgument,
			"cannot reshape %v (%d elements) into %v", t.shape, len(t.data), shape)
	}
	out, err := t.storeOrDefault().alloc(shape)
	if err != nil {
		return nil, err
	}
	copy(out.data, t.data)
	return out, nil
}

func (t *Tensor) storeOrDefault() *Store {
	if t.store != nil {
		return t.store
	}
	return DefaultStore
}
