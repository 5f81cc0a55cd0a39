package tensor

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// New creates a tensor from a flat row-major slice.
// The slice is copied into the tensor's memory.
func (s *Store) New(data []float64, shape Shape) (*Tensor, error) {
	if data == nil {
		klog.Error("tensor: data is nil")
		return nil, errors.Wrap(ErrInvalidArgument, "data is nil")
	}
	t, err := s.alloc(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != len(t.data) {
		t.Release()
		err = errors.Wrapf(ErrInvalidArgument, "shape %v requires %d elements, but got %d",
			shape, shape.NumElements(), len(data))
		klog.Errorf("tensor: %v", err)
		return nil, err
	}
	copy(t.data, data)
	return t, nil
}

// Empty creates a tensor whose contents are unspecified; callers are
// expected to overwrite every element.
func (s *Store) Empty(shape Shape) (*Tensor, error) {
	return s.alloc(shape)
}

// Zeros creates a tensor filled with zeros.
func (s *Store) Zeros(shape Shape) (*Tensor, error) {
	// Data is already zero-initialized by make()
	return s.alloc(shape)
}

// Ones creates a tensor filled with ones.
func (s *Store) Ones(shape Shape) (*Tensor, error) {
	return s.Full(shape, 1)
}

// Full creates a tensor filled with a specific value.
func (s *Store) Full(shape Shape, value float64) (*Tensor, error) {
	t, err := s.alloc(shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = value
	}
	return t, nil
}

// Randn creates a tensor of standard-normal samples drawn with r.
func (s *Store) Randn(shape Shape, r *RNG) (*Tensor, error) {
	t, err := s.alloc(shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = r.Normal(0, 1)
	}
	return t, nil
}

// Rand creates a tensor of samples uniformly distributed in [0, 1) drawn with r.
func (s *Store) Rand(shape Shape, r *RNG) (*Tensor, error) {
	t, err := s.alloc(shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = r.Uniform(0, 1)
	}
	return t, nil
}

// New creates a tensor from a Go slice in the default store.
//
// Example:
//
//	t, err := tensor.New([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func New(data []float64, shape Shape) (*Tensor, error) {
	return DefaultStore.New(data, shape)
}

// Empty creates an uninitialized tensor in the default store.
func Empty(shape Shape) (*Tensor, error) {
	return DefaultStore.Empty(shape)
}

// Zeros creates a tensor filled with zeros in the default store.
func Zeros(shape Shape) (*Tensor, error) {
	return DefaultStore.Zeros(shape)
}

// Ones creates a tensor filled with ones in the default store.
func Ones(shape Shape) (*Tensor, error) {
	return DefaultStore.Ones(shape)
}

// Full creates a tensor filled with value in the default store.
func Full(shape Shape, value float64) (*Tensor, error) {
	return DefaultStore.Full(shape, value)
}

// Randn creates a tensor with values from a normal distribution (mean=0, std=1).
// Uses Box-Muller transform for generating normal distribution.
//
// Example:
//
//	t, _ := tensor.Randn(tensor.Shape{100, 100})
func Randn(shape Shape) (*Tensor, error) {
	return DefaultStore.Randn(shape, defaultRNG)
}

// Rand creates a tensor with values uniformly distributed in [0, 1).
func Rand(shape Shape) (*Tensor, error) {
	return DefaultStore.Rand(shape, defaultRNG)
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
func Arange(shape Shape) (*Tensor, error) {
	return DefaultStore.Arange(shape)
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
func (s *Store) Arange(shape Shape) (*Tensor, error) {
	t, err := s.alloc(shape)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = float64(i)
	}
	return t, nil
}
