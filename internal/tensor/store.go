package tensor

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// bytesPerElement is the size of a float64 element.
const bytesPerElement = 8

// Store owns tensor allocation and keeps live counters so leaks can be
// detected. It is safe for concurrent use.
type Store struct {
	// MaxElements caps the size of a single buffer. Zero means unlimited.
	MaxElements int

	allocs    atomic.Int64
	releases  atomic.Int64
	liveBytes atomic.Int64
}

// DefaultStore backs the package-level constructors.
var DefaultStore = NewStore()

// NewStore creates an empty store with no size limit.
func NewStore() *Store {
	return &Store{}
}

// Allocations returns the number of tensors allocated so far.
func (s *Store) Allocations() int64 {
	return s.allocs.Load()
}

// Releases returns the number of tensors released so far.
func (s *Store) Releases() int64 {
	return s.releases.Load()
}

// Live returns the number of tensors allocated but not yet released.
func (s *Store) Live() int64 {
	return s.allocs.Load() - s.releases.Load()
}

// LiveBytes returns the buffer bytes held by live tensors.
func (s *Store) LiveBytes() int64 {
	return s.liveBytes.Load()
}

// String summarizes the counters.
func (s *Store) String() string {
	return fmt.Sprintf("Store{allocs: %d, releases: %d, live bytes: %d}",
		s.Allocations(), s.Releases(), s.LiveBytes())
}

// alloc validates the shape and allocates an uninitialized tensor record
// owned by this store.
func (s *Store) alloc(shape Shape) (*Tensor, error) {
	if shape == nil {
		klog.Error("tensor: shape is nil")
		return nil, errors.Wrap(ErrInvalidArgument, "shape is nil")
	}
	if err := shape.Validate(); err != nil {
		klog.Errorf("tensor: %v", err)
		return nil, err
	}

	n := shape.NumElements()
	if s.MaxElements > 0 && n > s.MaxElements {
		err := errors.Wrapf(ErrAllocation, "%d elements exceed store limit of %d", n, s.MaxElements)
		klog.Errorf("tensor: %v", err)
		return nil, err
	}

	data, err := makeBuffer(n)
	if err != nil {
		klog.Errorf("tensor: memory allocation failed for tensor data: %v", err)
		return nil, err
	}

	s.allocs.Add(1)
	s.liveBytes.Add(int64(n) * bytesPerElement)

	return &Tensor{
		shape: shape.Clone(),
		data:  data,
		store: s,
	}, nil
}

// free gives a tensor's buffer back to the store accounting.
func (s *Store) free(n int) {
	s.releases.Add(1)
	s.liveBytes.Add(-int64(n) * bytesPerElement)
}

// makeBuffer allocates n float64 values, turning runtime allocation
// panics into ErrAllocation.
func makeBuffer(n int) (data []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(runtime.Error); ok {
				err = errors.Wrapf(ErrAllocation, "%d elements: %v", n, rerr)
				return
			}
			panic(r)
		}
	}()
	return make([]float64, n), nil
}
