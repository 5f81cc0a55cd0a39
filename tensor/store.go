// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// Store owns tensor allocation and tracks live tensors.
//
// Store provides:
//   - Constructors mirroring the package-level ones (New, Zeros, Rand, ...)
//   - Allocation counters via Allocations(), Releases(), Live(), LiveBytes()
//   - An optional per-tensor size cap via MaxElements
//
// Most users allocate from DefaultStore through the package-level
// functions. A private store is useful to verify that code releases
// everything it allocates.
//
// Example:
//
//	s := tensor.NewStore()
//	x, _ := s.Ones(tensor.Shape{2, 3})
//	x.Release()
//	fmt.Println(s.Live()) // 0
type Store = tensor.Store

// DefaultStore backs the package-level constructors.
var DefaultStore = tensor.DefaultStore

// NewStore creates an empty store with no size limit.
func NewStore() *Store {
	return tensor.NewStore()
}
