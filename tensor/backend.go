// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/ndarray/internal/tensor"

// Backend defines the interface that compute backends implement.
//
// Implementations:
//   - backend/cpu: Pure Go, optionally parallel
//
// Example:
//
//	import (
//	    "github.com/born-ml/ndarray/tensor"
//	    "github.com/born-ml/ndarray/backend/cpu"
//	)
//
//	backend := cpu.New()
//	c, err := tensor.MatMul(a, b, backend)
type Backend = tensor.Backend

// MatMul performs broadcasted batched matrix multiplication on backend.
func MatMul(a, b *Tensor, backend Backend) (*Tensor, error) {
	return tensor.MatMul(a, b, backend)
}
