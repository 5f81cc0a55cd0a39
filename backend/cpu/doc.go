// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - Broadcasted batched matrix multiplication
//   - Rank padding of lower-rank operands
//   - Optional goroutine fan-out within a batch or across batches
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndarray/backend/cpu"
//	    "github.com/born-ml/ndarray/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.Randn(tensor.Shape{8, 64, 32})
//	    b, _ := tensor.Randn(tensor.Shape{32, 16})
//	    c, _ := backend.MatMul(a, b) // (8, 64, 16)
//	}
//
// # Parallelism
//
// By default the (row, column) cells of each output matrix are split into
// contiguous chunks, one goroutine per chunk. With BatchParallel set,
// whole batches are distributed instead. Both paths produce identical
// results since every cell reduces over the inner dimension in the same
// order.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
