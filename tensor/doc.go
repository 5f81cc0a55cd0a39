// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides dense float64 n-dimensional arrays and
// broadcasted batched matrix multiplication.
//
// # Overview
//
// Tensors are always contiguous and row-major, and every operation
// returns a freshly allocated result. This package provides:
//   - Constructors: New, Empty, Zeros, Ones, Full, Arange, Rand, Randn
//   - Printing in nested bracket notation (Print, Fprint, String)
//   - Random samplers: Uniform, Normal, RNG
//   - Allocation accounting through Store
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/ndarray/tensor"
//	    "github.com/born-ml/ndarray/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a, _ := tensor.New([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    b, _ := tensor.New([]float64{5, 6, 7, 8}, tensor.Shape{2, 2})
//
//	    c, err := tensor.MatMul(a, b, backend)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    tensor.Print(c)
//	    // tensor([
//	    //     [19.00000000, 22.00000000],
//	    //     [43.00000000, 50.00000000]
//	    // ])
//	}
//
// # Broadcasting
//
// MatMul treats the trailing two dimensions as matrices and every leading
// dimension as a batch dimension. Batch dimensions follow NumPy rules:
//
//	(1, 2, 3) @ (4, 3, 5)    → (4, 2, 5)   // A reused for every batch
//	(2, 3)    @ (4, 3, 5)    → (4, 2, 5)   // A padded to (1, 2, 3)
//	(2, 2, 2) @ (3, 2, 2)    → error       // 2 vs 3 at dimension 0
//
// # Errors
//
// Failures wrap one of ErrInvalidArgument, ErrInvalidRank,
// ErrShapeIncompatible, ErrIncompatibleInnerDim or ErrAllocation. A
// diagnostic is also logged through klog (stderr) at the point of failure.
// Uniform is the one exception: invalid bounds yield NaN.
//
// # Memory Management
//
// Go's garbage collector reclaims tensors, so Release is optional. Calling
// it keeps Store counters accurate, which tests use to detect leaks.
package tensor
