package cpu

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// MatMul performs broadcasted batched matrix multiplication.
//
//	(..., M, K) @ (..., K, N) -> (broadcast(...), M, N)
//
// Both operands need at least 2 dimensions. The operand of lower rank is
// aligned by prepending size-1 dimensions, then the leading (batch)
// dimensions broadcast NumPy-style while the trailing two contract.
// The result is a freshly allocated tensor owned by the caller; on error
// nothing is allocated.
//
// Example:
//
//	a, _ := tensor.New([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
//	b, _ := tensor.New([]float64{5, 6, 7, 8}, tensor.Shape{2, 2})
//	c, _ := backend.MatMul(a, b) // [[19, 22], [43, 50]]
func (cpu *CPUBackend) MatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	if a == nil || b == nil || a.Released() || b.Released() {
		return nil, fail(errors.Wrap(tensor.ErrInvalidArgument, "matmul: operand is nil or released"))
	}

	aShape, bShape := a.Shape(), b.Shape()
	if len(aShape) < 2 || len(bShape) < 2 {
		return nil, fail(errors.Wrapf(tensor.ErrInvalidRank,
			"matmul: both tensors must have at least 2 dimensions, got %d and %d", len(aShape), len(bShape)))
	}
	if aShape[len(aShape)-1] != bShape[len(bShape)-2] {
		return nil, fail(&tensor.ShapeError{
			Op: "matmul", Dim: len(aShape) - 1, A: aShape, B: bShape, Kind: tensor.ErrIncompatibleInnerDim,
		})
	}

	// Rank padding only affects shape bookkeeping: a leading size-1
	// dimension never contributes to a buffer offset.
	ndim := max(len(aShape), len(bShape))
	aPadded := aShape.PadLeft(ndim)
	bPadded := bShape.PadLeft(ndim)

	outShape, err := tensor.ResolveMatMulShape(aPadded, bPadded)
	if err != nil {
		return nil, fail(err)
	}

	result, err := cpu.store.Empty(outShape)
	if err != nil {
		return nil, fail(errors.WithMessage(err, "matmul: failed to create result tensor"))
	}

	m := aPadded[ndim-2]
	k := aPadded[ndim-1]
	n := bPadded[ndim-1]

	cpu.batchMatmul(result.Data(), a.Data(), b.Data(), outShape, batchStrides(aPadded), batchStrides(bPadded), m, k, n)

	return result, nil
}

// BatchMatMul performs batched matrix multiplication.
// It is the same operation as MatMul, which already handles any number
// of (broadcast) batch dimensions.
//
// For 3D: [B, M, K] @ [B, K, N] -> [B, M, N]
// For 4D: [B, H, M, K] @ [B, H, K, N] -> [B, H, M, N]
func (cpu *CPUBackend) BatchMatMul(a, b *tensor.Tensor) (*tensor.Tensor, error) {
	return cpu.MatMul(a, b)
}

// MustMatMul is like MatMul but panics on error.
func (cpu *CPUBackend) MustMatMul(a, b *tensor.Tensor) *tensor.Tensor {
	c, err := cpu.MatMul(a, b)
	if err != nil {
		panic(err)
	}
	return c
}

// batchMatmul runs the per-batch kernel over every output batch.
func (cpu *CPUBackend) batchMatmul(c, a, b []float64, outShape tensor.Shape, stridesA, stridesB []int, m, k, n int) {
	batchSize := outShape.BatchSize()
	sizeA, sizeB, sizeC := m*k, k*n, m*n

	run := func(batch int, cfg parallel.Config) {
		offA, offB := batchOffsets(batch, outShape, stridesA, stridesB)
		matmulFloat64(
			c[batch*sizeC:(batch+1)*sizeC],
			a[offA*sizeA:(offA+1)*sizeA],
			b[offB*sizeB:(offB+1)*sizeB],
			m, k, n, cfg,
		)
	}

	cfg := cpu.config
	if cfg.BatchParallel && cfg.Parallel.Enabled && batchSize > 1 {
		klog.V(2).Infof("matmul: %v, %d batches of (%d,%d)x(%d,%d), batch-parallel", outShape, batchSize, m, k, k, n)
		// Kernels never fail, so neither does the group.
		_ = parallel.ForEach(batchSize, func(batch int) error {
			run(batch, parallel.Sequential())
			return nil
		}, cfg.Parallel)
		return
	}

	klog.V(2).Infof("matmul: %v, %d batches of (%d,%d)x(%d,%d)", outShape, batchSize, m, k, k, n)
	for batch := 0; batch < batchSize; batch++ {
		run(batch, cfg.Parallel)
	}
}

// matmulFloat64 computes c = a @ b for one (M, K) x (K, N) batch.
// The collapsed (i, j) space is split into contiguous chunks; each cell
// is reduced over k in increasing order, so the result does not depend
// on the partitioning.
func matmulFloat64(c, a, b []float64, m, k, n int, cfg parallel.Config) {
	parallel.ForRange(m*n, func(start, end int) {
		for idx := start; idx < end; idx++ {
			i, j := idx/n, idx%n
			row := a[i*k : (i+1)*k]
			sum := float64(0)
			for kIdx, av := range row {
				sum += av * b[kIdx*n+j]
			}
			c[idx] = sum
		}
	}, cfg)
}

// fail logs a diagnostic at the point of failure and returns err unchanged.
func fail(err error) error {
	klog.Errorf("%v", err)
	return err
}
