package cpu

import (
	"github.com/born-ml/ndarray/internal/tensor"
)

// batchStrides computes, for an operand padded to the output rank, the
// matrix stride of each batch dimension. Dimensions of size 1 get stride 0
// so the same sub-matrix is reused along them (broadcasting).
func batchStrides(padded tensor.Shape) []int {
	nb := len(padded) - 2
	strides := make([]int, nb)

	stride := 1
	for i := nb - 1; i >= 0; i-- {
		if padded[i] != 1 {
			strides[i] = stride
		}
		stride *= padded[i]
	}
	return strides
}

// batchOffsets decomposes the output batch index into per-dimension
// coordinates (last batch dimension fastest) and returns the matrix index
// of the corresponding sub-matrix in each operand.
func batchOffsets(batch int, outShape tensor.Shape, stridesA, stridesB []int) (offA, offB int) {
	for i := len(outShape) - 3; i >= 0; i-- {
		idx := batch % outShape[i]
		batch /= outShape[i]

		offA += idx * stridesA[i]
		offB += idx * stridesB[i]
	}
	return offA, offB
}
