package interop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/ndarray/internal/tensor"
)

func TestToDense(t *testing.T) {
	s := tensor.NewStore()
	x, err := s.New([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	d, err := ToDense(x)
	require.NoError(t, err)
	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, d.At(1, 2))

	// The matrix owns a copy.
	d.Set(0, 0, 42)
	assert.Equal(t, 1.0, x.At(0, 0))
}

func TestToDense_Errors(t *testing.T) {
	s := tensor.NewStore()
	x, err := s.Ones(tensor.Shape{2, 2, 2})
	require.NoError(t, err)

	_, err = ToDense(x)
	assert.ErrorIs(t, err, tensor.ErrInvalidRank)

	_, err = ToDense(nil)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestFromDense(t *testing.T) {
	s := tensor.NewStore()
	m := mat.NewDense(2, 2, []float64{1, 2, 3, 4})

	x, err := FromDense(s, m.T())
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 2}, x.Shape())
	assert.Equal(t, []float64{1, 3, 2, 4}, x.Data())
	assert.Equal(t, int64(1), s.Live())
}

func TestBatch(t *testing.T) {
	s := tensor.NewStore()
	x, err := s.Arange(tensor.Shape{3, 2, 2})
	require.NoError(t, err)

	d, err := Batch(x, 2)
	require.NoError(t, err)
	assert.True(t, mat.Equal(mat.NewDense(2, 2, []float64{8, 9, 10, 11}), d))

	_, err = Batch(x, 3)
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
}
