package tensor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_1D(t *testing.T) {
	x, err := NewStore().New([]float64{1, -2.5, 1.0 / 3}, Shape{3})
	require.NoError(t, err)
	assert.Equal(t, "tensor([1.00000000, -2.50000000, 0.33333333])", x.String())
}

func TestString_2D(t *testing.T) {
	x, err := NewStore().New([]float64{1, 2, 3, 4}, Shape{2, 2})
	require.NoError(t, err)

	want := "tensor([\n" +
		"    [1.00000000, 2.00000000],\n" +
		"    [3.00000000, 4.00000000]\n" +
		"])"
	assert.Equal(t, want, x.String())
}

func TestString_3D(t *testing.T) {
	x, err := NewStore().Arange(Shape{2, 1, 2})
	require.NoError(t, err)

	want := "tensor([\n" +
		"    [\n" +
		"        [0.00000000, 1.00000000]\n" +
		"    ],\n" +
		"    [\n" +
		"        [2.00000000, 3.00000000]\n" +
		"    ]\n" +
		"])"
	assert.Equal(t, want, x.String())
}

func TestString_NilAndReleased(t *testing.T) {
	var x *Tensor
	assert.Equal(t, "Tensor is NULL", x.String())

	y, err := NewStore().Ones(Shape{2})
	require.NoError(t, err)
	y.Release()
	assert.Equal(t, "Tensor is not initialized properly", y.String())

	assert.Equal(t, "Tensor is not initialized properly", (&Tensor{}).String())
}

func TestFprint(t *testing.T) {
	x, err := NewStore().New([]float64{19, 22, 43, 50}, Shape{2, 2})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, x))
	assert.Equal(t, x.String()+"\n", buf.String())

	buf.Reset()
	require.NoError(t, Fprint(&buf, nil))
	assert.Equal(t, "Tensor is NULL\n", buf.String())
}
