package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/tensor"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "ndarray "+version+"\n", out)
}

func TestMatMulCmd(t *testing.T) {
	out, err := run(t, "matmul", "--a", "2,2", "--b", "2,2", "--init", "arange")
	require.NoError(t, err)

	assert.Contains(t, out, "a (2, 2):\n")
	assert.Contains(t, out, "a @ b (2, 2):\n")
	// [[0,1],[2,3]] @ [[0,1],[2,3]] = [[2,3],[6,11]]
	assert.Contains(t, out, "tensor([\n    [2.00000000, 3.00000000],\n    [6.00000000, 11.00000000]\n])\n")
}

func TestMatMulCmd_BatchParallel(t *testing.T) {
	out, err := run(t, "matmul", "--a", "1,2,3", "--b", "4,3,5", "--init", "ones",
		"--workers", "2", "--batch-parallel")
	require.NoError(t, err)
	assert.Contains(t, out, "a @ b (4, 2, 5):\n")
	assert.Contains(t, out, "3.00000000")
}

func TestMatMulCmd_Errors(t *testing.T) {
	_, err := run(t, "matmul", "--a", "2,2,2", "--b", "3,2,2", "--init", "ones")
	assert.ErrorIs(t, err, tensor.ErrShapeIncompatible)

	_, err = run(t, "matmul", "--init", "bogus")
	assert.Error(t, err)

	_, err = run(t, "matmul", "--a", "2,0")
	assert.ErrorIs(t, err, tensor.ErrInvalidArgument)
}

func TestRandCmd(t *testing.T) {
	first, err := run(t, "rand", "--shape", "2,2", "--seed", "5")
	require.NoError(t, err)
	second, err := run(t, "rand", "--shape", "2,2", "--seed", "5")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "tensor([\n")

	normal, err := run(t, "rand", "--shape", "3", "--normal")
	require.NoError(t, err)
	assert.Contains(t, normal, "tensor([")
}
