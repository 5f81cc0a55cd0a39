package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/born-ml/ndarray/backend/cpu"
	"github.com/born-ml/ndarray/tensor"
)

// initializers maps --init values to tensor constructors.
var initializers = map[string]func(tensor.Shape) (*tensor.Tensor, error){
	"zeros":  tensor.Zeros,
	"ones":   tensor.Ones,
	"rand":   tensor.Rand,
	"randn":  tensor.Randn,
	"arange": tensor.Arange,
}

func newMatMulCmd() *cobra.Command {
	var (
		aShape, bShape []int
		initName       string
		seed           uint64
		workers        int
		batchParallel  bool
	)

	cmd := &cobra.Command{
		Use:   "matmul",
		Short: "Multiply two generated tensors and print the operands and result",
		Example: `  ndarray matmul --a 2,3 --b 3,4 --init arange
  ndarray matmul --a 1,2,3 --b 4,3,5 --init randn --seed 7 --batch-parallel`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			newTensor, ok := initializers[initName]
			if !ok {
				return errors.Errorf("unknown --init %q", initName)
			}
			tensor.Seed(seed)

			a, err := newTensor(tensor.Shape(aShape))
			if err != nil {
				return errors.WithMessage(err, "operand a")
			}
			defer a.Release()
			b, err := newTensor(tensor.Shape(bShape))
			if err != nil {
				return errors.WithMessage(err, "operand b")
			}
			defer b.Release()

			cfg := cpu.DefaultConfig()
			if workers > 0 {
				cfg.Parallel.NumWorkers = workers
				cfg.Parallel.Enabled = workers > 1
			}
			cfg.BatchParallel = batchParallel
			backend := cpu.New(cpu.WithConfig(cfg))

			c, err := backend.MatMul(a, b)
			if err != nil {
				return err
			}
			defer c.Release()

			return printAll(cmd.OutOrStdout(), []string{"a", "b", "a @ b"}, a, b, c)
		},
	}

	cmd.Flags().IntSliceVar(&aShape, "a", []int{2, 3}, "shape of the left operand")
	cmd.Flags().IntSliceVar(&bShape, "b", []int{3, 4}, "shape of the right operand")
	cmd.Flags().StringVar(&initName, "init", "arange", "operand initializer: zeros, ones, rand, randn, arange")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().IntVar(&workers, "workers", 0, "worker goroutines (0 = number of CPUs)")
	cmd.Flags().BoolVar(&batchParallel, "batch-parallel", false, "distribute whole batches instead of output cells")
	return cmd
}

func newRandCmd() *cobra.Command {
	var (
		shape  []int
		normal bool
		seed   uint64
	)

	cmd := &cobra.Command{
		Use:   "rand",
		Short: "Print a tensor of random samples",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tensor.Seed(seed)
			newTensor := tensor.Rand
			if normal {
				newTensor = tensor.Randn
			}
			t, err := newTensor(tensor.Shape(shape))
			if err != nil {
				return err
			}
			defer t.Release()
			return tensor.Fprint(cmd.OutOrStdout(), t)
		},
	}

	cmd.Flags().IntSliceVar(&shape, "shape", []int{2, 3}, "tensor shape")
	cmd.Flags().BoolVar(&normal, "normal", false, "draw from N(0, 1) instead of U[0, 1)")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func printAll(w io.Writer, names []string, ts ...*tensor.Tensor) error {
	for i, t := range ts {
		if _, err := fmt.Fprintf(w, "%s %v:\n", names[i], t.Shape()); err != nil {
			return err
		}
		if err := tensor.Fprint(w, t); err != nil {
			return err
		}
	}
	return nil
}
