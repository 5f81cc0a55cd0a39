// Package cpu implements the CPU backend for dense float64 tensors.
package cpu

import (
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/internal/tensor"
)

// Config controls how the CPU backend schedules work.
type Config struct {
	// Parallel controls fan-out of the (i, j) loops inside one batch.
	Parallel parallel.Config

	// BatchParallel computes independent batches concurrently instead of
	// splitting each batch's kernel. Batches write disjoint output regions.
	BatchParallel bool
}

// DefaultConfig returns intra-batch parallelism sized to the CPU count.
func DefaultConfig() Config {
	return Config{Parallel: parallel.DefaultConfig()}
}

// CPUBackend implements tensor operations on CPU.
type CPUBackend struct {
	store  *tensor.Store
	config Config
}

// Option configures a CPUBackend.
type Option func(*CPUBackend)

// WithConfig sets the scheduling configuration.
func WithConfig(cfg Config) Option {
	return func(cpu *CPUBackend) {
		cpu.config = cfg
	}
}

// WithStore allocates outputs from s instead of tensor.DefaultStore.
func WithStore(s *tensor.Store) Option {
	return func(cpu *CPUBackend) {
		cpu.store = s
	}
}

// New creates a new CPU backend.
func New(opts ...Option) *CPUBackend {
	cpu := &CPUBackend{
		store:  tensor.DefaultStore,
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(cpu)
	}
	return cpu
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Config returns the scheduling configuration.
func (cpu *CPUBackend) Config() Config {
	return cpu.config
}

// Store returns the store outputs are allocated from.
func (cpu *CPUBackend) Store() *tensor.Store {
	return cpu.store
}
