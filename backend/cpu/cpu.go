// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/ndarray/internal/backend/cpu"
	"github.com/born-ml/ndarray/internal/parallel"
	"github.com/born-ml/ndarray/tensor"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Config controls how the CPU backend schedules work.
type Config = internalcpu.Config

// ParallelConfig controls goroutine fan-out.
type ParallelConfig = parallel.Config

// Option configures a Backend.
type Option = internalcpu.Option

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	backend := cpu.New(cpu.WithConfig(cpu.Config{
//	    Parallel:      cpu.DefaultParallelConfig(),
//	    BatchParallel: true,
//	}))
func New(opts ...Option) *Backend {
	return internalcpu.New(opts...)
}

// DefaultConfig returns intra-batch parallelism sized to the CPU count.
func DefaultConfig() Config {
	return internalcpu.DefaultConfig()
}

// DefaultParallelConfig returns goroutine fan-out sized to the CPU count.
func DefaultParallelConfig() ParallelConfig {
	return parallel.DefaultConfig()
}

// SequentialConfig runs every kernel on the calling goroutine.
func SequentialConfig() Config {
	return Config{Parallel: parallel.Sequential()}
}

// WithConfig sets the scheduling configuration.
func WithConfig(cfg Config) Option {
	return internalcpu.WithConfig(cfg)
}

// WithStore allocates results from s instead of tensor.DefaultStore.
func WithStore(s *tensor.Store) Option {
	return internalcpu.WithStore(s)
}
