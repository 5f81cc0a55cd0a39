package tensor

// Backend defines the interface that compute backends implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - CPU: Pure Go, optionally parallel over goroutines
type Backend interface {
	// MatMul performs broadcasted batched matrix multiplication.
	// Operands of rank >= 2 are aligned by prepending size-1 dimensions;
	// the leading dimensions broadcast and the trailing two contract.
	MatMul(a, b *Tensor) (*Tensor, error)

	// Name returns the backend name.
	Name() string
}

// MatMul multiplies a and b on the given backend.
//
// Example:
//
//	backend := cpu.New()
//	c, err := tensor.MatMul(a, b, backend)
func MatMul(a, b *Tensor, backend Backend) (*Tensor, error) {
	return backend.MatMul(a, b)
}
