package tensor

import (
	"math"
	"math/rand/v2"
	"sync"

	"k8s.io/klog/v2"
)

// RNG draws uniform and normal samples for tensor initialization.
// It is safe for concurrent use.
// Note: Uses math/rand (not crypto/rand) - appropriate for ML/statistical purposes.
type RNG struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewRNG creates a generator with a fixed seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))} //nolint:gosec // G404
}

// defaultRNG backs Uniform, Normal, Rand and Randn.
var defaultRNG = &RNG{src: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))} //nolint:gosec // G404

// Seed reseeds the package-level generator so runs are reproducible.
func Seed(seed uint64) {
	r := NewRNG(seed)
	defaultRNG.mu.Lock()
	defaultRNG.src = r.src
	defaultRNG.mu.Unlock()
}

func (r *RNG) next() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}

// Uniform returns a number uniformly distributed in [low, high).
// If low > high it logs a diagnostic and returns NaN.
func (r *RNG) Uniform(low, high float64) float64 {
	if low > high {
		klog.Errorf("tensor: 'high' must be greater than or equal to 'low' in Uniform (low=%g, high=%g)", low, high)
		return math.NaN()
	}
	return low + r.next()*(high-low)
}

// Normal returns a sample from N(mean, stddev²) using the Box-Muller
// transform. The first uniform draw is never 0 so the log stays finite.
func (r *RNG) Normal(mean, stddev float64) float64 {
	r.mu.Lock()
	u1 := r.src.Float64()
	for u1 == 0 {
		u1 = r.src.Float64()
	}
	u2 := r.src.Float64()
	r.mu.Unlock()

	z0 := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
	return mean + z0*stddev
}

// Uniform draws from the package-level generator. See RNG.Uniform.
func Uniform(low, high float64) float64 {
	return defaultRNG.Uniform(low, high)
}

// Normal draws from the package-level generator. See RNG.Normal.
func Normal(mean, stddev float64) float64 {
	return defaultRNG.Normal(mean, stddev)
}
