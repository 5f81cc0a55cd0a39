package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/stat"
)

func TestUniform_InvalidBounds(t *testing.T) {
	assert.True(t, math.IsNaN(Uniform(5, 1)))
	assert.True(t, math.IsNaN(NewRNG(1).Uniform(0, -1)))
}

func TestUniform_Degenerate(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, 1.0, r.Uniform(1, 1))
	}
}

func TestUniform_Range(t *testing.T) {
	r := NewRNG(11)
	samples := make([]float64, 5000)
	for i := range samples {
		samples[i] = r.Uniform(-2, 6)
		if samples[i] < -2 || samples[i] >= 6 {
			t.Fatalf("Uniform(-2, 6) = %v out of range", samples[i])
		}
	}
	assert.InDelta(t, 2.0, stat.Mean(samples, nil), 0.2)
}

func TestNormal_Moments(t *testing.T) {
	r := NewRNG(5)
	samples := make([]float64, 20000)
	for i := range samples {
		samples[i] = r.Normal(3, 2)
	}
	mean, std := stat.MeanStdDev(samples, nil)
	assert.InDelta(t, 3.0, mean, 0.1)
	assert.InDelta(t, 2.0, std, 0.1)
}

func TestNormal_ZeroStddev(t *testing.T) {
	r := NewRNG(9)
	for i := 0; i < 100; i++ {
		assert.Equal(t, -4.0, r.Normal(-4, 0))
	}
}

func TestSeed_Reproducible(t *testing.T) {
	Seed(123)
	a := []float64{Uniform(0, 1), Normal(0, 1), Uniform(0, 1)}
	Seed(123)
	b := []float64{Uniform(0, 1), Normal(0, 1), Uniform(0, 1)}
	assert.Equal(t, a, b)
}
