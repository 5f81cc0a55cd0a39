package tensor

import (
	"testing"
)

func BenchmarkTensorCreation(b *testing.B) {
	s := NewStore()
	r := NewRNG(1)
	shape := Shape{100, 100}

	b.Run("Zeros", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			t, _ := s.Zeros(shape)
			t.Release()
		}
	})

	b.Run("Ones", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			t, _ := s.Ones(shape)
			t.Release()
		}
	})

	b.Run("Randn", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			t, _ := s.Randn(shape, r)
			t.Release()
		}
	})
}

func BenchmarkShapeOperations(b *testing.B) {
	shape1 := Shape{8, 1, 100, 64}
	shape2 := Shape{1, 12, 64, 100}

	b.Run("NumElements", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape1.NumElements()
		}
	})

	b.Run("ComputeStrides", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape1.ComputeStrides()
		}
	})

	b.Run("ResolveMatMulShape", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = ResolveMatMulShape(shape1, shape2)
		}
	})

	b.Run("Validate", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = shape1.Validate()
		}
	})
}

func BenchmarkString(b *testing.B) {
	t, _ := NewStore().Arange(Shape{4, 8, 8})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = t.String()
	}
}
