package cmat_test

import (
	"testing"

	"github.com/katalvlaran/lvoptics/cmat"
)

// BenchmarkMat4_Mul measures the chaining kernel used once per slice.
func BenchmarkMat4_Mul(b *testing.B) {
	a := sample()
	acc := cmat.Identity4()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc = a.Mul(acc).Scale(0.1)
	}
	_ = acc
}

// BenchmarkEigen4_Complex measures the polynomial/adjugate path.
func BenchmarkEigen4_Complex(b *testing.B) {
	a := sample()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := cmat.Eigen4(a); err != nil {
			b.Fatalf("Eigen4: %v", err)
		}
	}
}

// BenchmarkExpm4 measures the fallback propagator.
func BenchmarkExpm4(b *testing.B) {
	x := sample().Scale(2i)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cmat.Expm4(x); err != nil {
			b.Fatalf("Expm4: %v", err)
		}
	}
}
