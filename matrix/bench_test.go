// Package matrix_test provides benchmarks for the determinant and products.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/dedekind/laurent"
	"github.com/katalvlaran/dedekind/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{4, 8, 16}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkP *laurent.Poly
)

// unitTriangular builds an n×n upper triangular matrix with z^k on the
// diagonal and small Laurent polynomials above it, then mixes rows so the
// determinant is a monomial but the matrix is full.
func unitTriangular(b *testing.B, n int) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(qz, n, n)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < n; i++ {
		_ = m.Set(i, i, qz.Monomial(qz.Field().One(), i%3))
		for j := i + 1; j < n; j++ {
			_ = m.Set(i, j, qz.MustParse(fmt.Sprintf("z^%d + %d", (i+j)%4-1, j-i)))
		}
	}
	for i := 1; i < n; i++ {
		_ = m.AddRowMultiple(i, i-1, qz.MustParse("z - 1"))
	}

	return m
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := unitTriangular(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkP = d
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := unitTriangular(b, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				p, err := matrix.Mul(m, m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = p
			}
		})
	}
}
