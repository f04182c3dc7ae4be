// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlsolve/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{128, 256, 512}

// sinks to defeat dead-code elimination
var (
	sinkM *matrix.Dense
	sinkV []float64
)

func BenchmarkMatVec(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 1337)
			x := onesVec(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				y, err := matrix.MatVec(A, x)
				if err != nil {
					b.Fatal(err)
				}
				sinkV = y
			}
		})
	}
}

func BenchmarkSubScaledRow(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, 2, n)
			fillDenseRand(b, A, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				// alternate sign so values stay bounded
				if err := A.SubScaledRow(1, 0, float64(1-2*(i&1))*0.5); err != nil {
					b.Fatal(err)
				}
			}
			sinkM = A
		})
	}
}

func BenchmarkAugment(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := mustDense(b, n, n)
			fillDenseRand(b, A, 4242)
			rhs := onesVec(n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Augment(A, rhs)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
