// SPDX-License-Identifier: MIT

package cholesky_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/spdsolve/cholesky"
	"github.com/katalvlaran/spdsolve/matrix"
)

var benchSizes = []int{16, 64, 256}

func BenchmarkDecompose(b *testing.B) {
	for _, n := range benchSizes {
		a := randomSPD(b, n, int64(n))
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := cholesky.Decompose(a, cholesky.WithoutSymmetryCheck()); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSolve(b *testing.B) {
	for _, n := range benchSizes {
		ch, err := cholesky.Decompose(randomSPD(b, n, int64(n)))
		if err != nil {
			b.Fatal(err)
		}
		rhs := randomRHS(b, n, n, 1)
		work := rhs.Clone().(*matrix.Dense)
		b.Run(fmt.Sprintf("n=%d/serial", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(work.Data(), rhs.Data())
				if err := ch.Solve(work); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(fmt.Sprintf("n=%d/parallel", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				copy(work.Data(), rhs.Data())
				if err := ch.SolveParallel(context.Background(), work, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
