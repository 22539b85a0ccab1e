// SPDX-License-Identifier: MIT
// Package cholesky_test contains shared fixtures for the factorization tests.

package cholesky_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdsolve/matrix"
)

// Tolerances for double-precision checks on well-scaled inputs.
const (
	tolExact    = 1e-12 // hand-computed factors with exact binary entries
	tolResidual = 1e-9  // reconstruction and residual checks
)

// hide wraps any Matrix to hide its concrete type, forcing the At/Set fallback
// paths in code that type-switches on *matrix.Dense.
type hide struct{ matrix.Matrix }

// classicSPD is the textbook 3×3 example with the integer factor
// L = [[2,0,0],[6,1,0],[-8,5,3]].
var (
	classicSPD = [][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	}
	classicL = [][]float64{
		{2, 0, 0},
		{6, 1, 0},
		{-8, 5, 3},
	}
)

// mustRows builds a *matrix.Dense from rows or fails the test.
func mustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// randomSPD returns A = M·Mᵀ + n·I with M uniform in [-1,1); well conditioned by construction.
func randomSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i, raw := 0, m.Data(); i < len(raw); i++ {
		raw[i] = 2*rng.Float64() - 1
	}
	mt, err := matrix.Transpose(m)
	require.NoError(t, err)
	prod, err := matrix.Mul(m, mt)
	require.NoError(t, err)
	a := prod.(*matrix.Dense)
	for i := 0; i < n; i++ {
		a.Data()[i*n+i] += float64(n)
	}

	return a
}

// randomRHS returns an n×m matrix with entries uniform in [-5,5).
func randomRHS(t testing.TB, n, m int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b, err := matrix.NewDense(n, m)
	require.NoError(t, err)
	for i, raw := 0, b.Data(); i < len(raw); i++ {
		raw[i] = 10*rng.Float64() - 5
	}

	return b
}

// requireClose asserts max|got − want| ≤ tol element-wise.
func requireClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	diff, err := matrix.MaxAbsDiff(got, want)
	require.NoError(t, err)
	require.LessOrEqualf(t, diff, tol, "max abs diff %g exceeds %g\nwant:\n%v\ngot:\n%v", diff, tol, want, got)
}

// reconstruct returns L·Lᵗ.
func reconstruct(t testing.TB, l matrix.Matrix) matrix.Matrix {
	t.Helper()
	lt, err := matrix.Transpose(l)
	require.NoError(t, err)
	a, err := matrix.Mul(l, lt)
	require.NoError(t, err)

	return a
}
