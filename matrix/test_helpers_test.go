// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for the kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdsolve/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense (fallback) path in code under test.
//
// AI-Hints:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a *Dense from a rectangular literal or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v))
}

// RandomFill fills m with uniform values in [-1,1) from a seeded source.
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, 2*rng.Float64()-1)
		}
	}
}

// CompareExact asserts m equals want element by element.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			require.Equalf(t, want[i][j], MustAt(t, m, i, j), "[%d,%d]", i, j)
		}
	}
}
