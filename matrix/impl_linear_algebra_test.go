// Package matrix_test contains unit tests for the verification kernels
// (Add, Sub, Mul, Transpose, MatVec, AllClose, MaxAbsDiff).
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdsolve/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{{3, 3}, {6, 2}} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			for _, v := range m.Data() {
				require.Zero(t, v)
			}
		})
	}
}

func TestAddSub(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{10, 20}, {30, 40}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum)

	diff, err := matrix.Sub(b, a)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{9, 18}, {27, 36}}, diff)

	// Fallback path agrees with the flat loop.
	slow, err := matrix.Add(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, sum.(*matrix.Dense).ToRows(), slow)

	_, err = matrix.Add(a, MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})

	want := [][]float64{{58, 64}, {139, 154}}
	got, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, got)

	got, err = matrix.Mul(hide{a}, b)
	require.NoError(t, err)
	CompareExact(t, want, got)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMul_RandomFastEqualsFallback(t *testing.T) {
	t.Parallel()

	a := MustDense(t, 5, 4)
	b := MustDense(t, 4, 6)
	RandomFill(t, a, 1)
	RandomFill(t, b, 2)

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)

	d, err := matrix.MaxAbsDiff(fast, slow)
	require.NoError(t, err)
	assert.LessOrEqual(t, d, 1e-14)
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	at, err := matrix.Transpose(a)
	require.NoError(t, err)
	CompareExact(t, want, at)

	at, err = matrix.Transpose(hide{a})
	require.NoError(t, err)
	CompareExact(t, want, at)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})
	y, err := matrix.MatVec(a, []float64{1, -1})
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, -1, -1}, y)

	y, err = matrix.MatVec(hide{a}, []float64{2, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 6, 10}, y)

	_, err = matrix.MatVec(a, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{1, 2}, {3, 4 + 1e-10}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = matrix.AllClose(a, b, 0, 1e-12)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = matrix.AllClose(hide{a}, b, 1e-9, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = matrix.AllClose(a, b, math.Inf(1), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.AllClose(a, MustDense(t, 1, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestMaxAbsDiff(t *testing.T) {
	t.Parallel()

	a := MustRows(t, [][]float64{{1, 2}, {3, 4}})
	b := MustRows(t, [][]float64{{1, 2.5}, {2, 4}})

	d, err := matrix.MaxAbsDiff(a, b)
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	d, err = matrix.MaxAbsDiff(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, 1.0, d)

	withNaN := MustDense(t, 2, 2)
	withNaN.Data()[3] = math.NaN()
	d, err = matrix.MaxAbsDiff(a, withNaN)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d))

	_, err = matrix.MaxAbsDiff(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
