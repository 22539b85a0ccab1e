// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spdsolve/matrix"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, MustDense(t, 2, 2), matrix.ErrNilMatrix},
		{"second nil", MustDense(t, 2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.want)
			}
		})
	}
}

// TestValidateSymmetric covers tolerance handling, NaN entries and the fallback path.
func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := MustRows(t, [][]float64{{4, 2, 1}, {2, 5, 3}, {1, 3, 6}})
	require.NoError(t, matrix.ValidateSymmetric(sym, 0))
	require.NoError(t, matrix.ValidateSymmetric(hide{sym}, 0))

	skew := MustRows(t, [][]float64{{1, 2}, {2.5, 1}})
	err := matrix.ValidateSymmetric(skew, 0.1)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
	require.Contains(t, err.Error(), "[0,1]")
	require.NoError(t, matrix.ValidateSymmetric(skew, 0.5))
	require.NoError(t, matrix.ValidateSymmetric(skew, -0.5), "negative tol is taken as |tol|")

	require.ErrorIs(t, matrix.ValidateSymmetric(skew, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateSymmetric(MustDense(t, 2, 3), 0), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSymmetric(nil, 0), matrix.ErrNilMatrix)

	// NaN off the diagonal never passes, whatever the tolerance.
	withNaN := MustDense(t, 2, 2)
	withNaN.Data()[1] = math.NaN()
	require.ErrorIs(t, matrix.ValidateSymmetric(withNaN, 1e300), matrix.ErrAsymmetry)

	require.NoError(t, matrix.ValidateSymmetric(MustRows(t, [][]float64{{-7}}), 0))
}

// TestValidateVecLenAndMul covers the vector and product validators.
func TestValidateVecLenAndMul(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)

	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), nil), matrix.ErrNilMatrix)
}
