// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// AI-Hints:
//  - Use ValidateSymmetric before factorizations that read only one triangle.
//  - Use ValidateVecLen for any MatVec-like operations to avoid ad hoc length code.

package matrix

import (
	"fmt"
	"math"
)

// zeroTol is the lower bound for user-supplied tolerances.
const zeroTol = 0.0

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil. A typed nil *Dense stored in the
// interface is also rejected.
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures a and b have identical dimensions.
//
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrDimensionMismatch if not square. Assumes m is non-nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in MatVec-like routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within tolerance tol:
// |A[i,j] - A[j,i]| ≤ tol for all i<j.
//
// Inputs: square Matrix m, tolerance tol (negative values are taken as |tol|).
// Complexity: O(n^2) where n = Rows(A). Space: O(1).
// Returns ErrNilMatrix/ErrDimensionMismatch on structural issues, ErrNaNInf on bad tol,
// ErrAsymmetry on violation (the first offending pair is named in the message).
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSymmetric", ErrDimensionMismatch)
	}
	if isNonFinite(tol) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	if tol < zeroTol {
		tol = -tol
	}

	// A 1×1 matrix is trivially symmetric.
	n := m.Rows()
	if n <= 1 {
		return nil
	}

	var (
		i, j     int
		aij, aji float64
		err      error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // strict upper triangle only
			if aij, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			if aji, err = m.At(j, i); err != nil {
				return validatorErrorf("ValidateSymmetric", err)
			}
			// NaN compares false, so test the negation to reject it too.
			if !(math.Abs(aij-aji) <= tol) {
				return validatorErrorf("ValidateSymmetric", fmt.Errorf("[%d,%d]=%g vs [%d,%d]=%g: %w", i, j, aij, j, i, aji, ErrAsymmetry))
			}
		}
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}
