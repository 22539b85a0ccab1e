// SPDX-License-Identifier: MIT
// Package cholesky: error taxonomy.
//
// Sentinels are matched with errors.Is; the two structured failures
// (NotPositiveDefiniteError, DimensionMismatchError) carry diagnostics and
// unwrap to their sentinel so both errors.Is and errors.As work.

package cholesky

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/spdsolve/matrix"
)

var (
	// ErrNotPositiveDefinite is the sentinel behind NotPositiveDefiniteError.
	ErrNotPositiveDefinite = errors.New("cholesky: matrix is not positive definite")

	// ErrUnsupportedOperation marks a primitive this build cannot perform.
	// Operations fail with it instead of substituting another computation.
	ErrUnsupportedOperation = errors.New("cholesky: operation not supported")

	// ErrSingularFactor is returned by solves on an injected factor whose
	// diagonal holds a zero or non-finite entry.
	ErrSingularFactor = errors.New("cholesky: factor has a zero or non-finite diagonal entry")

	// ErrNonFiniteSolution is returned when substitution overflows or produces
	// NaN; the right-hand side is left unmodified.
	ErrNonFiniteSolution = errors.New("cholesky: solution has a NaN or Inf entry")

	// ErrNilFactor is returned when a method is called on a nil or zero-value *Cholesky.
	ErrNilFactor = errors.New("cholesky: nil factorization")
)

// NotPositiveDefiniteError reports the first row whose diagonal radicand
// A[i,i] − Σ_{k<i} L[i,k]² was not strictly positive (or was NaN).
type NotPositiveDefiniteError struct {
	Row      int     // zero-based row index of the failing leading minor
	Radicand float64 // the offending value (≤ 0 or NaN)
}

func (e *NotPositiveDefiniteError) Error() string {
	return fmt.Sprintf("cholesky: matrix is not positive definite: row %d has radicand %g", e.Row, e.Radicand)
}

// Unwrap returns ErrNotPositiveDefinite.
func (e *NotPositiveDefiniteError) Unwrap() error { return ErrNotPositiveDefinite }

// DimensionMismatchError reports an operand whose shape disagrees with the factor.
// It unwraps to matrix.ErrDimensionMismatch so callers can match the
// collaborator's sentinel as well.
type DimensionMismatchError struct {
	Op                 string // operation tag (Decompose, New, Solve, ...)
	WantRows, WantCols int    // shape implied by the factor
	GotRows, GotCols   int    // shape actually supplied
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("cholesky: %s: row dimensions do not agree: want %d x %d, got %d x %d",
		e.Op, e.WantRows, e.WantCols, e.GotRows, e.GotCols)
}

// Unwrap returns matrix.ErrDimensionMismatch.
func (e *DimensionMismatchError) Unwrap() error { return matrix.ErrDimensionMismatch }

// choleskyErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func choleskyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
