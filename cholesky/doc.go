// Package cholesky factors symmetric positive-definite matrices as A = L·Lᵗ
// and uses the factor to solve linear systems and form inverses.
//
// A Cholesky value is built either by Decompose, which runs the row-oriented
// recursion over the lower triangle of A, or by New, which adopts a factor
// computed elsewhere. After construction the factor never changes:
//
//	ch, err := cholesky.Decompose(a)
//	if err != nil {
//		var npd *cholesky.NotPositiveDefiniteError
//		if errors.As(err, &npd) {
//			// npd.Row is the first leading minor that is not positive
//		}
//		return err
//	}
//	err = ch.SolveVec(b) // b now holds x with A·x = b
//
// Solve, SolveVec and SolveParallel overwrite their right-hand side in place.
// Inverse allocates its own identity and returns a fresh matrix.
//
// Failures are reported, never papered over: a non-positive pivot yields
// NotPositiveDefiniteError, a wrongly shaped right-hand side yields
// DimensionMismatchError, a solution that overflows to Inf or NaN yields
// ErrNonFiniteSolution (the right-hand side is left unmodified in both cases),
// and a backend that is not linked into the build yields
// ErrUnsupportedOperation at construction.
package cholesky
