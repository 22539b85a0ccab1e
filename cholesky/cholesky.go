// SPDX-License-Identifier: MIT
// Package cholesky - factorization kernel and accessors.
//
// Purpose:
//   - Compute A = L·Lᵗ for a symmetric positive-definite A (row-oriented recursion).
//   - Accept an externally computed L (injection) for interop.
//   - Keep L private and immutable; accessors hand out copies.
//
// AI-Hints:
//   - Pass *matrix.Dense to Decompose to read A through its flat buffer.
//   - Decompose once, then Solve as many right-hand sides as needed: O(n³) once, O(n²) per column.

package cholesky

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/spdsolve/matrix"
)

// Operation tags for error wrapping.
const (
	opDecompose     = "Decompose"
	opNew           = "New"
	opSolve         = "Solve"
	opSolveVec      = "SolveVec"
	opSolveParallel = "SolveParallel"
	opInverse       = "Inverse"
)

// Cholesky holds the lower-triangular factor L of A = L·Lᵗ.
// A *Cholesky is read-only after construction; Solve, SolveVec, SolveParallel
// and Inverse may be called concurrently provided each call owns its
// right-hand side.
type Cholesky struct {
	n        int       // dimension of A and L
	l        []float64 // row-major n×n, entries above the diagonal are zero
	injected bool      // built by New: pivots are checked before every solve
	backend  Backend
	logger   *slog.Logger
}

// Decompose factors the symmetric positive-definite matrix a.
// MAIN DESCRIPTION:
//   - Row-by-row Cholesky: for i = 0..n-1 and j ≤ i,
//     L[i,j] = (A[i,j] − Σ_{k<j} L[i,k]·L[j,k]) / L[j,j]   (j < i)
//     L[i,i] = √(A[i,i] − Σ_{k<i} L[i,k]²).
//
// Implementation:
//   - Stage 1: validate a (non-nil, square), the backend, and symmetry unless disabled.
//   - Stage 2: copy the lower triangle of a into a private buffer.
//   - Stage 3: overwrite that buffer in place with L; stop at the first radicand ≤ 0.
//
// Errors:
//   - matrix.ErrNilMatrix; *DimensionMismatchError (non-square);
//     ErrUnsupportedOperation (backend); matrix.ErrAsymmetry (symmetry check);
//     *NotPositiveDefiniteError (radicand ≤ 0 or NaN, carries the row).
//
// Complexity:
//   - Time O(n³/3), Space O(n²) for L.
//
// Notes:
//   - a is never mutated. With WithoutSymmetryCheck only entries on or below
//     the diagonal are read.
//   - On failure no factor is returned; the partially computed rows are discarded.
func Decompose(a matrix.Matrix, opts ...Option) (*Cholesky, error) {
	o := gatherOptions(opts)
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, choleskyErrorf(opDecompose, err)
	}
	if a.Rows() != a.Cols() {
		return nil, &DimensionMismatchError{Op: opDecompose, WantRows: a.Rows(), WantCols: a.Rows(), GotRows: a.Rows(), GotCols: a.Cols()}
	}
	if err := o.backend.available(); err != nil {
		return nil, choleskyErrorf(opDecompose, err)
	}

	n := a.Rows()
	l, err := copyLower(a, n)
	if err != nil {
		return nil, choleskyErrorf(opDecompose, err)
	}
	if o.checkSymmetry {
		if err = matrix.ValidateSymmetric(a, o.symmetryTol*diagScale(l, n)); err != nil {
			o.logger.Debug("cholesky: input rejected", slog.Int("n", n), slog.Any("error", err))
			return nil, choleskyErrorf(opDecompose, err)
		}
	}

	if err = factorInPlace(l, n); err != nil {
		o.logger.Debug("cholesky: decomposition failed", slog.Int("n", n), slog.Any("error", err))
		return nil, choleskyErrorf(opDecompose, err)
	}

	return &Cholesky{n: n, l: l, backend: o.backend, logger: o.logger}, nil
}

// New wraps an already computed lower-triangular factor L (A = L·Lᵗ).
// Only the entries on or below the diagonal of l are copied; the upper
// triangle is ignored. The triangular, positive-diagonal invariant is the
// caller's responsibility and is not re-validated here; solves on an injected
// factor still refuse zero or non-finite pivots (ErrSingularFactor).
//
// Errors: matrix.ErrNilMatrix, *DimensionMismatchError, ErrUnsupportedOperation.
// Complexity: O(n²).
func New(l matrix.Matrix, opts ...Option) (*Cholesky, error) {
	o := gatherOptions(opts)
	if err := matrix.ValidateNotNil(l); err != nil {
		return nil, choleskyErrorf(opNew, err)
	}
	if l.Rows() != l.Cols() {
		return nil, &DimensionMismatchError{Op: opNew, WantRows: l.Rows(), WantCols: l.Rows(), GotRows: l.Rows(), GotCols: l.Cols()}
	}
	if err := o.backend.available(); err != nil {
		return nil, choleskyErrorf(opNew, err)
	}

	n := l.Rows()
	buf, err := copyLower(l, n)
	if err != nil {
		return nil, choleskyErrorf(opNew, err)
	}

	return &Cholesky{n: n, l: buf, injected: true, backend: o.backend, logger: o.logger}, nil
}

// copyLower copies entries (i, j≤i) of m into a fresh row-major n×n buffer.
func copyLower(m matrix.Matrix, n int) ([]float64, error) {
	buf := make([]float64, n*n)
	if d, ok := m.(*matrix.Dense); ok {
		src := d.Data()
		for i := 0; i < n; i++ {
			copy(buf[i*n:i*n+i+1], src[i*n:i*n+i+1])
		}

		return buf, nil
	}

	var v float64
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			buf[i*n+j] = v
		}
	}

	return buf, nil
}

// diagScale returns max(1, max_i |a[i,i]|); for SPD input this bounds every |a[i,j]|.
func diagScale(a []float64, n int) float64 {
	scale := 1.0
	for i := 0; i < n; i++ {
		if v := math.Abs(a[i*n+i]); v > scale {
			scale = v
		}
	}

	return scale
}

// factorInPlace turns the lower triangle of A held in l into L.
// Row i only reads rows ≤ i, and A[i,j] is consumed before L[i,j] overwrites it.
func factorInPlace(l []float64, n int) error {
	var (
		i, j, k    int
		rowI, rowJ int
		sum, pivot float64
	)
	for i = 0; i < n; i++ {
		rowI = i * n
		for j = 0; j < i; j++ {
			rowJ = j * n
			sum = l[rowI+j]
			for k = 0; k < j; k++ {
				sum -= l[rowI+k] * l[rowJ+k]
			}
			l[rowI+j] = sum / l[rowJ+j]
		}

		pivot = l[rowI+i]
		for k = 0; k < i; k++ {
			pivot -= l[rowI+k] * l[rowI+k]
		}
		// NaN fails the comparison as well.
		if !(pivot > 0) {
			return &NotPositiveDefiniteError{Row: i, Radicand: pivot}
		}
		l[rowI+i] = math.Sqrt(pivot)
	}

	return nil
}

// N returns the dimension of the factored matrix (0 for a nil receiver).
func (c *Cholesky) N() int {
	if c == nil {
		return 0
	}

	return c.n
}

// Backend reports the routine the factorization was built for.
func (c *Cholesky) Backend() Backend {
	if c == nil {
		return BackendNative
	}

	return c.backend
}

// L returns a copy of the lower-triangular factor. The caller may mutate it freely.
func (c *Cholesky) L() (*matrix.Dense, error) {
	if err := c.ready(); err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(c.n, c.n)
	if err != nil {
		return nil, err
	}
	copy(out.Data(), c.l)

	return out, nil
}

// Det returns det(A) = Π L[i,i]².
// Overflows to +Inf for large n with large pivots; prefer LogDet there.
func (c *Cholesky) Det() (float64, error) {
	if err := c.ready(); err != nil {
		return 0, err
	}
	det := 1.0
	for i := 0; i < c.n; i++ {
		d := c.l[i*c.n+i]
		det *= d * d
	}

	return det, nil
}

// LogDet returns log det(A) = 2·Σ log |L[i,i]|.
func (c *Cholesky) LogDet() (float64, error) {
	if err := c.ready(); err != nil {
		return 0, err
	}
	var sum float64
	for i := 0; i < c.n; i++ {
		sum += math.Log(math.Abs(c.l[i*c.n+i]))
	}

	return 2 * sum, nil
}

// ready guards every method against nil and zero-value receivers.
func (c *Cholesky) ready() error {
	if c == nil || c.n == 0 {
		return ErrNilFactor
	}

	return nil
}
