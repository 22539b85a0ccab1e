// SPDX-License-Identifier: MIT
// Package cholesky - triangular solves.
//
// Purpose:
//   - Solve A·X = B through L·Y = B (forward) and Lᵗ·X = Y (backward).
//   - Overwrite the caller's right-hand side; results are staged in a scratch
//     buffer and committed only when every entry is finite.
//
// Determinism:
//   - Every column is solved independently with fixed loop orders, so Solve and
//     SolveParallel produce bit-identical results.

package cholesky

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spdsolve/matrix"
)

// Solve overwrites b with X, the solution of A·X = B, for every column of b.
// MAIN DESCRIPTION:
//   - In-place contract: b is the output. Copy it first if the original is needed.
//   - All-or-nothing: b is written only after every entry of X is known to be finite.
//
// Implementation:
//   - Stage 1: validate receiver, b (non-nil, Rows(b) == N()) and, for injected
//     factors, the pivots.
//   - Stage 2: copy b into a scratch buffer (flat copy for *matrix.Dense, At otherwise)
//     and substitute every column there.
//   - Stage 3: reject NaN/Inf, then commit the buffer into b.
//
// Errors:
//   - ErrNilFactor, matrix.ErrNilMatrix, *DimensionMismatchError, ErrSingularFactor,
//     ErrNonFiniteSolution, and Set errors of a non-Dense b during the write-back.
//
// Complexity:
//   - Time O(n²·m) for m columns, Space O(n·m) for the scratch buffer.
func (c *Cholesky) Solve(b matrix.Matrix) error {
	if err := c.checkRHS(opSolve, b); err != nil {
		return err
	}

	x, err := gather(b)
	if err != nil {
		return choleskyErrorf(opSolve, err)
	}
	m := b.Cols()
	for col := 0; col < m; col++ {
		c.substitute(x, m, col)
	}

	return c.commit(opSolve, b, x)
}

// SolveVec overwrites b with x, the solution of A·x = b.
// The slice is wrapped as a column matrix sharing its storage, so the result
// is committed straight into b; on any error b is left unmodified.
//
// Errors: ErrNilFactor, matrix.ErrNilMatrix (nil b), *DimensionMismatchError
// (len(b) != N()), ErrSingularFactor, ErrNonFiniteSolution.
func (c *Cholesky) SolveVec(b []float64) error {
	if err := c.ready(); err != nil {
		return err
	}
	if b == nil {
		return choleskyErrorf(opSolveVec, matrix.ErrNilMatrix)
	}
	if len(b) != c.n {
		return &DimensionMismatchError{Op: opSolveVec, WantRows: c.n, WantCols: 1, GotRows: len(b), GotCols: 1}
	}
	col, err := matrix.NewColumn(b)
	if err != nil {
		return choleskyErrorf(opSolveVec, err)
	}

	return c.Solve(col)
}

// SolveParallel is Solve with the columns of b distributed over at most
// workers goroutines (workers ≤ 0 means GOMAXPROCS).
//
// Implementation:
//   - Stage 1: same validation as Solve; an already cancelled ctx returns early.
//   - Stage 2: copy b into a scratch buffer and solve its columns under an errgroup.
//   - Stage 3: commit the scratch buffer into b only after every column finished.
//
// Behavior highlights:
//   - Cancellation is observed between columns; on ctx.Err() b is left untouched.
//   - A nil ctx is treated as context.Background().
//   - Results are bit-identical to Solve.
//
// Complexity:
//   - Time O(n²·m / workers), Space O(n·m) for the scratch buffer.
func (c *Cholesky) SolveParallel(ctx context.Context, b matrix.Matrix, workers int) error {
	if err := c.checkRHS(opSolveParallel, b); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	x, err := gather(b)
	if err != nil {
		return choleskyErrorf(opSolveParallel, err)
	}

	m := b.Cols()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for col := 0; col < m; col++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.substitute(x, m, col) // columns are disjoint: no shared writes

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	return c.commit(opSolveParallel, b, x)
}

// checkRHS runs every pre-write validation shared by the solve entry points.
func (c *Cholesky) checkRHS(op string, b matrix.Matrix) error {
	if err := c.ready(); err != nil {
		return err
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return choleskyErrorf(op, err)
	}
	if b.Rows() != c.n {
		return &DimensionMismatchError{Op: op, WantRows: c.n, WantCols: b.Cols(), GotRows: b.Rows(), GotCols: b.Cols()}
	}
	if c.injected {
		if err := c.checkPivots(); err != nil {
			c.logger.Debug("cholesky: injected factor rejected", slog.Int("n", c.n), slog.Any("error", err))
			return choleskyErrorf(op, err)
		}
	}

	return nil
}

// checkPivots rejects zero and non-finite diagonal entries of an injected factor.
func (c *Cholesky) checkPivots() error {
	for i := 0; i < c.n; i++ {
		d := c.l[i*c.n+i]
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return fmt.Errorf("L[%d,%d]=%g: %w", i, i, d, ErrSingularFactor)
		}
	}

	return nil
}

// substitute solves column col of the row-major buffer x (stride m) in place.
//
//	forward:  y[i] = (b[i] − Σ_{k<i} L[i,k]·y[k]) / L[i,i],  i = 0..n-1
//	backward: x[i] = (y[i] − Σ_{k>i} L[k,i]·x[k]) / L[i,i],  i = n-1..0
func (c *Cholesky) substitute(x []float64, m, col int) {
	n, l := c.n, c.l
	var (
		i, k, rowI int
		sum        float64
	)
	for i = 0; i < n; i++ {
		rowI = i * n
		sum = x[i*m+col]
		for k = 0; k < i; k++ {
			sum -= l[rowI+k] * x[k*m+col]
		}
		x[i*m+col] = sum / l[rowI+i]
	}
	for i = n - 1; i >= 0; i-- {
		sum = x[i*m+col]
		for k = i + 1; k < n; k++ {
			sum -= l[k*n+i] * x[k*m+col]
		}
		x[i*m+col] = sum / l[i*n+i]
	}
}

// commit writes the solved buffer x into b once every entry is finite.
// On rejection b is untouched.
func (c *Cholesky) commit(op string, b matrix.Matrix, x []float64) error {
	for idx, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err := fmt.Errorf("X[%d,%d]=%g: %w", idx/b.Cols(), idx%b.Cols(), v, ErrNonFiniteSolution)
			c.logger.Debug("cholesky: solution rejected", slog.Int("n", c.n), slog.Any("error", err))

			return choleskyErrorf(op, err)
		}
	}

	if d, ok := b.(*matrix.Dense); ok {
		copy(d.Data(), x)
		return nil
	}
	if err := scatter(b, x); err != nil {
		return choleskyErrorf(op, err)
	}

	return nil
}

// gather copies b into a fresh row-major buffer.
func gather(b matrix.Matrix) ([]float64, error) {
	rows, cols := b.Rows(), b.Cols()
	x := make([]float64, rows*cols)
	if d, ok := b.(*matrix.Dense); ok {
		copy(x, d.Data())
		return x, nil
	}

	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if x[i*cols+j], err = b.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
		}
	}

	return x, nil
}

// scatter writes the row-major buffer x back into b through Set.
func scatter(b matrix.Matrix, x []float64) error {
	rows, cols := b.Rows(), b.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if err := b.Set(i, j, x[i*cols+j]); err != nil {
				return fmt.Errorf("Set(%d,%d): %w", i, j, err)
			}
		}
	}

	return nil
}
