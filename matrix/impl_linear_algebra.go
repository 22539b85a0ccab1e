// SPDX-License-Identifier: MIT
// Package matrix provides the verification kernels spdsolve needs on top of the
// collaborator contract: element-wise addition and subtraction, matrix product,
// transpose, matrix-vector product and tolerance comparisons. They back the
// reconstruction (L·Lᵗ ≈ A) and residual (A·X − B) checks of the factorization.
//
// Purpose:
//   - Keep every kernel side-effect free: inputs are read-only, results freshly allocated.
//   - Share validation through validators.go and error tags through op* constants.
//
// Notes:
//   - Each kernel has a *Dense fast path over flat slices and an At/Set fallback.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot products and substitution sums.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opMatVec     = "MatVec"
	opAllClose   = "AllClose"
	opMaxAbsDiff = "MaxAbsDiff"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + sign*b for sign ∈ {+1, -1}.
// Shared by Add/Sub: one validation, one allocation, one fast path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, sign float64, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	// Fast path: *Dense with *Dense → single flat loop.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range res.data {
				res.data[idx] = da.data[idx] + sign*db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: interface path with fixed i→j order.
	var i, j int
	var av, bv float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(opTag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = av + sign*bv
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
func Add(a, b Matrix) (Matrix, error) { return addSub(a, b, +1, opAdd) }

// Sub computes the element-wise difference C = A − B and returns a fresh Dense result.
// Errors: ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
// Complexity: O(r*c).
//
// AI-Hints:
//   - Sub(Mul(A, X), B) is the residual matrix of a solved system; MaxAbsDiff(Mul(A, X), B)
//     gives its max-norm without the extra allocation.
func Sub(a, b Matrix) (Matrix, error) { return addSub(a, b, -1, opSub) }

// Mul computes the matrix product C = A × B.
// Implementation:
//   - Stage 1: ValidateMulCompatible (non-nil, a.Cols == b.Rows); allocate r×c result.
//   - Stage 2: *Dense fast path uses i→k→j (row-streaming, cache friendly);
//     the fallback uses i→j→k with At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// Notes:
//   - Zero entries of A are skipped; with finite data the result is unchanged.
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}

			return res, nil
		}
	}

	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh Dense (cols×rows).
// Errors: ErrNilMatrix.
// Complexity: O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// MatVec computes y = m·x for len(x) == Cols(m); y has length Rows(m).
// Errors: ErrNilMatrix (nil m or x), ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	var i, j int
	var acc float64
	if d, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			acc = ZeroSum
			base = i * cols
			for j = 0; j < cols; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN never compares close.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; non-finite tolerances → ErrNaNInf.
//
// Complexity: Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	ok := true
	err := forEachPair(a, b, func(av, bv float64) bool {
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			ok = false
			return false // early exit on first violation
		}
		return true
	})
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	return ok, nil
}

// MaxAbsDiff returns max_{i,j} |a[i,j] − b[i,j]| (NaN if any pair involves NaN).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	var worst float64
	err := forEachPair(a, b, func(av, bv float64) bool {
		d := math.Abs(av - bv)
		if math.IsNaN(d) {
			worst = d
			return false
		}
		if d > worst {
			worst = d
		}
		return true
	})
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	return worst, nil
}

// forEachPair visits (a[i,j], b[i,j]) in row-major order until fn returns false.
// Shapes must already be validated.
func forEachPair(a, b Matrix, fn func(av, bv float64) bool) error {
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !fn(da.data[idx], db.data[idx]) {
					return nil
				}
			}

			return nil
		}
	}

	var av, bv float64
	var err error
	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			if !fn(av, bv) {
				return nil
			}
		}
	}

	return nil
}
