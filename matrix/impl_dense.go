// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer the factories the factorization layer consumes: zeros, identity, column-from-vector.
//   - Enforce a numeric policy (rejection of NaN/Inf in Set) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot loops: Data() exposes the flat buffer (aliasing, no copy).
//   - NewColumn shares the caller's slice; writes through the matrix are visible in the slice.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); NewColumn: O(1).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxFromRows = "FromRows" // ctor tag for NewFromRows
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0 for public constructors)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Prefer this ctor for public creation; use NewColumn to wrap an existing vector.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewColumn wraps v as a len(v)×1 column matrix WITHOUT copying.
// MAIN DESCRIPTION:
//   - The "from-vector" factory: the returned matrix aliases v, so every Set
//     on the matrix is observable through v and vice versa.
//
// Implementation:
//   - Stage 1: reject nil/empty v.
//   - Stage 2: adopt v as the backing buffer (row-major n×1 == plain vector).
//
// Errors:
//   - ErrNilMatrix (nil v), ErrInvalidDimensions (len(v)==0).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Values already in v are not re-validated against the NaN/Inf policy.
//
// AI-Hints:
//   - Use it to reuse matrix kernels that overwrite in place on plain slices.
func NewColumn(v []float64) (*Dense, error) {
	if v == nil {
		return nil, ErrNilMatrix
	}
	if len(v) == 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              len(v),
		c:              1,
		data:           v, // shared storage by contract
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewFromRows builds a Dense by copying a rectangular [][]float64.
//
// Implementation:
//   - Stage 1: validate non-empty outer/inner slices and equal row lengths.
//   - Stage 2: copy row by row into a fresh flat buffer, enforcing the numeric policy.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row).
//   - ErrDimensionMismatch (ragged rows).
//   - ErrNaNInf (non-finite entry under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(ctxFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}

	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, matrixErrorf(ctxFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrDimensionMismatch))
		}
		for j = 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Data returns the flat row-major backing buffer (len == Rows*Cols).
// The slice aliases the matrix: writes are visible through At and bypass
// the NaN/Inf policy. Intended for kernels that need the fast path.
// Complexity: O(1).
func (m *Dense) Data() []float64 { return m.data }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds, wrapped as Dense.At(row,col).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations on the clone never affect the original, including clones of
// NewColumn matrices (the copy owns its own buffer).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// ToRows copies the matrix into a fresh [][]float64 (row-major order).
// Complexity: O(r*c).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]float64, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// AI-Hints:
//   - For large matrices prefer printing a few rows/cols or summarize.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
