// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep value semantics: no exported method mutates a *Dense once it is built,
//     and no two matrices share a backing buffer.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(r*c) copy; At: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/qlinalg/cplx"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"   // method tag used in error wrappers
	ctxFrom = "From" // ctor tag for NewDenseFrom
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <err>" and preserves the sentinel via %w.
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols), both >= 1.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//
// A *Dense is immutable once returned by a constructor or kernel; every
// operation that produces a matrix allocates fresh storage.
type Dense struct {
	r, c int            // row and column counts
	data []cplx.Complex // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and that rows*cols entries fit a
//     single buffer; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer (every entry is cplx.Zero).
//
// Errors:
//   - ErrInvalidDimensions (non-positive or overflowing shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if !shapeFits(rows, cols) {
		return nil, ErrInvalidDimensions
	}

	return newDense(rows, cols), nil
}

// complexBytes is the in-memory size of one cplx.Complex (two float64).
const complexBytes = 16

// shapeFits reports whether rows×cols is positive and its byte size
// rows*cols*complexBytes does not overflow int.
func shapeFits(rows, cols int) bool {
	return rows > 0 && cols > 0 && cols <= math.MaxInt/complexBytes/rows
}

// newDense allocates without validation; callers guarantee shapeFits(rows, cols).
func newDense(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]cplx.Complex, rows*cols)}
}

// NewDenseFrom builds an r×c matrix from explicit row data.
// MAIN DESCRIPTION:
//   - The explicit-data construction path. The shape of data is validated
//     against (rows, cols) and the values are copied, so later changes to the
//     caller's slices never leak into the matrix.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0.
//   - Stage 2: ValidateRectangular(data, rows, cols).
//   - Stage 3: resolve options; when validateNaNInf is set, reject non-finite entries.
//   - Stage 4: copy row by row into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions, ErrMalformedInput, ErrNaNInf (opt-in).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data [][]cplx.Complex, opts ...Option) (*Dense, error) {
	if !shapeFits(rows, cols) {
		return nil, ErrInvalidDimensions
	}
	if err := ValidateRectangular(data, rows, cols); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)

	m := newDense(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if o.validateNaNInf && !data[i][j].IsFinite() {
				return nil, denseErrorf(ctxFrom, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*cols:(i+1)*cols], data[i])
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// IsVector reports whether m is a column vector (Cols == 1).
func (m *Dense) IsVector() bool { return m.c == 1 }

// IsSquare reports whether Rows == Cols.
func (m *Dense) IsSquare() bool { return m.r == m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// The sentinel is returned bare; At wraps it with coordinates.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range indices.
// Complexity: O(1).
func (m *Dense) At(row, col int) (cplx.Complex, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return cplx.Zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Clone returns a deep copy backed by a new buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	cp := make([]cplx.Complex, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RawRows returns the entries as a freshly allocated [][]cplx.Complex.
// The result does not alias m; mutating it leaves m unchanged.
// Complexity: O(r*c).
func (m *Dense) RawRows() [][]cplx.Complex {
	out := make([][]cplx.Complex, m.r)
	for i := 0; i < m.r; i++ {
		row := make([]cplx.Complex, m.c)
		copy(row, m.data[i*m.c:(i+1)*m.c])
		out[i] = row
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write cplx.Complex values into a strings.Builder.
//
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			sb.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
