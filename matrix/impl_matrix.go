// SPDX-License-Identifier: MIT

// Package matrix - row-major storage & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula row*w + col.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - New/NewZero: O(w*h); At/Set: O(1); Row/Col: O(w)/O(h); ToRows/String: O(w*h).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// New creates a width×height matrix with every cell set to def.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate width>=0 && height>=0; else ErrInvalidSize.
//   - Stage 2: allocate the flat buffer and fill it with def.
//   - Stage 3: resolve options.
//
// Behavior highlights:
//   - Zero-sized shapes are legal (0×N, N×0); rows/cols can be inserted later.
//   - No partial object on error.
//
// Inputs:
//   - width : number of columns (>=0)
//   - height: number of rows (>=0)
//   - def   : default value for all current and future new cells
//
// Errors:
//   - ErrInvalidSize (wrapped with "Matrix.New(w,h)").
//
// Complexity:
//   - Time O(w*h), Space O(w*h).
func New[T comparable](width, height int, def T, opts ...Option[T]) (*Matrix[T], error) {
	if err := CheckShape(width, height); err != nil {
		return nil, matrixErrorf(ctxNew, width, height, err)
	}

	buf := make([]T, width*height)
	var zero T
	if def != zero { // make() already zero-filled the buffer
		for i := range buf {
			buf[i] = def
		}
	}

	return &Matrix[T]{
		w:    width,
		h:    height,
		data: buf,
		def:  def,
		opts: gatherOptions(opts...),
	}, nil
}

// NewZero creates a width×height matrix whose default is the zero value of T.
// Errors: ErrInvalidSize on negative dimensions.
func NewZero[T comparable](width, height int, opts ...Option[T]) (*Matrix[T], error) {
	var zero T

	return New(width, height, zero, opts...)
}

// FromRows builds a matrix from a rectangular 2D slice (rows[r][c]).
// The input is deep-copied; later changes to rows do not affect the matrix.
// An empty input (no rows) yields a 0×0 matrix; a row slice of empty rows
// yields a 0×len(rows) matrix.
//
// Errors:
//   - ErrSizeMismatch when row lengths differ (wrapped with the offending row).
//
// Complexity: O(w*h).
func FromRows[T comparable](rows [][]T, def T, opts ...Option[T]) (*Matrix[T], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for r := range rows {
		if err := CheckLen(len(rows[r]), w); err != nil {
			return nil, matrixIndexErrorf(ctxFromRows, r, err)
		}
	}

	buf := make([]T, 0, w*h)
	for r := range rows {
		buf = append(buf, rows[r]...)
	}

	return &Matrix[T]{
		w:    w,
		h:    h,
		data: buf,
		def:  def,
		opts: gatherOptions(opts...),
	}, nil
}

// Width returns the column count. Complexity: O(1).
func (m *Matrix[T]) Width() int { return m.w }

// Height returns the row count. Complexity: O(1).
func (m *Matrix[T]) Height() int { return m.h }

// Shape packs Width() and Height() into a single call for convenience.
func (m *Matrix[T]) Shape() (width, height int) { return m.w, m.h }

// Default returns the value used to fill newly created cells.
func (m *Matrix[T]) Default() T { return m.def }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Returns the bare sentinel; public methods wrap with their own context.
// Complexity: O(1).
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if err := CheckIndex(row, col, m.h, m.w); err != nil {
		return 0, err
	}

	// Row-major offset: row*w + col.
	return row*m.w + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Returns:
//   - (value, nil) on success; (zero, ErrOutOfRange) on invalid indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, matrixErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return matrixErrorf(ctxSet, row, col, err) // wrap with context
	}
	m.data[off] = v // direct flat write

	return nil
}

// Row returns a copy of row r.
// Errors: ErrOutOfRange unless 0 ≤ r < Height().
func (m *Matrix[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= m.h {
		return nil, matrixIndexErrorf(ctxRow, r, ErrOutOfRange)
	}
	out := make([]T, m.w)
	copy(out, m.data[r*m.w:(r+1)*m.w])

	return out, nil
}

// Col returns a copy of column c, top to bottom.
// Errors: ErrOutOfRange unless 0 ≤ c < Width().
func (m *Matrix[T]) Col(c int) ([]T, error) {
	if c < 0 || c >= m.w {
		return nil, matrixIndexErrorf(ctxCol, c, ErrOutOfRange)
	}
	out := make([]T, m.h)
	for r := 0; r < m.h; r++ {
		out[r] = m.data[r*m.w+c]
	}

	return out, nil
}

// ToRows materializes the grid as an independent [][]T (rows[r][c]).
func (m *Matrix[T]) ToRows() [][]T {
	rows := make([][]T, m.h)
	var r, base int
	for r = 0; r < m.h; r++ {
		base = r * m.w
		rows[r] = make([]T, m.w)
		copy(rows[r], m.data[base:base+m.w])
	}

	return rows
}

// Do visits each cell in row-major order and calls f(row, col, v).
// MAIN DESCRIPTION:
//   - Read-only visitor; stops early when f returns false.
//
// Determinism:
//   - Fixed row→col order.
//
// Complexity:
//   - Time O(w*h), Space O(1).
func (m *Matrix[T]) Do(f func(row, col int, v T) bool) {
	var r, c, base int // predeclare loop counters and base offset

	for r = 0; r < m.h; r++ {
		base = r * m.w
		for c = 0; c < m.w; c++ {
			if !f(r, c, m.data[base+c]) {
				return // early exit requested by caller
			}
		}
	}
}

// String renders one bracketed line per row with cells formatted by %v.
// Intended for debugging; not for hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var r, c, base int
	for r = 0; r < m.h; r++ {
		b.WriteString(_fmtRowOpen)
		base = r * m.w
		for c = 0; c < m.w; c++ {
			fmt.Fprintf(&b, "%v", m.data[base+c])
			if c+1 < m.w {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
