// SPDX-License-Identifier: MIT

// Package matrix - structural edits (insert/delete rows and columns).
//
// Purpose:
//   - Grow or shrink the grid by one row or column while preserving every
//     other cell at its shifted position.
//   - Keep the flat buffer invariant len(data) == h*w after every call.
//
// Behavior highlights:
//   - Validation happens before any mutation: a failing call leaves the matrix
//     untouched (index first, then slice length).
//   - Row edits are a single memmove over the flat buffer (slices.Insert/Delete).
//   - Column edits re-stride every row; InsertCol reallocates, DeleteCol
//     compacts in place.
//
// Complexity quicksheet:
//   - InsertRow/DeleteRow: O(w*h) worst case (tail shift).
//   - InsertCol/DeleteCol: O(w*h).

package matrix

import "slices"

// InsertRow inserts a new row of Width() default values at index row.
// MAIN DESCRIPTION:
//   - Rows formerly at index ≥ row move down by one; Height() grows by one.
//
// Inputs:
//   - row: insertion point, 0 ≤ row ≤ Height() (Height() appends).
//
// Errors:
//   - ErrOutOfRange when row < 0 or row > Height().
//
// Complexity:
//   - Time O(w*h), Space O(w) amortized.
func (m *Matrix[T]) InsertRow(row int) error {
	if err := CheckInsertIndex(row, m.h); err != nil {
		return matrixIndexErrorf(ctxInsertRow, row, err)
	}
	fresh := make([]T, m.w)
	for i := range fresh {
		fresh[i] = m.def
	}
	m.data = slices.Insert(m.data, row*m.w, fresh...)
	m.h++

	return nil
}

// InsertRowValues inserts values as a new row at index row.
// MAIN DESCRIPTION:
//   - Like InsertRow, but the new row holds exactly values (copied).
//
// Implementation:
//   - Stage 1: validate row in [0, Height()].
//   - Stage 2: validate len(values) == Width().
//   - Stage 3: splice values into the flat buffer.
//
// Errors:
//   - ErrOutOfRange for a bad index; ErrSizeMismatch for a wrong length.
//     Both are reported before any change.
//
// Complexity:
//   - Time O(w*h), Space O(w) amortized.
func (m *Matrix[T]) InsertRowValues(row int, values []T) error {
	if err := CheckInsertIndex(row, m.h); err != nil {
		return matrixIndexErrorf(ctxInsertRow, row, err)
	}
	if err := CheckLen(len(values), m.w); err != nil {
		return matrixIndexErrorf(ctxInsertRow, row, err)
	}
	m.data = slices.Insert(m.data, row*m.w, values...)
	m.h++

	return nil
}

// InsertCol inserts a new column of Height() default values at index col.
// Columns formerly at index ≥ col move right by one; Width() grows by one.
// Errors: ErrOutOfRange when col < 0 or col > Width().
func (m *Matrix[T]) InsertCol(col int) error {
	if err := CheckInsertIndex(col, m.w); err != nil {
		return matrixIndexErrorf(ctxInsertCol, col, err)
	}
	m.spliceCol(col, func(int) T { return m.def })

	return nil
}

// InsertColValues inserts values as a new column at index col;
// values[r] lands in row r.
// Errors: ErrOutOfRange for a bad index, then ErrSizeMismatch when
// len(values) != Height(). The matrix is unchanged on error.
func (m *Matrix[T]) InsertColValues(col int, values []T) error {
	if err := CheckInsertIndex(col, m.w); err != nil {
		return matrixIndexErrorf(ctxInsertCol, col, err)
	}
	if err := CheckLen(len(values), m.h); err != nil {
		return matrixIndexErrorf(ctxInsertCol, col, err)
	}
	m.spliceCol(col, func(r int) T { return values[r] })

	return nil
}

// spliceCol re-strides the buffer from width w to w+1, placing cell(r) at
// column col of each row r. col must already be validated.
// Complexity: O(w*h) time, O(w*h) space for the new buffer.
func (m *Matrix[T]) spliceCol(col int, cell func(r int) T) {
	nw := m.w + 1
	buf := make([]T, nw*m.h)
	var r, src, dst int
	for r = 0; r < m.h; r++ {
		src = r * m.w
		dst = r * nw
		copy(buf[dst:dst+col], m.data[src:src+col])          // left part
		buf[dst+col] = cell(r)                               // new cell
		copy(buf[dst+col+1:dst+nw], m.data[src+col:src+m.w]) // right part
	}
	m.data = buf
	m.w = nw
}

// DeleteRow removes row and shifts the rows below it up by one.
// MAIN DESCRIPTION:
//   - Height() shrinks by one; the append position is NOT a valid index.
//
// Errors:
//   - ErrOutOfRange unless 0 ≤ row < Height().
//
// Complexity:
//   - Time O(w*h), Space O(1).
func (m *Matrix[T]) DeleteRow(row int) error {
	if row < 0 || row >= m.h {
		return matrixIndexErrorf(ctxDeleteRow, row, ErrOutOfRange)
	}
	m.data = slices.Delete(m.data, row*m.w, (row+1)*m.w)
	m.h--

	return nil
}

// DeleteCol removes column col from every row; Width() shrinks by one.
// The buffer is compacted in place (writes never overtake reads).
// Errors: ErrOutOfRange unless 0 ≤ col < Width().
func (m *Matrix[T]) DeleteCol(col int) error {
	if col < 0 || col >= m.w {
		return matrixIndexErrorf(ctxDeleteCol, col, ErrOutOfRange)
	}
	var r, c, base int
	dst := 0
	for r = 0; r < m.h; r++ {
		base = r * m.w
		for c = 0; c < m.w; c++ {
			if c == col {
				continue
			}
			m.data[dst] = m.data[base+c]
			dst++
		}
	}
	clear(m.data[dst:]) // drop references held by the stale tail
	m.data = m.data[:dst]
	m.w--

	return nil
}
