// SPDX-License-Identifier: MIT

// Package matrix - bulk fills (rectangular regions and stepped lines).
//
// Behavior highlights:
//   - Every target cell goes through Set, so each write is bounds-checked.
//   - Default policy (partial): the first out-of-range cell aborts the fill;
//     cells written before it remain updated. No rollback.
//   - Atomic policy (WithAtomicFill): targets are validated first (region
//     corners, or the whole line walk) and nothing is written on failure.
//   - FillLine loops while row < endRow && col < endCol regardless of the step
//     sign; callers pick end bounds consistent with the direction.

package matrix

// FillRegion sets every cell (r, c) with startRow ≤ r < endRow and
// startCol ≤ c < endCol to v.
// MAIN DESCRIPTION:
//   - Rectangular fill in row-major order. An empty range is a no-op.
//
// Implementation:
//   - Stage 1 (atomic policy only): bounds-check the two corners.
//   - Stage 2: nested loops r→c, one Set per cell.
//
// Errors:
//   - ErrOutOfRange (wrapped with the failing coordinates).
//
// Complexity:
//   - Time O((endRow-startRow)*(endCol-startCol)), Space O(1).
//
// Notes:
//   - Under the partial policy a failure leaves earlier cells written.
func (m *Matrix[T]) FillRegion(startRow, startCol, endRow, endCol int, v T) error {
	var r, c int
	// A non-empty rectangle lies inside the grid iff both corners do.
	if m.opts.atomicFill && startRow < endRow && startCol < endCol {
		if err := CheckIndex(startRow, startCol, m.h, m.w); err != nil {
			return matrixErrorf(ctxFillRegion, startRow, startCol, err)
		}
		if err := CheckIndex(endRow-1, endCol-1, m.h, m.w); err != nil {
			return matrixErrorf(ctxFillRegion, endRow-1, endCol-1, err)
		}
	}
	for r = startRow; r < endRow; r++ {
		for c = startCol; c < endCol; c++ {
			if err := m.Set(r, c, v); err != nil {
				return matrixErrorf(ctxFillRegion, r, c, ErrOutOfRange)
			}
		}
	}

	return nil
}

// FillLine walks from (startRow, startCol) by (deltaRow, deltaCol), setting
// each visited cell to v while row < endRow && col < endCol.
// MAIN DESCRIPTION:
//   - Horizontal (deltaRow=0), vertical (deltaCol=0) and diagonal lines.
//
// Implementation:
//   - Stage 1: reject a (0,0) step whose start satisfies the loop condition;
//     a start outside the grid reports ErrOutOfRange instead.
//   - Stage 2 (atomic policy only): walk once without writing, bounds-checking.
//   - Stage 3: walk again, one Set per visited cell.
//
// Errors:
//   - ErrZeroStep for a walk that would never terminate (nothing written),
//     unless its start cell is out of range, which reports ErrOutOfRange.
//   - ErrOutOfRange at the first visited cell outside the grid.
//
// Complexity:
//   - Time O(steps), Space O(1).
func (m *Matrix[T]) FillLine(startRow, startCol, deltaRow, deltaCol, endRow, endCol int, v T) error {
	if err := CheckStep(startRow, startCol, deltaRow, deltaCol, endRow, endCol); err != nil {
		if ierr := CheckIndex(startRow, startCol, m.h, m.w); ierr != nil {
			err = ierr // the first Set would fail before the walk could loop
		}

		return matrixErrorf(ctxFillLine, startRow, startCol, err)
	}
	var r, c int
	if m.opts.atomicFill {
		for r, c = startRow, startCol; r < endRow && c < endCol; r, c = r+deltaRow, c+deltaCol {
			if err := CheckIndex(r, c, m.h, m.w); err != nil {
				return matrixErrorf(ctxFillLine, r, c, err)
			}
		}
	}
	for r, c = startRow, startCol; r < endRow && c < endCol; r, c = r+deltaRow, c+deltaCol {
		if err := m.Set(r, c, v); err != nil {
			return matrixErrorf(ctxFillLine, r, c, ErrOutOfRange)
		}
	}

	return nil
}
