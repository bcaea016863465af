// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for bounds and shape checks.
//  - Keep accessors and mutators minimal by delegating every guard here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - CheckIndex is the strict (0 ≤ i < n) check used by At/Set/Delete*.
//  - CheckInsertIndex is the inclusive (0 ≤ i ≤ n) check used by Insert*.

package matrix

// CheckIndex validates (row, col) against the current (height, width).
//
// Inputs: row, col indices; height, width of the grid they address.
// Returns: nil, or ErrOutOfRange if row<0, row>=height, col<0 or col>=width.
// Complexity: O(1).
func CheckIndex(row, col, height, width int) error {
	if row < 0 || row >= height || col < 0 || col >= width {
		return ErrOutOfRange
	}

	return nil
}

// CheckInsertIndex validates an insertion point: 0 ≤ idx ≤ limit.
// idx == limit is the append position.
// Complexity: O(1).
func CheckInsertIndex(idx, limit int) error {
	if idx < 0 || idx > limit {
		return ErrOutOfRange
	}

	return nil
}

// CheckShape rejects negative dimensions with ErrInvalidSize.
// Zero-sized shapes (0×N, N×0, 0×0) are legal.
func CheckShape(width, height int) error {
	if width < 0 || height < 0 {
		return ErrInvalidSize
	}

	return nil
}

// CheckLen ensures a supplied slice length n matches want.
// Returns ErrSizeMismatch otherwise.
func CheckLen(n, want int) error {
	if n != want {
		return ErrSizeMismatch
	}

	return nil
}

// CheckStep rejects a FillLine walk that starts inside its loop bounds with a
// (0,0) step; such a walk revisits the same cell forever.
// A zero step that starts outside the bounds performs no iterations and is accepted.
func CheckStep(startRow, startCol, deltaRow, deltaCol, endRow, endCol int) error {
	if deltaRow == 0 && deltaCol == 0 && startRow < endRow && startCol < endCol {
		return ErrZeroStep
	}

	return nil
}
