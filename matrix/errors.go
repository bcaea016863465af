// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public methods return these sentinels wrapped with method context
// (see matrixErrorf) and tests MUST check them via errors.Is. No method panics
// on user-triggered error conditions; panics are reserved for programmer
// errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Validators return the bare sentinel; the public
// method that detected the violation wraps it once with its name and
// coordinates.
//
// ERROR PRIORITY (documented, enforced in tests):
// index -> size mismatch -> step. FillLine checks the start cell before
// reporting ErrZeroStep.

var (
	// ErrInvalidSize is returned when a requested width or height is negative.
	// No partial matrix is produced.
	ErrInvalidSize = errors.New("matrix: width and height must be >= 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Strict bounds apply to At/Set/Delete*, inclusive bounds to Insert*.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrSizeMismatch indicates that a supplied row/column slice does not match
	// the orthogonal dimension of the matrix, or that 2D input is ragged.
	ErrSizeMismatch = errors.New("matrix: size mismatch")

	// ErrZeroStep indicates a FillLine call whose step (0,0) would never advance.
	ErrZeroStep = errors.New("matrix: zero step would never terminate")
)

// Method context tags used in error wrappers.
const (
	ctxAt         = "At"
	ctxSet        = "Set"
	ctxRow        = "Row"
	ctxCol        = "Col"
	ctxInsertRow  = "InsertRow"
	ctxInsertCol  = "InsertCol"
	ctxDeleteRow  = "DeleteRow"
	ctxDeleteCol  = "DeleteCol"
	ctxFillRegion = "FillRegion"
	ctxFillLine   = "FillLine"
	ctxNew        = "New"
	ctxFromRows   = "FromRows"
)

// matrixErrorf wraps a sentinel with a uniform Matrix context and callsite indices.
// The result reads "Matrix.<method>(row,col): <sentinel>" and preserves the
// sentinel for errors.Is.
// Complexity: O(1).
func matrixErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Matrix.%s(%d,%d): %w", method, row, col, err)
}

// matrixIndexErrorf wraps a sentinel for single-index methods (rows or columns).
func matrixIndexErrorf(method string, idx int, err error) error {
	return fmt.Errorf("Matrix.%s(%d): %w", method, idx, err)
}
