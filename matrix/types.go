// SPDX-License-Identifier: MIT

// Package matrix: the Matrix container type.
// This file intentionally contains ONLY the type declaration and its
// invariants. Behavior lives in impl_*.go, errors in errors.go, options in
// options.go.
package matrix

import "fmt"

// Matrix is a mutable, resizable, row-major grid of T addressed by (row, col).
//   - w,h hold dimensions (width = columns, height = rows); both ≥ 0.
//   - data is a flat buffer of length h*w (offset = row*w + col).
//   - def fills newly created cells (construction, InsertRow, InsertCol).
//
// A Matrix is not safe for concurrent use; callers synchronize externally.
//
// Complexity notes: At/Set/Width/Height are O(1); structural edits, fills,
// Clone, Equal and Hash are O(h*w) at worst.
type Matrix[T comparable] struct {
	w, h int        // column and row counts (>= 0)
	data []T        // contiguous row-major storage (len == h*w)
	def  T          // default value for new cells
	opts Options[T] // resolved construction options (carried by Clone)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[int])(nil)
