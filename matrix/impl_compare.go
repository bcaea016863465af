// SPDX-License-Identifier: MIT

// Package matrix - copy, structural equality and hashing.
//
// Contract:
//   - Clone is independent at the grid level: structural edits or Set on one
//     side never show through on the other. Cell values are copied by
//     assignment, so pointer-like T still share their pointees.
//   - Equal compares shape and cells with == on T.
//   - Hash agrees with Equal: a.Equal(b) ⇒ a.Hash() == b.Hash(), provided both
//     use the same Hasher (the default one does within a process).

package matrix

import "reflect"

// Clone returns an independent copy (new buffer, same default and options).
// Complexity: O(w*h) time and space.
func (m *Matrix[T]) Clone() *Matrix[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{
		w:    m.w,
		h:    m.h,
		data: cp,
		def:  m.def,
		opts: m.opts, // hasher and fill policy travel with the copy
	}
}

// Equal reports whether m and other have the same shape and equal cells.
// MAIN DESCRIPTION:
//   - Structural equality; the default value and options do not take part.
//
// Implementation:
//   - Stage 1: identity fast path (also covers both nil).
//   - Stage 2: nil on one side ⇒ false; shape mismatch ⇒ false.
//   - Stage 3: row-major cell scan with ==.
//
// Notes:
//   - For float T, a NaN cell makes two distinct matrices unequal (== semantics),
//     but a matrix is always Equal to itself.
//
// Complexity:
//   - Time O(w*h), Space O(1).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	if m.w != other.w || m.h != other.h {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Hash returns a deterministic hash consistent with Equal.
// MAIN DESCRIPTION:
//   - code = w + 7*h, then code = code*7 + hash(cell) for every cell in
//     row-major order.
//   - When T is nil-able (pointer, interface, map, slice, chan, func), nil
//     cells are absent and skipped entirely. Zero values of other types
//     (0, "", false) are folded like any other cell.
//
// Behavior highlights:
//   - Arithmetic wraps on overflow; the wrap is uniform, so equal inputs
//     still agree.
//   - Cell hashes come from the configured Hasher (see WithHasher).
//
// Complexity:
//   - Time O(w*h), Space O(1).
func (m *Matrix[T]) Hash() uint64 {
	h := m.opts.hasher
	if h == nil { // zero-value Matrix, never passed through gatherOptions
		h = defaultHasher[T]
	}
	skipZero := nilable[T]()
	var zero T
	code := uint64(m.w) + hashMultiplier*uint64(m.h)
	for _, v := range m.data {
		if skipZero && v == zero {
			continue
		}
		code = code*hashMultiplier + h(v)
	}

	return code
}

// nilable reports whether the zero value of T is nil.
func nilable[T comparable]() bool {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
