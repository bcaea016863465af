// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Matrix construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global mutable state beyond the hash seed.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Options are resolved once in New/NewZero/FromRows and carried by Clone.
//   - Fill policy: by default FillRegion/FillLine write cell by cell and stop at
//     the first out-of-range cell, leaving earlier writes in place. WithAtomicFill
//     switches to validate-then-write.
package matrix

import "hash/maphash"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultAtomicFill selects the fill failure policy.
	// false ⇒ partial writes remain visible when a fill fails midway.
	DefaultAtomicFill = false

	// hashMultiplier is the polynomial factor of Matrix.Hash.
	hashMultiplier = 7

	// nanHash is the fixed contribution of any value that is not equal to
	// itself (NaN, or a struct/array holding a NaN).
	nanHash uint64 = 0x7ff8000000000001
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicHasherNil = "matrix: WithHasher: hasher must not be nil"
)

// hashSeed is shared by every default hasher in the process so that equal
// matrices produce equal hashes regardless of when they were built.
var hashSeed = maphash.MakeSeed()

// Hasher maps a cell value to its hash contribution.
// It MUST agree with == on T: a == b implies h(a) == h(b).
type Hasher[T comparable] func(v T) uint64

// defaultHasher hashes v with hash/maphash under the process-wide seed.
// maphash randomizes values with v != v on every call, so those map to nanHash.
func defaultHasher[T comparable](v T) uint64 {
	if v != v {
		return nanHash
	}

	return maphash.Comparable(hashSeed, v)
}

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option[T comparable] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option[T]`.
type Options[T comparable] struct {
	hasher     Hasher[T] // cell hash for Matrix.Hash; defaultHasher when unset
	atomicFill bool      // DefaultAtomicFill
}

// WithHasher sets the per-cell hash used by Matrix.Hash.
// Implementation:
//   - Stage 1: reject nil (programmer error).
//   - Stage 2: return a setter that stores h.
//
// Notes:
//   - Use when T is a float type and a numeric hash (e.g. math.Float64bits)
//     is preferred, or to obtain hashes that are stable across processes.
func WithHasher[T comparable](h Hasher[T]) Option[T] {
	if h == nil {
		panic(panicHasherNil)
	}

	return func(o *Options[T]) { o.hasher = h }
}

// WithAtomicFill makes FillRegion/FillLine validate their targets before
// writing any; a failing fill leaves the matrix untouched.
// Complexity: O(1) extra for FillRegion (two corners), one extra walk for FillLine.
func WithAtomicFill[T comparable]() Option[T] {
	return func(o *Options[T]) { o.atomicFill = true }
}

// WithPartialFill restores the default fill policy: cells are written in
// order and a failure leaves earlier writes in place.
func WithPartialFill[T comparable]() Option[T] {
	return func(o *Options[T]) { o.atomicFill = false }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from documented defaults.
//   - Stage 2: apply setters in order; last-writer-wins.
//
// Complexity: O(len(user)).
func gatherOptions[T comparable](user ...Option[T]) Options[T] {
	o := Options[T]{
		hasher:     defaultHasher[T],
		atomicFill: DefaultAtomicFill,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
