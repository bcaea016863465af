// Package matrix provides Matrix[T], a generic, resizable, dense 2D container.
//
// What:
//
//   - Row-major storage in one flat buffer addressed by (row, col), zero-based.
//   - Bounds-checked accessors (At/Set) that return errors instead of panicking.
//   - Structural edits: InsertRow/InsertCol (default-filled or explicit values),
//     DeleteRow/DeleteCol, each shifting the remaining content.
//   - Bulk fills: FillRegion (rectangle) and FillLine (stepped walk).
//   - Clone/Equal/Hash with a consistent equality/hash contract.
//
// Why:
//
//   - Game boards, spreadsheets-in-memory, lookup tables and any dense grid
//     whose row/column counts change at runtime.
//
// Complexity:
//
//   - At/Set/Width/Height: O(1).
//   - InsertRow/DeleteRow/InsertCol/DeleteCol: O(W×H).
//   - FillRegion/FillLine: O(cells visited).
//   - Clone/Equal/Hash: O(W×H).
//
// Options:
//
//   - WithHasher: per-cell hash used by Hash (default hash/maphash).
//   - WithAtomicFill / WithPartialFill: fill failure policy (default partial).
//
// Errors:
//
//   - ErrInvalidSize: negative width or height at construction.
//   - ErrOutOfRange: index outside the valid (strict or insertion) range.
//   - ErrSizeMismatch: supplied row/column length differs from the matrix.
//   - ErrZeroStep: FillLine step (0,0) that would never terminate.
//
// A Matrix is not safe for concurrent use.
package matrix
