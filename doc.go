// Package lvmatrix is a small in-memory toolkit for dense two-dimensional data.
//
// What is inside:
//
//	matrix/ — Matrix[T]: a generic, resizable row-major grid with bounds-checked
//	          access, row/column insertion and deletion, region and line fills,
//	          and Clone/Equal/Hash.
//
// Quick ASCII example (InsertCol(1) on a 2×2 grid, default 0):
//
//	[1, 2]      [1, 0, 2]
//	[3, 4]  →   [3, 0, 4]
//
// Pure Go, no cgo, no hidden deps.
//
//	go get github.com/katalvlaran/lvmatrix/matrix
package lvmatrix
