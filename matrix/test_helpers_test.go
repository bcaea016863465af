// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the table tests.
//   • Keep expected grids literal ([][]T) so failures print readable diffs.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// mustNew ALLOCATES a w×h matrix filled with def or fails the test.
func mustNew[T comparable](t testing.TB, w, h int, def T, opts ...matrix.Option[T]) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New(w, h, def, opts...)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}

	return m
}

// mustFromRows builds a matrix from literal rows or fails the test.
func mustFromRows[T comparable](t testing.TB, rows [][]T, def T, opts ...matrix.Option[T]) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, def, opts...)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}

	return m
}

// seq returns a w×h int matrix holding 1..w*h in row-major order (default 0).
//
//	seq(3,2) = [1, 2, 3]
//	           [4, 5, 6]
func seq(t testing.TB, w, h int) *matrix.Matrix[int] {
	t.Helper()
	m := mustNew(t, w, h, 0)
	n := 1
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			require.NoError(t, m.Set(r, c, n))
			n++
		}
	}

	return m
}

// requireGrid asserts shape and every cell of m against want (rows[r][c]).
func requireGrid[T comparable](t *testing.T, want [][]T, m *matrix.Matrix[T], msgAndArgs ...interface{}) {
	t.Helper()
	require.Equal(t, len(want), m.Height(), msgAndArgs...)
	if len(want) > 0 {
		require.Equal(t, len(want[0]), m.Width(), msgAndArgs...)
	}
	require.Equal(t, want, m.ToRows(), msgAndArgs...)
}
