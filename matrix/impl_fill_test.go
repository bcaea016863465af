// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for FillRegion and FillLine under
// both fill policies.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvmatrix/matrix"
	"github.com/stretchr/testify/require"
)

// TestFillRegion covers full, partial, empty and single-cell regions.
func TestFillRegion(t *testing.T) {
	tests := []struct {
		name           string
		sr, sc, er, ec int
		want           [][]int
	}{
		{"top-left 2x2", 0, 0, 2, 2, [][]int{{5, 5, 0}, {5, 5, 0}, {0, 0, 0}}},
		{"whole", 0, 0, 3, 3, [][]int{{5, 5, 5}, {5, 5, 5}, {5, 5, 5}}},
		{"single cell", 1, 1, 2, 2, [][]int{{0, 0, 0}, {0, 5, 0}, {0, 0, 0}}},
		{"empty range", 2, 2, 2, 3, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
		{"inverted range", 2, 2, 0, 0, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustNew(t, 3, 3, 0)
			require.NoError(t, m.FillRegion(tc.sr, tc.sc, tc.er, tc.ec, 5))
			requireGrid(t, tc.want, m)
		})
	}
}

// TestFillRegionPartialFailure keeps cells written before the failing one.
func TestFillRegionPartialFailure(t *testing.T) {
	m := mustNew(t, 2, 2, 0)
	err := m.FillRegion(0, 0, 3, 2, 1) // row 2 does not exist
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "Matrix.FillRegion(2,0): matrix: index out of range")
	requireGrid(t, [][]int{{1, 1}, {1, 1}}, m)
}

// TestFillRegionAtomic writes nothing when any target cell is out of range.
func TestFillRegionAtomic(t *testing.T) {
	m := mustNew(t, 2, 2, 0, matrix.WithAtomicFill[int]())
	require.ErrorIs(t, m.FillRegion(0, 0, 3, 2, 1), matrix.ErrOutOfRange)
	requireGrid(t, [][]int{{0, 0}, {0, 0}}, m)

	require.NoError(t, m.FillRegion(0, 0, 2, 2, 1))
	requireGrid(t, [][]int{{1, 1}, {1, 1}}, m)
}

// TestFillRegionAtomicCorners reports the failing corner of the rectangle.
func TestFillRegionAtomicCorners(t *testing.T) {
	tests := []struct {
		name           string
		sr, sc, er, ec int
		wantErr        string
	}{
		{"bottom-right outside", 0, 0, 3, 2, "Matrix.FillRegion(2,1): matrix: index out of range"},
		{"top-left outside", -1, 0, 1, 1, "Matrix.FillRegion(-1,0): matrix: index out of range"},
		{"right edge outside", 1, 1, 2, 3, "Matrix.FillRegion(1,2): matrix: index out of range"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustNew(t, 2, 2, 0, matrix.WithAtomicFill[int]())
			err := m.FillRegion(tc.sr, tc.sc, tc.er, tc.ec, 1)
			require.ErrorIs(t, err, matrix.ErrOutOfRange)
			require.EqualError(t, err, tc.wantErr)
			requireGrid(t, [][]int{{0, 0}, {0, 0}}, m)
		})
	}

	m := mustNew(t, 2, 2, 0, matrix.WithAtomicFill[int]())
	require.NoError(t, m.FillRegion(5, 5, 5, 9, 1), "empty rectangle needs no corners in range")
	require.NoError(t, m.FillRegion(1, 0, 2, 2, 1))
	requireGrid(t, [][]int{{0, 0}, {1, 1}}, m)
}

// TestFillLine covers diagonal, horizontal, vertical and strided walks.
func TestFillLine(t *testing.T) {
	tests := []struct {
		name                   string
		sr, sc, dr, dc, er, ec int
		want                   [][]int
	}{
		{"diagonal", 0, 0, 1, 1, 3, 3, [][]int{{7, 0, 0}, {0, 7, 0}, {0, 0, 7}}},
		{"horizontal", 1, 0, 0, 1, 2, 3, [][]int{{0, 0, 0}, {7, 7, 7}, {0, 0, 0}}},
		{"vertical", 0, 2, 1, 0, 3, 3, [][]int{{0, 0, 7}, {0, 0, 7}, {0, 0, 7}}},
		{"stride 2", 0, 0, 0, 2, 1, 3, [][]int{{7, 0, 7}, {0, 0, 0}, {0, 0, 0}}},
		{"start past end", 3, 0, 1, 1, 3, 3, [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := mustNew(t, 3, 3, 0)
			require.NoError(t, m.FillLine(tc.sr, tc.sc, tc.dr, tc.dc, tc.er, tc.ec, 7))
			requireGrid(t, tc.want, m)
		})
	}
}

// TestFillLineNegativeStep walks against the row axis; end bounds still use <.
func TestFillLineNegativeStep(t *testing.T) {
	m := mustNew(t, 3, 3, 0)
	require.NoError(t, m.FillLine(2, 0, -1, 1, 3, 3, 4)) // anti-diagonal, stops at col 3
	requireGrid(t, [][]int{{0, 0, 4}, {0, 4, 0}, {4, 0, 0}}, m)

	up := mustNew(t, 3, 3, 0)
	err := up.FillLine(2, 1, -1, 0, 3, 3, 4) // only leaves the loop by leaving the grid
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.EqualError(t, err, "Matrix.FillLine(-1,1): matrix: index out of range")
	requireGrid(t, [][]int{{0, 4, 0}, {0, 4, 0}, {0, 4, 0}}, up)
}

// TestFillLinePartialFailure keeps cells written before the walk leaves the grid.
func TestFillLinePartialFailure(t *testing.T) {
	m := mustNew(t, 2, 2, 0)
	err := m.FillLine(0, 0, 1, 1, 5, 5, 9)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	requireGrid(t, [][]int{{9, 0}, {0, 9}}, m)
}

// TestFillLineAtomic writes nothing when the walk would leave the grid.
func TestFillLineAtomic(t *testing.T) {
	m := mustNew(t, 2, 2, 0, matrix.WithAtomicFill[int]())
	require.ErrorIs(t, m.FillLine(0, 0, 1, 1, 5, 5, 9), matrix.ErrOutOfRange)
	requireGrid(t, [][]int{{0, 0}, {0, 0}}, m)
}

// TestFillLineZeroStep rejects a walk that would never advance.
func TestFillLineZeroStep(t *testing.T) {
	m := mustNew(t, 2, 2, 0)
	require.ErrorIs(t, m.FillLine(0, 0, 0, 0, 2, 2, 1), matrix.ErrZeroStep)
	requireGrid(t, [][]int{{0, 0}, {0, 0}}, m)

	require.NoError(t, m.FillLine(2, 2, 0, 0, 2, 2, 1), "no iterations, nothing to reject")
}

// TestFillLineZeroStepOutsideGrid reports the out-of-range start before the step.
func TestFillLineZeroStepOutsideGrid(t *testing.T) {
	m := mustNew(t, 2, 2, 0)
	err := m.FillLine(-1, 0, 0, 0, 1, 1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.NotErrorIs(t, err, matrix.ErrZeroStep)
	require.EqualError(t, err, "Matrix.FillLine(-1,0): matrix: index out of range")
	requireGrid(t, [][]int{{0, 0}, {0, 0}}, m)
}
