// Package palgrid provides utilities to read a 2D grid of symbols as
// families of 1D sequences. It supports:
//
//   - Construction with rectangularity checks and a defensive deep copy
//   - Row and column extraction
//   - ↘ and ↗ diagonal extraction (see diagonals.go)
package palgrid

import "fmt"

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(R×C) time and memory.
func NewGrid(cells [][]rune) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for r, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("NewGrid: row %d has %d symbols, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
	}
	// Deep copy to prevent external mutation
	cp := make([][]rune, h)
	for r := 0; r < h; r++ {
		cp[r] = make([]rune, w)
		copy(cp[r], cells[r])
	}

	return &Grid{rows: h, cols: w, cells: cp}, nil
}

// NewGridFromStrings builds a Grid with one row per line, one symbol per
// rune. Lines must have equal rune counts.
func NewGridFromStrings(lines []string) (*Grid, error) {
	cells := make([][]rune, len(lines))
	for i, line := range lines {
		cells[i] = []rune(line)
	}

	return NewGrid(cells)
}

// Rows returns R, the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns C, the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (r,c) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

// At returns the symbol at row r, column c, or ErrOutOfRange.
func (g *Grid) At(r, c int) (rune, error) {
	if !g.InBounds(r, c) {
		return 0, fmt.Errorf("At(%d,%d) on %dx%d grid: %w", r, c, g.rows, g.cols, ErrOutOfRange)
	}

	return g.cells[r][c], nil
}

// RowSequences returns R sequences of length C, each read left to right.
// The slices are fresh copies.
// Complexity: O(R×C).
func (g *Grid) RowSequences() [][]rune {
	out := make([][]rune, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = append([]rune(nil), g.cells[r]...)
	}

	return out
}

// ColumnSequences returns C sequences of length R, each read top to bottom.
// Complexity: O(R×C).
func (g *Grid) ColumnSequences() [][]rune {
	out := make([][]rune, g.cols)
	for c := 0; c < g.cols; c++ {
		col := make([]rune, g.rows)
		for r := 0; r < g.rows; r++ {
			col[r] = g.cells[r][c]
		}
		out[c] = col
	}

	return out
}

// Sequences dispatches to the extractor for d.
// Returns ErrUnknownDirection for values outside the four families.
func (g *Grid) Sequences(d Direction) ([][]rune, error) {
	switch d {
	case Rows:
		return g.RowSequences(), nil
	case Columns:
		return g.ColumnSequences(), nil
	case DownDiagonals:
		return g.DownDiagonals(), nil
	case UpDiagonals:
		return g.UpDiagonals(), nil
	default:
		return nil, fmt.Errorf("Sequences(%v): %w", d, ErrUnknownDirection)
	}
}
