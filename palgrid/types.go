// Package palgrid defines the grid type and direction families for the
// palgrid subpackage of github.com/katalvlaran/palindromes.
package palgrid

import (
	"fmt"
	"strings"
)

// Direction selects a family of sequences extracted from a Grid.
type Direction int

const (
	// Rows reads each row left to right.
	Rows Direction = iota
	// Columns reads each column top to bottom.
	Columns
	// DownDiagonals reads each ↘ diagonal (column−row constant) by increasing row.
	DownDiagonals
	// UpDiagonals reads each ↗ diagonal (row+column constant) by increasing row.
	UpDiagonals
)

// directionNames are the short names accepted by ParseDirection.
var directionNames = [...]string{
	Rows:          "rows",
	Columns:       "columns",
	DownDiagonals: "down",
	UpDiagonals:   "up",
}

// AllDirections returns the four families in scan order.
func AllDirections() []Direction {
	return []Direction{Rows, Columns, DownDiagonals, UpDiagonals}
}

// Valid reports whether d is one of the four families.
func (d Direction) Valid() bool {
	return d >= Rows && d <= UpDiagonals
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return directionNames[d]
}

// ParseDirection maps a short name ("rows", "columns", "down", "up") back
// to its Direction. Matching is case-insensitive.
func ParseDirection(s string) (Direction, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}

	return 0, fmt.Errorf("ParseDirection(%q): %w", s, ErrUnknownDirection)
}

// Grid is an immutable rectangular array of symbols.
// cells[r][c] holds the symbol at row r, column c.
type Grid struct {
	rows, cols int
	cells      [][]rune
}
