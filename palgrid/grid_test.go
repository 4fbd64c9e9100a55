package palgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/palindromes/palgrid"
)

//----------------------------------------------------------------------------//
// NewGrid and accessors
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty or ragged inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]rune
		err   error
	}{
		{"EmptyRows", [][]rune{}, palgrid.ErrEmptyGrid},
		{"NilRows", nil, palgrid.ErrEmptyGrid},
		{"EmptyCols", [][]rune{{}}, palgrid.ErrEmptyGrid},
		{"NonRectangular", [][]rune{{'a', 'b'}, {'c'}}, palgrid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := palgrid.NewGrid(tc.cells)
			require.ErrorIs(t, err, tc.err)
			assert.Nil(t, g)
		})
	}
}

// TestNewGridFromStrings_Jagged counts runes, not bytes.
func TestNewGridFromStrings_Jagged(t *testing.T) {
	g, err := palgrid.NewGridFromStrings([]string{"éa", "bc"})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Cols())

	_, err = palgrid.NewGridFromStrings([]string{"abc", "ab"})
	require.ErrorIs(t, err, palgrid.ErrNonRectangular)
}

// TestNewGrid_DeepCopy ensures later edits to the input are not observed.
func TestNewGrid_DeepCopy(t *testing.T) {
	cells := [][]rune{{'a', 'b'}, {'c', 'd'}}
	g, err := palgrid.NewGrid(cells)
	require.NoError(t, err)
	cells[0][0] = 'z'

	got, err := g.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 'a', got)
}

// TestAt_Bounds checks At and InBounds on a 2×3 grid.
func TestAt_Bounds(t *testing.T) {
	g, err := palgrid.NewGridFromStrings([]string{"abc", "def"})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())

	got, err := g.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 'f', got)

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		assert.False(t, g.InBounds(rc[0], rc[1]))
		_, err := g.At(rc[0], rc[1])
		assert.ErrorIs(t, err, palgrid.ErrOutOfRange)
	}
}

//----------------------------------------------------------------------------//
// Rows, columns, dispatch
//----------------------------------------------------------------------------//

// TestRowAndColumnSequences reads a 3×3 grid both ways.
func TestRowAndColumnSequences(t *testing.T) {
	g, err := palgrid.NewGridFromStrings([]string{"abc", "def", "ghi"})
	require.NoError(t, err)

	assert.Equal(t, strs("abc", "def", "ghi"), g.RowSequences())
	assert.Equal(t, strs("adg", "beh", "cfi"), g.ColumnSequences())
}

// TestRowSequences_ReturnsCopies guards the grid against caller edits.
func TestRowSequences_ReturnsCopies(t *testing.T) {
	g, err := palgrid.NewGridFromStrings([]string{"ab"})
	require.NoError(t, err)
	rows := g.RowSequences()
	rows[0][0] = 'z'
	assert.Equal(t, strs("ab"), g.RowSequences())
}

// TestSequences_Dispatch maps every direction to its extractor.
func TestSequences_Dispatch(t *testing.T) {
	g, err := palgrid.NewGridFromStrings([]string{"ab", "cd"})
	require.NoError(t, err)

	want := map[palgrid.Direction][][]rune{
		palgrid.Rows:          g.RowSequences(),
		palgrid.Columns:       g.ColumnSequences(),
		palgrid.DownDiagonals: g.DownDiagonals(),
		palgrid.UpDiagonals:   g.UpDiagonals(),
	}
	for d, seqs := range want {
		got, err := g.Sequences(d)
		require.NoError(t, err, d.String())
		assert.Equal(t, seqs, got, d.String())
	}

	_, err = g.Sequences(palgrid.Direction(9))
	require.ErrorIs(t, err, palgrid.ErrUnknownDirection)
}

// TestParseDirection round-trips names and rejects unknown ones.
func TestParseDirection(t *testing.T) {
	for _, d := range palgrid.AllDirections() {
		got, err := palgrid.ParseDirection(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := palgrid.ParseDirection(" Down ")
	require.NoError(t, err)
	assert.Equal(t, palgrid.DownDiagonals, got)

	_, err = palgrid.ParseDirection("sideways")
	require.ErrorIs(t, err, palgrid.ErrUnknownDirection)
	assert.Equal(t, "Direction(-1)", palgrid.Direction(-1).String())
}

// strs converts strings to rune slices for compact expectations.
func strs(ss ...string) [][]rune {
	out := make([][]rune, len(ss))
	for i, s := range ss {
		out[i] = []rune(s)
	}

	return out
}
