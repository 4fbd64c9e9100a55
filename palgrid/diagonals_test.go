package palgrid_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/palindromes/builder"
	"github.com/katalvlaran/palindromes/palgrid"
)

// TestDiagonals_3x3 checks content and order on a square grid.
//
//	a b c
//	d e f
//	g h i
func TestDiagonals_3x3(t *testing.T) {
	g, err := palgrid.NewGridFromStrings([]string{"abc", "def", "ghi"})
	require.NoError(t, err)

	assert.Equal(t, strs("aei", "bf", "c", "dh", "g"), g.DownDiagonals())
	assert.Equal(t, strs("a", "bd", "ceg", "fh", "i"), g.UpDiagonals())
}

// TestDiagonals_Wide checks a 2×3 grid where the diagonals are clipped by
// the row count.
func TestDiagonals_Wide(t *testing.T) {
	g, err := palgrid.NewGridFromStrings([]string{"abc", "def"})
	require.NoError(t, err)

	assert.Equal(t, strs("ae", "bf", "c", "d"), g.DownDiagonals())
	assert.Equal(t, strs("a", "bd", "ce", "f"), g.UpDiagonals())
}

// TestDiagonals_Tall checks a 3×1 column grid: every diagonal is one cell.
func TestDiagonals_Tall(t *testing.T) {
	g, err := palgrid.NewGridFromStrings([]string{"x", "y", "z"})
	require.NoError(t, err)

	assert.Equal(t, strs("x", "y", "z"), g.DownDiagonals())
	assert.Equal(t, strs("x", "y", "z"), g.UpDiagonals())
}

// TestDiagonals_CountAndCoverage verifies R+C−1 diagonals per family, that
// every cell appears exactly once per family, and that lengths stay within
// [1, min(R,C)].
func TestDiagonals_CountAndCoverage(t *testing.T) {
	shapes := [][2]int{{1, 1}, {1, 7}, {7, 1}, {4, 4}, {3, 8}, {8, 3}, {13, 21}}
	for _, sh := range shapes {
		r, c := sh[0], sh[1]
		t.Run(fmt.Sprintf("%dx%d", r, c), func(t *testing.T) {
			cells, err := builder.RandomGrid(r, c, builder.WithSeed(int64(r*100+c)))
			require.NoError(t, err)
			g, err := palgrid.NewGrid(cells)
			require.NoError(t, err)

			for name, fam := range map[string][][]rune{
				"down": g.DownDiagonals(),
				"up":   g.UpDiagonals(),
			} {
				require.Len(t, fam, r+c-1, name)
				total := 0
				for _, d := range fam {
					assert.GreaterOrEqual(t, len(d), 1, name)
					assert.LessOrEqual(t, len(d), min(r, c), name)
					total += len(d)
				}
				assert.Equal(t, r*c, total, "%s covers every cell once", name)
			}
		})
	}
}
