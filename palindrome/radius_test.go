package palindrome_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/palindromes/palindrome"
)

// TestBuildRadii_Aba checks every radius of "aba" (augmented: $abaaba@).
func TestBuildRadii_Aba(t *testing.T) {
	tbl, err := palindrome.BuildRadii([]rune("aba"))
	require.NoError(t, err)
	require.Equal(t, 3, tbl.Len())
	require.Equal(t, 6, tbl.Centers())

	even := []int{0, 0, 0, 3, 0, 0}
	odd := []int{0, 1, 0, 0, 1, 0}
	for i := 1; i <= tbl.Centers(); i++ {
		assert.Equal(t, even[i-1], tbl.Radius(palindrome.Even, i), "even center %d", i)
		assert.Equal(t, odd[i-1], tbl.Radius(palindrome.Odd, i), "odd center %d", i)
	}
}

// TestBuildRadii_Racecar checks the maximal centers used by the wrap cases.
func TestBuildRadii_Racecar(t *testing.T) {
	tbl, err := palindrome.BuildRadii([]rune("racecar"))
	require.NoError(t, err)

	// Even: racecar|racecar is itself a palindrome around the seam between
	// aug[7] and aug[8]. The length cap later discards everything past 7.
	c, r := tbl.Max(palindrome.Even)
	assert.Equal(t, 8, c)
	assert.Equal(t, 7, r)

	// Odd: "racecar" centered on the first e (aug[4]).
	c, r = tbl.Max(palindrome.Odd)
	assert.Equal(t, 4, c)
	assert.Equal(t, 3, r)
}

// TestRadiusTable_OutOfRange reports zero for unaddressable centers.
func TestRadiusTable_OutOfRange(t *testing.T) {
	tbl, err := palindrome.BuildRadii([]rune("aa"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Radius(palindrome.Even, 0))
	assert.Equal(t, 0, tbl.Radius(palindrome.Even, tbl.Centers()+1))
	assert.Equal(t, 0, tbl.Radius(palindrome.Parity(7), 1))
}

// TestBuildRadii_Empty yields an empty table without error.
func TestBuildRadii_Empty(t *testing.T) {
	tbl, err := palindrome.BuildRadii(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Centers())
	c, r := tbl.Max(palindrome.Odd)
	assert.Zero(t, c)
	assert.Zero(t, r)
}

// TestBuildRadii_SentinelCollision mirrors FindAll's validation.
func TestBuildRadii_SentinelCollision(t *testing.T) {
	_, err := palindrome.BuildRadii([]rune{'x', palindrome.DefaultRightSentinel})
	require.ErrorIs(t, err, palindrome.ErrSentinelCollision)
}

// TestParity_String covers the Stringer.
func TestParity_String(t *testing.T) {
	assert.Equal(t, "even", palindrome.Even.String())
	assert.Equal(t, "odd", palindrome.Odd.String())
	assert.Equal(t, "unknown", palindrome.Parity(3).String())
}
