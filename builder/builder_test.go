package builder_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/palindromes/builder"
)

// TestRandomSequence_Deterministic verifies equal seeds give equal output.
func TestRandomSequence_Deterministic(t *testing.T) {
	a, err := builder.RandomSequence(64, builder.WithSeed(9))
	require.NoError(t, err)
	b, err := builder.RandomSequence(64, builder.WithSeed(9))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.RandomSequence(64)
	require.NoError(t, err)
	d, err := builder.RandomSequence(64, builder.WithSeed(builder.DefaultSeed))
	require.NoError(t, err)
	assert.Equal(t, c, d, "unconfigured calls use DefaultSeed")
}

// TestRandomSequence_Alphabet keeps every symbol inside the alphabet.
func TestRandomSequence_Alphabet(t *testing.T) {
	seq, err := builder.RandomSequence(500, builder.WithAlphabet("xyz"))
	require.NoError(t, err)
	require.Len(t, seq, 500)
	for _, r := range seq {
		assert.Contains(t, "xyz", string(r))
	}

	s, err := builder.RandomString(200)
	require.NoError(t, err)
	assert.Empty(t, strings.Trim(s, builder.DefaultAlphabet))
}

// TestRandomSequence_Sizes covers zero and negative lengths.
func TestRandomSequence_Sizes(t *testing.T) {
	seq, err := builder.RandomSequence(0)
	require.NoError(t, err)
	assert.NotNil(t, seq)
	assert.Empty(t, seq)

	_, err = builder.RandomSequence(-1)
	require.ErrorIs(t, err, builder.ErrBadSize)
	_, err = builder.RandomString(-3)
	require.ErrorIs(t, err, builder.ErrBadSize)
}

// TestWithRand_SharedStream shows consecutive calls advance one stream.
func TestWithRand_SharedStream(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a, err := builder.RandomSequence(32, builder.WithRand(rng))
	require.NoError(t, err)
	b, err := builder.RandomSequence(32, builder.WithRand(rng))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

// TestRandomGrid checks shape, validation and determinism.
func TestRandomGrid(t *testing.T) {
	g, err := builder.RandomGrid(3, 5, builder.WithSeed(11))
	require.NoError(t, err)
	require.Len(t, g, 3)
	for _, row := range g {
		assert.Len(t, row, 5)
	}
	again, err := builder.RandomGrid(3, 5, builder.WithSeed(11))
	require.NoError(t, err)
	assert.Equal(t, g, again)

	cases := [][2]int{{0, 1}, {1, 0}, {-1, 4}}
	for _, rc := range cases {
		_, err := builder.RandomGrid(rc[0], rc[1])
		assert.ErrorIs(t, err, builder.ErrBadSize, "rows=%d cols=%d", rc[0], rc[1])
	}
}

// TestRepeatBlock covers the happy path and both validation errors.
func TestRepeatBlock(t *testing.T) {
	s, err := builder.RepeatBlock("ab", 3)
	require.NoError(t, err)
	assert.Equal(t, "ababab", s)

	_, err = builder.RepeatBlock("", 3)
	require.ErrorIs(t, err, builder.ErrEmptyBlock)
	_, err = builder.RepeatBlock("ab", 0)
	require.ErrorIs(t, err, builder.ErrBadSize)
}

// TestOptions_Panics confirms option constructors fail fast.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithAlphabet("") })
}
