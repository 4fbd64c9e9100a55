// SPDX-License-Identifier: MIT
// Package: palindromes/builder
//
// sequence.go — one-dimensional generators.

package builder

import (
	"fmt"
	"strings"
)

const (
	methodRandomSequence = "RandomSequence"
	methodRepeatBlock    = "RepeatBlock"
)

// RandomSequence returns n symbols drawn uniformly from the configured
// alphabet. n == 0 yields an empty, non-nil slice.
// Returns ErrBadSize if n < 0.
// Complexity: O(n).
func RandomSequence(n int, opts ...Option) ([]rune, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomSequence, n, ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)

	return draw(n, cfg, rngFrom(cfg)), nil
}

// RandomString is RandomSequence rendered as a string.
func RandomString(n int, opts ...Option) (string, error) {
	seq, err := RandomSequence(n, opts...)
	if err != nil {
		return "", err
	}

	return string(seq), nil
}

// RepeatBlock concatenates block times times. It is the canonical input for
// scaling checks: occurrences grow with times, distinct palindromes don't.
// Returns ErrEmptyBlock for "" and ErrBadSize for times < 1.
func RepeatBlock(block string, times int) (string, error) {
	if block == "" {
		return "", fmt.Errorf("%s: %w", methodRepeatBlock, ErrEmptyBlock)
	}
	if times < 1 {
		return "", fmt.Errorf("%s: times=%d: %w", methodRepeatBlock, times, ErrBadSize)
	}

	return strings.Repeat(block, times), nil
}
