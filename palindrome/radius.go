// SPDX-License-Identifier: MIT
// Package: palindromes/palindrome
//
// radius.go — augmented sequence and the linear-time radius table.

package palindrome

import "fmt"

// augment returns left + seq + seq + right after checking that no input
// symbol equals a sentinel. The returned slice has length 2L+2.
// Complexity: O(L) time and memory.
func augment(seq []rune, cfg config) ([]rune, error) {
	for i, sym := range seq {
		if sym == cfg.left || sym == cfg.right {
			return nil, fmt.Errorf("augment: symbol %q at index %d: %w", sym, i, ErrSentinelCollision)
		}
	}
	l := len(seq)
	aug := make([]rune, 2*l+2)
	aug[0] = cfg.left
	copy(aug[1:], seq)
	copy(aug[1+l:], seq)
	aug[2*l+1] = cfg.right

	return aug, nil
}

// BuildRadii computes the RadiusTable of seq under wrap-around augmentation.
//
// Steps (per parity p):
//  1. Start at center i=1 with radius 0.
//  2. Expand while S[i-r-1] == S[i+p+r]; every index is bounds-checked, so a
//     misconfigured buffer stops expansion instead of reading past it.
//  3. Store R[i] = r. For k = 1.. while k < r and R[i-k] != r-k, the mirror
//     center i-k lies strictly inside the window (or pokes out of it), so
//     R[i+k] = min(R[i-k], r-k) without any comparison.
//  4. The first k whose mirror touches the window edge (or k == r) becomes
//     the next center, seeded with max(r-k, 0) instead of zero.
//
// Returns ErrSentinelCollision (wrapped) if seq contains a sentinel.
// Complexity: O(L) time, O(L) memory; each symbol comparison that succeeds
// advances the right window edge, which never moves left.
func BuildRadii(seq []rune, opts ...Option) (*RadiusTable, error) {
	cfg := newConfig(opts...)
	aug, err := augment(seq, cfg)
	if err != nil {
		return nil, fmt.Errorf("BuildRadii: %w", err)
	}
	t := newRadiusTable(len(seq))
	for _, p := range parities {
		fillRow(t.radii[p], aug, int(p))
	}

	return t, nil
}

// fillRow runs the expand + mirror-copy pass for one parity. row must have
// length len(aug)-1; row[0] stays zero.
func fillRow(row []int, aug []rune, p int) {
	last := len(row) - 1 // highest center, 2L
	i, radius := 1, 0
	for i <= last {
		for {
			lo, hi := i-radius-1, i+p+radius
			if lo < 0 || hi >= len(aug) || aug[lo] != aug[hi] {
				break
			}
			radius++
		}
		row[i] = radius

		k := 1
		for k < radius && i+k <= last && row[i-k] != radius-k {
			row[i+k] = min(row[i-k], radius-k)
			k++
		}
		radius = max(radius-k, 0)
		i += k
	}
}
