// SPDX-License-Identifier: MIT
// Package: palindromes/palindrome
//
// palindrome.go — expansion of the radius table into the result set.

package palindrome

import "fmt"

// minLength is the shortest palindrome worth reporting; single symbols are
// trivially palindromic and never emitted.
const minLength = 2

// FindAll returns every distinct palindromic substring of seq whose length
// lies in [2, len(seq)], reading seq cyclically.
//
// The result is built fresh per call and owned by the caller. Empty and
// single-symbol inputs yield an empty set and a nil error. The only error
// is ErrSentinelCollision (wrapped).
//
// Example:
//
//	set, _ := FindAll([]rune("racecar"))
//	// set == {cec, aceca, racecar, rr, arra, carrac}
//
// Complexity: O(L) for the table plus O(occurrences) for the expansion.
func FindAll(seq []rune, opts ...Option) (Set, error) {
	out := make(Set)
	l := len(seq)
	if l < minLength {
		// Still validate so a colliding single symbol is reported
		// consistently with longer inputs.
		if _, err := augment(seq, newConfig(opts...)); err != nil {
			return nil, fmt.Errorf("FindAll: %w", err)
		}
		return out, nil
	}

	t, err := BuildRadii(seq, opts...)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	expand(t, seq, out)

	return out, nil
}

// FindAllString is FindAll over the runes of s.
func FindAllString(s string, opts ...Option) (Set, error) {
	return FindAll([]rune(s), opts...)
}

// expand inserts every palindrome nested inside each maximal one.
// Center i, parity p, radius r maps to doubled[i-r-1 : i-r-1+2r+p], where
// doubled = seq + seq is the augmented buffer without its sentinels.
// Radii whose span exceeds L are skipped: they come from the doubling.
func expand(t *RadiusTable, seq []rune, out Set) {
	l := len(seq)
	doubled := make([]rune, 0, 2*l)
	doubled = append(doubled, seq...)
	doubled = append(doubled, seq...)

	for i := 1; i <= t.Centers(); i++ {
		for _, p := range parities {
			// Largest radius that fits: 2r+p ≤ L.
			r := min(t.radii[p][i], (l-int(p))/2)
			for ; r > 0; r-- {
				start := i - r - 1
				out.Add(string(doubled[start : start+2*r+int(p)]))
			}
		}
	}
}

// IsPalindrome reports whether seq reads the same in both directions.
// The empty sequence is a palindrome.
func IsPalindrome(seq []rune) bool {
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		if seq[i] != seq[j] {
			return false
		}
	}

	return true
}
