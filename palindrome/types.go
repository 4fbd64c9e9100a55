// SPDX-License-Identifier: MIT
// Package: palindromes/palindrome
//
// types.go — parity, radius table and the result set.

package palindrome

import (
	"sort"
	"unicode/utf8"
)

// Parity selects the center kind of a radius row.
//
//   - Even: the center sits between two symbols; radius r spans 2r symbols.
//   - Odd: the center sits on a symbol; radius r spans 2r+1 symbols.
//
// The numeric value is the length offset p in 2r+p.
type Parity int

const (
	// Even parity: palindromes of even length (aa, abba, …).
	Even Parity = iota
	// Odd parity: palindromes of odd length (aba, abcba, …).
	Odd
)

// parities lists both rows in table order.
var parities = [2]Parity{Even, Odd}

// String implements fmt.Stringer.
func (p Parity) String() string {
	switch p {
	case Even:
		return "even"
	case Odd:
		return "odd"
	default:
		return "unknown"
	}
}

// RadiusTable stores, per parity, the maximal palindrome radius at every
// center of the augmented sequence left + s + s + right.
//
// Centers are 1-based: i ∈ [1, 2L]. Slot 0 of each row is a permanent zero
// so the mirror step can read R[i-k] without a branch.
type RadiusTable struct {
	length int      // L, the original input length
	radii  [2][]int // radii[p][i], each row len 2L+1
}

// newRadiusTable preallocates both rows for an input of length l.
// Complexity: O(L) time and memory.
func newRadiusTable(l int) *RadiusTable {
	n := 2*l + 1
	return &RadiusTable{
		length: l,
		radii:  [2][]int{make([]int, n), make([]int, n)},
	}
}

// Len returns L, the length of the sequence the table was built for.
func (t *RadiusTable) Len() int { return t.length }

// Centers returns the number of addressable centers (2L).
func (t *RadiusTable) Centers() int { return 2 * t.length }

// Radius returns the maximal radius at center i for parity p.
// Out-of-range centers and unknown parities report 0.
func (t *RadiusTable) Radius(p Parity, i int) int {
	if p != Even && p != Odd {
		return 0
	}
	if i < 1 || i > t.Centers() {
		return 0
	}

	return t.radii[p][i]
}

// Max returns the center holding the largest radius for parity p, ignoring
// the length cap. Ties resolve to the smallest center. An empty table
// reports (0, 0).
func (t *RadiusTable) Max(p Parity) (center, radius int) {
	for i := 1; i <= t.Centers(); i++ {
		if r := t.Radius(p, i); r > radius {
			center, radius = i, r
		}
	}

	return center, radius
}

// Set holds distinct palindromes keyed by content.
// Keys are the UTF-8 encoding of the symbols, so runes outside the Unicode
// range (including negative ones) all render as U+FFFD.
// A nil Set is read-only; use make(Set) or a finder result.
type Set map[string]struct{}

// Add inserts s. Re-adding an existing palindrome is a no-op.
func (s Set) Add(p string) { s[p] = struct{}{} }

// Has reports whether p is in the set.
func (s Set) Has(p string) bool {
	_, ok := s[p]
	return ok
}

// Len returns the number of distinct palindromes.
func (s Set) Len() int { return len(s) }

// Union adds every member of other into s and returns s.
// Union is commutative and associative, so merge order never changes the
// result.
func (s Set) Union(other Set) Set {
	for p := range other {
		s[p] = struct{}{}
	}

	return s
}

// Sorted returns the members ordered by symbol count (longest first), then
// lexicographically. The order is a presentation aid only.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		li, lj := utf8.RuneCountInString(out[i]), utf8.RuneCountInString(out[j])
		if li != lj {
			return li > lj
		}
		return out[i] < out[j]
	})

	return out
}

// Longest returns the longest member (lexicographically smallest on ties),
// or "" for an empty set.
func (s Set) Longest() string {
	if len(s) == 0 {
		return ""
	}

	return s.Sorted()[0]
}
