// Package palindrome enumerates every distinct non-trivial palindromic
// substring of a symbol sequence in linear time, including palindromes that
// wrap around the end of the sequence back to its beginning.
//
// 🚀 What is a wrap-around palindrome?
//
//	The input is treated as cyclic for matching purposes. For "racecar" the
//	ordinary palindromes are cec, aceca and racecar, but reading past the
//	last 'r' and continuing from the first one also yields rr, arra and
//	carrac:
//
//	  racecar|racecar
//	        ^^            rr
//	       ^^^^           arra
//	      ^^^^^^          carrac
//
// ✨ Key features:
//   - Manacher-style radius table for both parities, built in O(L)
//   - wrap-around detection via doubling: left + s + s + right
//   - set semantics: every palindrome is reported once, by content
//   - configurable sentinels (WithSentinels) for callers that use negative runes
//
// ⚙️ Usage:
//
//	set, err := palindrome.FindAllString("racecar")
//	if err != nil {
//	  // only ErrSentinelCollision is possible
//	}
//	fmt.Println(set.Sorted()) // [racecar carrac aceca arra cec rr]
//
// Algorithm:
//
//  1. Build the augmented sequence S = left + s + s + right (length 2L+2).
//  2. For each parity p (Even=0, Odd=1) and center i = 1..2L, grow the
//     radius while S[i-r-1] == S[i+p+r], store it, then copy mirrored radii
//     min(R[i-k], r-k) forward until a mirror touches the window edge.
//     The next expansion starts from the surviving lower bound, never from
//     zero, which keeps the pass linear.
//  3. For every center and parity, emit each nested palindrome of radius
//     r..1 whose length 2r+p does not exceed L.
//
// Performance:
//
//   - Table: O(L) time and memory.
//   - Expansion: O(number of palindromic occurrences). That is linear for
//     random text but quadratic for a single repeated symbol ("aaaa…"),
//     where Θ(L²) occurrences collapse into O(L) distinct strings.
//
// Approximation:
//
//	The 2r+p ≤ L cap discards palindromes longer than the input. Those are
//	artifacts of the doubling in the common case, but a wrap palindrome of
//	length L+1 or L+2 may carry content not seen at shorter lengths and is
//	dropped all the same. The cap is kept for compatibility with the
//	reference behaviour.
//
// Errors:
//
//   - ErrSentinelCollision: an input symbol equals one of the sentinels.
package palindrome
