// SPDX-License-Identifier: MIT
// Package: palindromes/palindrome
//
// errors.go — sentinel errors for the palindrome package.
//
// Error policy:
//   • Only package-level sentinels are exposed; match with errors.Is.
//   • Context (index, symbol) is attached with %w at the call site.
//   • Algorithms never panic; WithX option constructors may.

package palindrome

import "errors"

// ErrSentinelCollision indicates that an input symbol equals the left or
// right sentinel. The augmented sequence would then stop (or fail to stop)
// expanding at the wrong place, so the input is rejected before any work.
var ErrSentinelCollision = errors.New("palindrome: input symbol collides with a sentinel")
