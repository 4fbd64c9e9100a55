// SPDX-License-Identifier: MIT
// Package: palindromes/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Runtime validation wraps a sentinel with the method name via %w.
//   • Generators never panic; option constructors do on nonsense input.

package builder

import "errors"

// ErrBadSize indicates a negative length, or a grid dimension below one.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n/rows/cols */ }.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrEmptyBlock indicates RepeatBlock was given an empty block.
var ErrEmptyBlock = errors.New("builder: block must be non-empty")
