// Package builder generates deterministic inputs for the palindrome engines:
// random symbol sequences, random rectangular grids and repeated blocks.
//
// The package follows the functional-options style used across the module:
//
//   - Option:        a function that mutates builderConfig before use.
//   - WithSeed:      reproducible RNG stream (default seed is DefaultSeed).
//   - WithRand:      share one *rand.Rand across several calls.
//   - WithAlphabet:  symbols to draw from (default "A"…"Z").
//
// Guarantees:
//
//   - Determinism: the same options always yield the same output.
//   - Fast-fail on meaningless option values via panics in WithX constructors.
//   - Structured runtime errors (ErrBadSize, ErrEmptyBlock) wrapped with the
//     method name, matched with errors.Is.
//
// Complexity is linear in the number of generated symbols for every
// constructor.
package builder
