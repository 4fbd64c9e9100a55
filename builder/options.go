// SPDX-License-Identifier: MIT
// Package: palindromes/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// Option customizes a generator by mutating a builderConfig.
type Option func(*builderConfig)

// WithRand provides an explicit RNG, letting several calls share one stream.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithAlphabet sets the symbols to draw from. Repeated symbols weight the
// draw. Panics on an empty alphabet.
func WithAlphabet(alphabet string) Option {
	if alphabet == "" {
		panic("builder: WithAlphabet(\"\")")
	}
	symbols := []rune(alphabet)
	return func(c *builderConfig) {
		c.alphabet = symbols
	}
}
