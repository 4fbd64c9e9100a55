// SPDX-License-Identifier: MIT
// Package: palindromes/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil → a local rand seeded with DefaultSeed per call
//   • alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

package builder

import "math/rand"

// DefaultSeed seeds the per-call RNG when neither WithSeed nor WithRand is
// given, so unconfigured generators are still reproducible.
const DefaultSeed int64 = 1

// DefaultAlphabet is the 26 upper-case Latin letters.
const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// builderConfig aggregates all knobs used by generators.
// It is passed by VALUE (immutable to callers).
type builderConfig struct {
	rng      *rand.Rand // shared stream; nil means "seed locally"
	alphabet []rune     // symbols drawn uniformly
}

// newBuilderConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		alphabet: []rune(DefaultAlphabet),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded with DefaultSeed.
func rngFrom(cfg builderConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(DefaultSeed))
}
