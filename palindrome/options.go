// SPDX-License-Identifier: MIT
// Package: palindromes/palindrome
//
// options.go — functional options and resolved engine configuration.
//
// Contract:
//   • Options are applied in order; later options override earlier ones.
//   • Option constructors panic on meaningless input (two equal sentinels).
//   • Defaults are deterministic: sentinels are DefaultLeftSentinel and
//     DefaultRightSentinel, neither of which UTF-8 decoding can produce.

package palindrome

// Default sentinels. Negative runes never come out of a string conversion,
// so FindAllString with defaults cannot hit ErrSentinelCollision.
const (
	DefaultLeftSentinel  rune = -1
	DefaultRightSentinel rune = -2
)

// Option customizes a single engine invocation.
type Option func(*config)

// config is the resolved set of engine knobs, passed by value.
type config struct {
	left  rune // written before the doubled input
	right rune // written after the doubled input
}

// newConfig returns defaults with opts applied in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		left:  DefaultLeftSentinel,
		right: DefaultRightSentinel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSentinels overrides the boundary symbols of the augmented sequence.
// Use it when the input alphabet legitimately contains negative runes.
// Such runes are still found, but Set keys are UTF-8 strings: every
// negative or otherwise invalid rune encodes as U+FFFD, so palindromes that
// differ only in those symbols share one entry.
// Panics if left == right: expansion at the last center would then never
// terminate on its own.
func WithSentinels(left, right rune) Option {
	if left == right {
		panic("palindrome: WithSentinels(left == right)")
	}
	return func(c *config) {
		c.left, c.right = left, right
	}
}
