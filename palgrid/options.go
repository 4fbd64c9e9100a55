// SPDX-License-Identifier: MIT
// Package: palindromes/palgrid
//
// options.go — functional options for the grid finder.
//
// Deterministic defaults:
//   • directions = AllDirections()
//   • workers    = 1 (sequential, no goroutines)
//   • engine     = palindrome defaults
//
// Results never depend on workers: partial sets are merged by union.

package palgrid

import "github.com/katalvlaran/palindromes/palindrome"

// DefaultWorkers keeps the finder sequential unless asked otherwise.
const DefaultWorkers = 1

// Option customizes a finder call.
type Option func(*finderConfig)

// finderConfig is the resolved finder configuration, passed by value.
type finderConfig struct {
	directions []Direction
	workers    int
	engine     []palindrome.Option
}

// newFinderConfig applies opts in order over the defaults.
func newFinderConfig(opts ...Option) finderConfig {
	cfg := finderConfig{
		directions: AllDirections(),
		workers:    DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDirections restricts the scanned families. Duplicates are scanned
// once. Panics on an empty list or an unknown Direction.
func WithDirections(ds ...Direction) Option {
	if len(ds) == 0 {
		panic("palgrid: WithDirections()")
	}
	seen := make(map[Direction]bool, len(ds))
	uniq := make([]Direction, 0, len(ds))
	for _, d := range ds {
		if !d.Valid() {
			panic("palgrid: WithDirections(unknown direction)")
		}
		if !seen[d] {
			seen[d] = true
			uniq = append(uniq, d)
		}
	}
	return func(c *finderConfig) {
		c.directions = uniq
	}
}

// WithWorkers sets how many sequences are processed concurrently.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("palgrid: WithWorkers(n<1)")
	}
	return func(c *finderConfig) {
		c.workers = n
	}
}

// WithEngineOptions forwards options to every palindrome.FindAll call.
func WithEngineOptions(opts ...palindrome.Option) Option {
	return func(c *finderConfig) {
		c.engine = append(c.engine, opts...)
	}
}
