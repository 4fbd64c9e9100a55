// SPDX-License-Identifier: MIT
// Package: palindromes/builder
//
// grid.go — RandomGrid(rows, cols) generator.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrBadSize).
//   • Cells are filled in row-major order from a single RNG stream, so a
//     seed fixes the whole grid.

package builder

import (
	"fmt"
	"math/rand"
)

const (
	methodRandomGrid = "RandomGrid"
	minGridDim       = 1
)

// RandomGrid returns a rows×cols grid of symbols drawn from the alphabet.
// Complexity: O(rows·cols).
func RandomGrid(rows, cols int, opts ...Option) ([][]rune, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodRandomGrid, rows, cols, minGridDim, ErrBadSize)
	}
	cfg := newBuilderConfig(opts...)
	rng := rngFrom(cfg)

	out := make([][]rune, rows)
	for r := range out {
		out[r] = draw(cols, cfg, rng)
	}

	return out, nil
}

// draw fills n symbols from cfg.alphabet using rng.
func draw(n int, cfg builderConfig, rng *rand.Rand) []rune {
	out := make([]rune, n)
	for i := range out {
		out[i] = cfg.alphabet[rng.Intn(len(cfg.alphabet))]
	}

	return out
}
