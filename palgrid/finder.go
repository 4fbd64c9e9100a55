// SPDX-License-Identifier: MIT
// Package: palindromes/palgrid
//
// finder.go — grid finder: decompose, run the engine, union.
//
// Contract:
//   • The result is the union of palindrome.FindAll over every sequence of
//     every requested family. No positions are kept, only content.
//   • With workers > 1 each sequence is an independent errgroup task; the
//     partial sets are merged after Wait, so output never depends on
//     scheduling.
//   • The first engine error cancels outstanding tasks and is returned
//     wrapped with its direction and sequence index.

package palgrid

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/palindromes/palindrome"
)

// job is one extracted sequence and where it came from.
type job struct {
	dir   Direction
	index int
	seq   []rune
}

// FindAll returns every distinct palindrome found along the requested
// directions of g. See FindAllContext.
func FindAll(g *Grid, opts ...Option) (palindrome.Set, error) {
	return FindAllContext(context.Background(), g, opts...)
}

// FindAllCells validates cells with NewGrid and runs FindAll.
func FindAllCells(cells [][]rune, opts ...Option) (palindrome.Set, error) {
	g, err := NewGrid(cells)
	if err != nil {
		return nil, fmt.Errorf("FindAllCells: %w", err)
	}

	return FindAll(g, opts...)
}

// FindAllContext is FindAll with cancellation checked between sequences.
// Returns ErrNilGrid for a nil grid and ctx.Err() (wrapped) on cancellation.
// Complexity: O(R×C) to decompose plus the engine cost per sequence.
func FindAllContext(ctx context.Context, g *Grid, opts ...Option) (palindrome.Set, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := newFinderConfig(opts...)

	jobs, err := g.collect(cfg.directions)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %w", err)
	}
	if cfg.workers == 1 {
		return runSequential(ctx, jobs, cfg)
	}

	return runParallel(ctx, jobs, cfg)
}

// collect extracts every sequence of every requested direction in order.
func (g *Grid) collect(dirs []Direction) ([]job, error) {
	var jobs []job
	for _, d := range dirs {
		seqs, err := g.Sequences(d)
		if err != nil {
			return nil, err
		}
		for i, s := range seqs {
			jobs = append(jobs, job{dir: d, index: i, seq: s})
		}
	}

	return jobs, nil
}

// runSequential processes jobs one by one, merging as it goes.
func runSequential(ctx context.Context, jobs []job, cfg finderConfig) (palindrome.Set, error) {
	out := make(palindrome.Set)
	for _, j := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("FindAll: %w", err)
		}
		set, err := j.run(cfg)
		if err != nil {
			return nil, err
		}
		out.Union(set)
	}

	return out, nil
}

// runParallel fans jobs out to at most cfg.workers goroutines. Each task
// owns its slot in parts; nothing is shared until Wait returns.
func runParallel(ctx context.Context, jobs []job, cfg finderConfig) (palindrome.Set, error) {
	parts := make([]palindrome.Set, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i, j := range jobs {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return fmt.Errorf("FindAll: %w", err)
			}
			set, err := j.run(cfg)
			if err != nil {
				return err
			}
			parts[i] = set
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(palindrome.Set)
	for _, p := range parts {
		out.Union(p)
	}

	return out, nil
}

// run invokes the engine on one sequence and tags errors with its origin.
func (j job) run(cfg finderConfig) (palindrome.Set, error) {
	set, err := palindrome.FindAll(j.seq, cfg.engine...)
	if err != nil {
		return nil, fmt.Errorf("FindAll: %s[%d]: %w", j.dir, j.index, err)
	}

	return set, nil
}
