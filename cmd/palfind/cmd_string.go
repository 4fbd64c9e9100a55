package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/palindromes/palindrome"
)

// newStringCmd runs the sequence engine on every positional argument.
func newStringCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "string <text>...",
		Short: "List the palindromes of each argument, read cyclically",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]Result, 0, len(args))
			for _, s := range args {
				start := time.Now()
				set, err := palindrome.FindAllString(s)
				if err != nil {
					return fmt.Errorf("string %q: %w", s, err)
				}
				a.logger.Debug("string scanned",
					slog.Int("symbols", len([]rune(s))),
					slog.Int("palindromes", set.Len()),
					slog.Duration("elapsed", time.Since(start)))
				results = append(results, newResult(s, set))
			}
			return a.writeResults(results)
		},
	}
}
