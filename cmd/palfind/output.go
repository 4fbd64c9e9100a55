package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/palindromes/palindrome"
)

// Result is one palindrome report, the unit written by string and grid.
type Result struct {
	Source      string   `json:"source" yaml:"source"`
	Count       int      `json:"count" yaml:"count"`
	Palindromes []string `json:"palindromes" yaml:"palindromes"`
}

// newResult renders set in presentation order.
func newResult(source string, set palindrome.Set) Result {
	return Result{Source: source, Count: set.Len(), Palindromes: set.Sorted()}
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML writes v as a YAML document.
func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

// writeResults emits results in the configured format.
func (a *app) writeResults(results []Result) error {
	switch a.cfg.Output {
	case formatJSON:
		return writeJSON(a.out, results)
	case formatYAML:
		return writeYAML(a.out, results)
	default:
		for _, r := range results {
			if _, err := fmt.Fprintf(a.out, "%s: %d palindromes\n", r.Source, r.Count); err != nil {
				return err
			}
			if r.Count == 0 {
				continue
			}
			if _, err := fmt.Fprintf(a.out, "  %s\n", strings.Join(r.Palindromes, " ")); err != nil {
				return err
			}
		}
		return nil
	}
}
