// Package palindromes finds every distinct palindrome in a sequence read as
// a circle, and in every line of a 2D grid, in time linear in the input.
//
// 🚀 What is in the box?
//
//	palindrome/   the engine: a two-parity radius table over the doubled
//	              sequence, plus the Set of results
//	palgrid/      Grid, its row/column/diagonal decomposition and a finder
//	              that unions the engine's output over every line
//	builder/      deterministic random sequences and grids for tests and
//	              benchmarks
//	cmd/palfind   command line front end and benchmark harness
//
// "Wrap-around" means the last symbol is followed by the first, so
// "racecar" also contains "carrac" and "arra". Only palindromes of length
// 2 up to the sequence length are reported.
//
// Quick example:
//
//	set, _ := palindrome.FindAllString("racecar")
//	fmt.Println(set.Sorted())
//	// [racecar carrac aceca arra cec rr]
//
//	go install github.com/katalvlaran/palindromes/cmd/palfind@latest
package palindromes
