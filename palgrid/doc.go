// Package palgrid finds palindromes in a 2D grid of symbols by reading it as
// a family of 1D sequences and running the palindrome engine on each.
//
// What:
//
//   - Grid wraps a rectangular [][]rune; it is immutable once built.
//   - Decomposes the grid into rows (left→right), columns (top→bottom),
//     ↘ diagonals (column−row constant) and ↗ diagonals (row+column
//     constant), every sequence read by increasing row index.
//   - FindAll runs palindrome.FindAll on every sequence and unions the sets.
//
// Wrap-around applies only inside each sequence: the last symbol of a row
// is adjacent to its first, but the grid itself is not a torus.
//
// Why:
//
//   - Word-search style puzzles: symmetric words in every direction.
//   - Pattern mining in character matrices (DNA tiles, game boards).
//
// Complexity:
//
//   - NewGrid:        O(R×C) time and memory (deep copy).
//   - Decomposition:  O(R×C) per direction family.
//   - FindAll:        O(R×C) amortized through the engine, plus the
//     engine's expansion caveat for highly repetitive input.
//
// Options:
//
//   - WithDirections: restrict the families scanned (default: all four).
//   - WithWorkers:    fan sequences out to n goroutines (default: 1).
//   - WithEngineOptions: forward palindrome.Option values (e.g. sentinels).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfRange: At was asked for a cell outside the grid.
//   - ErrUnknownDirection: a Direction value outside the four families.
//   - ErrNilGrid: a finder was called with a nil *Grid.
package palgrid
