package palgrid

// DownDiagonals returns the R+C−1 ↘ diagonals (column−row = d constant).
// Order: d = 0, 1, …, C−1 (anchored on row 0), then d = −1, …, −(R−1)
// (anchored on column 0). Each diagonal is read by increasing row and has
// length between 1 and min(R, C).
// Complexity: O(R×C).
func (g *Grid) DownDiagonals() [][]rune {
	out := make([][]rune, 0, g.rows+g.cols-1)
	for d := 0; d < g.cols; d++ {
		out = append(out, downDiagonal(g.cells, g.rows, g.cols, d))
	}
	for d := -1; d > -g.rows; d-- {
		out = append(out, downDiagonal(g.cells, g.rows, g.cols, d))
	}

	return out
}

// UpDiagonals returns the R+C−1 ↗ diagonals (row+column = s constant),
// for s = 0 … R+C−2, each read by increasing row.
// Complexity: O(R×C).
func (g *Grid) UpDiagonals() [][]rune {
	out := make([][]rune, 0, g.rows+g.cols-1)
	for s := 0; s <= g.rows+g.cols-2; s++ {
		out = append(out, upDiagonal(g.cells, g.rows, g.cols, s))
	}

	return out
}

// downDiagonal reads cells[r][r+d] for every r with 0 ≤ r < rows and
// 0 ≤ r+d < cols.
func downDiagonal(cells [][]rune, rows, cols, d int) []rune {
	first := max(0, -d)
	end := min(rows, cols-d) // exclusive
	out := make([]rune, 0, max(end-first, 0))
	for r := first; r < end; r++ {
		out = append(out, cells[r][r+d])
	}

	return out
}

// upDiagonal reads cells[r][s-r] for every r with 0 ≤ r < rows and
// 0 ≤ s-r < cols.
func upDiagonal(cells [][]rune, rows, cols, s int) []rune {
	first := max(0, s-(cols-1))
	last := min(rows-1, s) // inclusive
	out := make([]rune, 0, max(last-first+1, 0))
	for r := first; r <= last; r++ {
		out = append(out, cells[r][s-r])
	}

	return out
}
