package square

import (
	"github.com/vk/gridkit/internal/grid"
	"github.com/vk/gridkit/internal/mapfile"
)

// Result locates a square by its bottom-right corner and side length.
// A zero Size means the map holds no empty cell.
type Result struct {
	Row  int
	Col  int
	Size int
}

// Top returns the first row covered by the square.
func (r Result) Top() int { return r.Row - r.Size + 1 }

// Left returns the first column covered by the square.
func (r Result) Left() int { return r.Col - r.Size + 1 }

// Contains reports whether (row, col) lies inside the square.
func (r Result) Contains(row, col int) bool {
	return r.Size > 0 &&
		row >= r.Top() && row <= r.Row &&
		col >= r.Left() && col <= r.Col
}

// Table computes the DP table for cells and reports the first maximum it
// encountered in row-major order.
func Table(cells *grid.Grid[byte], obstacle byte) (*grid.Grid[int], Result) {
	rows, cols := cells.Rows(), cells.Cols()
	dp := grid.New[int](rows, cols)
	var best Result

	for i := 0; i < rows; i++ {
		row := cells.Row(i)
		for j := 0; j < cols; j++ {
			if row[j] == obstacle {
				continue
			}
			v := 1
			if i > 0 && j > 0 {
				v = 1 + min(dp.At(i-1, j), dp.At(i, j-1), dp.At(i-1, j-1))
			}
			dp.Set(i, j, v)
			if v > best.Size {
				best = Result{Row: i, Col: j, Size: v}
			}
		}
	}
	return dp, best
}

// Solve returns the largest empty square of m.
func Solve(m *mapfile.Map) Result {
	_, best := Table(m.Cells, m.Markers.Obstacle)
	return best
}

// Paint overwrites every cell of r in cells with full.
func Paint(cells *grid.Grid[byte], r Result, full byte) {
	for i := r.Top(); i <= r.Row && r.Size > 0; i++ {
		for j := r.Left(); j <= r.Col; j++ {
			cells.Set(i, j, full)
		}
	}
}

// Fill solves m and returns a painted copy of its cells together with the
// square that was painted. The map itself is left untouched.
func Fill(m *mapfile.Map) (*grid.Grid[byte], Result) {
	best := Solve(m)
	out := m.Cells.Clone()
	Paint(out, best, m.Markers.Full)
	return out, best
}
