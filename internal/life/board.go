package life

import "github.com/vk/gridkit/internal/grid"

// Glyphs used when rendering a board.
const (
	AliveGlyph byte = '0'
	DeadGlyph  byte = ' '
)

// Board is a width x height field of cells. The current generation lives
// in cells; next is the scratch buffer the following generation is
// written into before the two are swapped.
type Board struct {
	cells *grid.Grid[bool]
	next  *grid.Grid[bool]
}

// NewBoard creates an all-dead board. Width and height must be positive.
func NewBoard(width, height int) *Board {
	return &Board{
		cells: grid.New[bool](height, width),
		next:  grid.New[bool](height, width),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.cells.Cols() }

// Height returns the number of rows.
func (b *Board) Height() int { return b.cells.Rows() }

// Alive reports whether the cell at column x, row y is alive. Coordinates
// outside the board are dead.
func (b *Board) Alive(x, y int) bool {
	return b.cells.InBounds(y, x) && b.cells.At(y, x)
}

// Set changes the state of the cell at column x, row y.
func (b *Board) Set(x, y int, alive bool) {
	b.cells.Set(y, x, alive)
}

// Cells exposes the current generation. Callers must not modify it.
func (b *Board) Cells() *grid.Grid[bool] { return b.cells }

// Population returns the number of alive cells.
func (b *Board) Population() int {
	n := 0
	for y := 0; y < b.Height(); y++ {
		for _, alive := range b.cells.Row(y) {
			if alive {
				n++
			}
		}
	}
	return n
}

// Neighbors counts the alive cells among the eight surrounding (x, y).
func (b *Board) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && b.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// nextState is Conway's rule: survive on 2 or 3 neighbors, birth on 3.
func nextState(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Step advances the board by one generation.
func (b *Board) Step() {
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			b.next.Set(y, x, nextState(b.cells.At(y, x), b.Neighbors(x, y)))
		}
	}
	b.cells, b.next = b.next, b.cells
}

// Run advances the board by n generations.
func (b *Board) Run(n int) {
	for i := 0; i < n; i++ {
		b.Step()
	}
}
