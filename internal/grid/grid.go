package grid

import (
	"fmt"
	"math"
)

// Grid is a fixed-size rectangular array of cells stored row-major.
type Grid[T any] struct {
	rows  int
	cols  int
	cells []T
}

// New creates a rows x cols grid with every cell set to the zero value.
// It panics on negative dimensions or when rows*cols does not fit in an
// int; callers sizing grids from input must bound them first.
func New[T any](rows, cols int) *Grid[T] {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("grid: negative dimensions %dx%d", rows, cols))
	}
	if !Fits(rows, cols, math.MaxInt) {
		panic(fmt.Sprintf("grid: dimensions %dx%d overflow", rows, cols))
	}
	return &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}
}

// Fits reports whether a rows x cols grid has at most limit cells, without
// overflowing on the multiplication. Negative dimensions never fit.
func Fits(rows, cols, limit int) bool {
	if rows < 0 || cols < 0 {
		return false
	}
	return cols == 0 || rows <= limit/cols
}

// FromRows copies the given rows into a new grid. Every row must have the
// same length as the first one.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return New[T](0, 0), nil
	}
	cols := len(rows[0])
	g := New[T](len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("grid: row %d has length %d, want %d", i, len(row), cols)
		}
		copy(g.cells[i*cols:(i+1)*cols], row)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

func (g *Grid[T]) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: (%d,%d) out of bounds %dx%d", row, col, g.rows, g.cols))
	}
	return row*g.cols + col
}

// At returns the cell at (row, col).
func (g *Grid[T]) At(row, col int) T {
	return g.cells[g.index(row, col)]
}

// Set stores v at (row, col).
func (g *Grid[T]) Set(row, col int, v T) {
	g.cells[g.index(row, col)] = v
}

// Row returns the cells of row i. The slice aliases the grid storage and
// must be treated as read-only by callers.
func (g *Grid[T]) Row(i int) []T {
	if i < 0 || i >= g.rows {
		panic(fmt.Sprintf("grid: row %d out of bounds %d", i, g.rows))
	}
	return g.cells[i*g.cols : (i+1)*g.cols : (i+1)*g.cols]
}

// Fill sets every cell to v.
func (g *Grid[T]) Fill(v T) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := New[T](g.rows, g.cols)
	copy(c.cells, g.cells)
	return c
}

// SameShape reports whether g and o have identical dimensions.
func (g *Grid[T]) SameShape(o *Grid[T]) bool {
	return g.rows == o.rows && g.cols == o.cols
}

// CopyFrom overwrites the cells of g with those of src. Both grids must
// have the same shape.
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	if !g.SameShape(src) {
		panic(fmt.Sprintf("grid: shape mismatch %dx%d vs %dx%d", g.rows, g.cols, src.rows, src.cols))
	}
	copy(g.cells, src.cells)
}
