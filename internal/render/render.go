// Package render prints grids as text, one line per row.
package render

import (
	"bufio"
	"io"

	"github.com/vk/gridkit/internal/grid"
)

// Symbols writes a byte grid row by row, each row followed by '\n'.
func Symbols(w io.Writer, g *grid.Grid[byte]) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < g.Rows(); i++ {
		bw.Write(g.Row(i))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Flags writes a boolean grid using one glyph for true cells and another
// for false cells.
func Flags(w io.Writer, g *grid.Grid[bool], on, off byte) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < g.Rows(); i++ {
		for _, v := range g.Row(i) {
			if v {
				bw.WriteByte(on)
			} else {
				bw.WriteByte(off)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
