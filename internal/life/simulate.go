package life

import (
	"io"

	"github.com/vk/gridkit/internal/grid"
)

// MaxCells bounds Width*Height. Larger boards are treated like any other
// out-of-range dimensions.
const MaxCells = 1 << 26

// Params are the externally supplied dimensions of a run.
type Params struct {
	Width      int
	Height     int
	Iterations int
}

// Valid reports whether a run with p does any work at all.
func (p Params) Valid() bool {
	return p.Width > 0 && p.Height > 0 && p.Iterations >= 0 &&
		grid.Fits(p.Height, p.Width, MaxCells)
}

// Simulate draws commands onto a new board and runs it for p.Iterations
// generations. It returns a nil board when p is not Valid; no input is
// consumed in that case.
func Simulate(p Params, commands io.Reader) (*Board, error) {
	if !p.Valid() {
		return nil, nil
	}
	b := NewBoard(p.Width, p.Height)
	if _, err := b.Draw(commands); err != nil {
		return nil, err
	}
	b.Run(p.Iterations)
	return b, nil
}
