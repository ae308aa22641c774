package life

import (
	"bufio"
	"errors"
	"io"
)

// Pen commands.
const (
	CmdUp     byte = 'w'
	CmdLeft   byte = 'a'
	CmdDown   byte = 's'
	CmdRight  byte = 'd'
	CmdToggle byte = 'x'
)

// Pen is the drawing cursor. It starts at (0,0) lifted and never leaves
// the board: moves past an edge are ignored.
type Pen struct {
	X    int
	Y    int
	Down bool

	board *Board
}

// NewPen returns a lifted pen at the top-left corner of b.
func NewPen(b *Board) *Pen {
	return &Pen{board: b}
}

// Apply executes one command. Unknown bytes are ignored. After every
// command, including ignored ones, the cell under a lowered pen is set
// alive.
func (p *Pen) Apply(cmd byte) {
	switch cmd {
	case CmdUp:
		if p.Y > 0 {
			p.Y--
		}
	case CmdLeft:
		if p.X > 0 {
			p.X--
		}
	case CmdDown:
		if p.Y < p.board.Height()-1 {
			p.Y++
		}
	case CmdRight:
		if p.X < p.board.Width()-1 {
			p.X++
		}
	case CmdToggle:
		p.Down = !p.Down
	}
	if p.Down {
		p.board.Set(p.X, p.Y, true)
	}
}

// Draw feeds every byte of r to a fresh pen until r is exhausted. It
// returns the number of commands consumed and any read error other than
// io.EOF.
func (b *Board) Draw(r io.Reader) (int, error) {
	pen := NewPen(b)
	br := bufio.NewReader(r)
	n := 0
	for {
		c, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		pen.Apply(c)
		n++
	}
}
