package life

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPen_ReplayDDXDDS(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	b := NewBoard(5, 5)
	pen := NewPen(b)
	type step struct {
		x, y int
		down bool
	}
	want := []step{
		{1, 0, false},
		{2, 0, false},
		{2, 0, true},
		{3, 0, true},
		{4, 0, true},
		{4, 1, true},
	}

	// --- Act & Assert ---
	for i, cmd := range []byte("ddxdds") {
		pen.Apply(cmd)
		require.Equal(t, want[i], step{pen.X, pen.Y, pen.Down}, "after command %d (%q)", i, cmd)
	}
	require.Equal(t, [][2]int{{2, 0}, {3, 0}, {4, 0}, {4, 1}}, aliveCells(b))
}

func TestPen_ClampsAtEdges(t *testing.T) {
	t.Parallel()

	b := NewBoard(3, 2)
	pen := NewPen(b)

	for _, cmd := range []byte("wwaaddddddssss") {
		pen.Apply(cmd)
	}

	require.Equal(t, 2, pen.X)
	require.Equal(t, 1, pen.Y)
	require.Empty(t, aliveCells(b))
}

func TestPen_IgnoredCommandsStillMark(t *testing.T) {
	t.Parallel()

	b := NewBoard(2, 2)
	pen := NewPen(b)

	pen.Apply('x')
	pen.Apply('x')
	require.Equal(t, [][2]int{{0, 0}}, aliveCells(b), "toggle on marks the cell")

	pen.Apply('d')
	pen.Apply('x')
	pen.Apply('\n')
	pen.Apply('s')
	require.Equal(t, [][2]int{{0, 0}, {1, 0}, {1, 1}}, aliveCells(b))
}

func TestDraw_ConsumesUntilEOF(t *testing.T) {
	t.Parallel()

	b := NewBoard(4, 1)

	n, err := b.Draw(strings.NewReader("xddd\n"))

	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, 4, b.Population())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestDraw_PropagatesReadErrors(t *testing.T) {
	t.Parallel()

	_, err := NewBoard(1, 1).Draw(failingReader{})

	require.EqualError(t, err, "boom")
}
