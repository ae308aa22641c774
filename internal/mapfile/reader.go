package mapfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vk/gridkit/internal/grid"
)

// Map is a validated symbol grid together with the markers its header
// declared. Every cell is either Markers.Empty or Markers.Obstacle.
type Map struct {
	Markers Markers
	Cells   *grid.Grid[byte]
}

// lineReader yields lines with a single trailing '\n' removed.
type lineReader struct {
	br *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	if br, ok := r.(*bufio.Reader); ok {
		return &lineReader{br: br}
	}
	return &lineReader{br: bufio.NewReader(r)}
}

// next returns the next line. ok is false once the input is exhausted.
func (l *lineReader) next() (line string, ok bool, err error) {
	s, err := l.br.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("%w: %v", ErrResource, err)
		}
		if s == "" {
			return "", false, nil
		}
	}
	return strings.TrimSuffix(s, "\n"), true, nil
}

// Read parses exactly one map from r: a header line followed by the
// declared number of rows. Input after the last row is left unread.
func Read(r io.Reader) (*Map, error) {
	return readMap(newLineReader(r))
}

// Load reads one map from the file at path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResource, err)
	}
	defer f.Close()
	return Read(f)
}

func readMap(lr *lineReader) (*Map, error) {
	line, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errMissingHeader
	}
	h, err := ParseHeader(line)
	if err != nil {
		return nil, err
	}
	return readBody(lr, h)
}

// errTruncated marks a body that stopped early, at end of input or at a
// blank line. The blank line is consumed, so nothing of the following
// section has been read.
var errTruncated = errors.New("section ended early")

// readBody reads h.Rows lines and validates their shape and symbols.
// h.Rows comes from the input and is never used to size an allocation.
func readBody(lr *lineReader, h Header) (*Map, error) {
	var rows [][]byte
	cols := 0
	for i := 0; i < h.Rows; i++ {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok || line == "" {
			return nil, fmt.Errorf("%w: %w after %d of %d rows", ErrShape, errTruncated, i, h.Rows)
		}
		if i == 0 {
			cols = len(line)
		} else if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrShape, i, len(line), cols)
		}
		rows = append(rows, []byte(line))
	}

	cells, err := grid.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShape, err)
	}
	if err := checkAlphabet(cells, h.Markers); err != nil {
		return nil, err
	}
	return &Map{Markers: h.Markers, Cells: cells}, nil
}

func checkAlphabet(cells *grid.Grid[byte], m Markers) error {
	for r := 0; r < cells.Rows(); r++ {
		for c, b := range cells.Row(r) {
			if b != m.Empty && b != m.Obstacle {
				return fmt.Errorf("%w: %q at row %d col %d", ErrAlphabet, b, r, c)
			}
		}
	}
	return nil
}
