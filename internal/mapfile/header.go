package mapfile

import (
	"fmt"
	"strconv"
	"strings"
)

// Header is the parsed first line of a map.
type Header struct {
	Rows    int
	Markers Markers
}

// ParseHeader parses "<rows> <empty> <obstacle> <full>". Tokens are
// separated by whitespace and each marker must be exactly one byte.
func ParseHeader(line string) (Header, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Header{}, fmt.Errorf("%w: missing row count", ErrHeader)
	}

	rows, err := strconv.Atoi(fields[0])
	if err != nil {
		return Header{}, fmt.Errorf("%w: row count %q: %v", ErrHeader, fields[0], err)
	}
	if rows <= 0 {
		return Header{}, fmt.Errorf("%w: row count %d is not positive", ErrHeader, rows)
	}

	if len(fields) < 4 {
		return Header{}, fmt.Errorf("%w: expected 3 markers, got %d", ErrHeader, len(fields)-1)
	}
	if len(fields) > 4 {
		return Header{}, fmt.Errorf("%w: unexpected trailing token %q", ErrHeader, fields[4])
	}

	var symbols [3]byte
	for i, tok := range fields[1:] {
		if len(tok) != 1 {
			return Header{}, fmt.Errorf("%w: marker %q must be a single character", ErrHeader, tok)
		}
		symbols[i] = tok[0]
	}

	m := Markers{Empty: symbols[0], Obstacle: symbols[1], Full: symbols[2]}
	if err := m.Validate(); err != nil {
		return Header{}, err
	}
	return Header{Rows: rows, Markers: m}, nil
}
