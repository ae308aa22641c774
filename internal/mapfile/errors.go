package mapfile

import (
	"errors"
	"fmt"
)

var (
	// ErrHeader covers a missing or unparsable row count, missing marker
	// tokens and markers that are not pairwise distinct.
	ErrHeader = errors.New("malformed map header")
	// ErrShape covers ragged rows, an empty first row and truncated input.
	ErrShape = errors.New("malformed map shape")
	// ErrAlphabet is returned when a cell is neither the empty nor the
	// obstacle marker.
	ErrAlphabet = errors.New("unexpected map symbol")
	// ErrResource is returned when a map file cannot be opened or read.
	ErrResource = errors.New("map unreadable")
)

// Diagnostic is the single line shown to users for any rejected map.
const Diagnostic = "map error"

var errMissingHeader = fmt.Errorf("%w: missing header line", ErrHeader)
