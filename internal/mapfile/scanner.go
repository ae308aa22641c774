package mapfile

import (
	"errors"
	"io"
)

// Scanner iterates over the map sections of a single stream. Sections
// follow each other directly or are separated by blank lines. A section
// that fails validation is reported through Err and, unless it already
// stopped at a section boundary, the scanner skips ahead to the next blank
// line, so later sections are still processed.
//
//	sc := mapfile.NewScanner(os.Stdin)
//	for sc.Scan() {
//	    if err := sc.Err(); err != nil {
//	        // report and continue
//	        continue
//	    }
//	    use(sc.Map())
//	}
type Scanner struct {
	lr      *lineReader
	m       *Map
	err     error
	started bool
	done    bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{lr: newLineReader(r)}
}

// Scan advances to the next section. It returns false when the input is
// exhausted. After Scan returns true exactly one of Map and Err is set.
func (s *Scanner) Scan() bool {
	s.m, s.err = nil, nil
	if s.done {
		return false
	}

	header, ok, err := s.nextNonBlank()
	if err != nil {
		s.fail(err, false)
		return true
	}
	if !ok {
		s.done = true
		if !s.started {
			// An empty stream still counts as one (missing) map.
			s.started = true
			s.err = errMissingHeader
			return true
		}
		return false
	}
	s.started = true

	h, err := ParseHeader(header)
	if err != nil {
		s.fail(err, true)
		return true
	}
	m, err := readBody(s.lr, h)
	if err != nil {
		// An alphabet failure has read the whole section and a truncated
		// one stopped at its boundary; only a ragged row leaves lines behind.
		s.fail(err, !errors.Is(err, ErrAlphabet) && !errors.Is(err, errTruncated))
		return true
	}
	s.m = m
	return true
}

// Map returns the section produced by the last successful Scan.
func (s *Scanner) Map() *Map { return s.m }

// Err returns the validation error of the last Scan, if any.
func (s *Scanner) Err() error { return s.err }

func (s *Scanner) nextNonBlank() (string, bool, error) {
	for {
		line, ok, err := s.lr.next()
		if err != nil || !ok {
			return "", ok, err
		}
		if line != "" {
			return line, true, nil
		}
	}
}

// fail records err and, when resync is set, discards input up to the next
// blank line. Read errors end the scan.
func (s *Scanner) fail(err error, resync bool) {
	s.err = err
	if errors.Is(err, ErrResource) {
		s.done = true
		return
	}
	if !resync {
		return
	}
	for {
		line, ok, rerr := s.lr.next()
		if rerr != nil || !ok {
			s.done = true
			return
		}
		if line == "" {
			return
		}
	}
}
