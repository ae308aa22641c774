package render

import "io"

// Separator emits one blank line between consecutive units of a batch and
// nothing before the first or after the last. Call Next before writing
// each unit, whether that unit succeeded or failed.
type Separator struct {
	w    io.Writer
	seen bool
}

// NewSeparator returns a Separator writing to w.
func NewSeparator(w io.Writer) *Separator {
	return &Separator{w: w}
}

// Next marks the start of a unit.
func (s *Separator) Next() error {
	if !s.seen {
		s.seen = true
		return nil
	}
	_, err := io.WriteString(s.w, "\n")
	return err
}
