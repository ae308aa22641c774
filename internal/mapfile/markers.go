package mapfile

import "fmt"

// Markers are the three symbols declared by a map header.
type Markers struct {
	Empty    byte
	Obstacle byte
	Full     byte
}

// Validate checks that the markers are pairwise distinct.
func (m Markers) Validate() error {
	if m.Empty == m.Obstacle || m.Empty == m.Full || m.Obstacle == m.Full {
		return fmt.Errorf("%w: markers %q %q %q are not distinct", ErrHeader, m.Empty, m.Obstacle, m.Full)
	}
	return nil
}
