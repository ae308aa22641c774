package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestApp returns an App writing to in-memory buffers. The default log
// level keeps the error buffer limited to diagnostics.
func newTestApp(t *testing.T) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewApp(out, errOut, cfg), out, errOut
}
