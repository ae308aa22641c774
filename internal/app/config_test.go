package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewConfig(Config{})
		require.NoError(t, err)
		require.Equal(t, &Config{LogFormat: "text", LogLevel: "error"}, cfg)
	})

	t.Run("explicit", func(t *testing.T) {
		cfg, err := NewConfig(Config{LogFormat: "json", LogLevel: "debug"})
		require.NoError(t, err)
		require.Equal(t, "json", cfg.LogFormat)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := NewConfig(Config{LogFormat: "xml"})
		require.ErrorContains(t, err, "invalid log-format")
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := NewConfig(Config{LogLevel: "trace"})
		require.ErrorContains(t, err, "invalid log-level")
	})
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json at debug", func(t *testing.T) {
		var buf bytes.Buffer
		newLogger("debug", "json", &buf).Debug("hello", "k", 1)
		require.Contains(t, buf.String(), `"msg":"hello"`)
		require.Contains(t, buf.String(), `"k":1`)
	})

	t.Run("text filters below level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := newLogger("warn", "text", &buf)
		logger.Info("hidden")
		logger.Warn("shown")
		require.NotContains(t, buf.String(), "hidden")
		require.Contains(t, buf.String(), "msg=shown")
	})
}
