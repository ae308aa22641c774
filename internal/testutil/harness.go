// Package testutil holds helpers shared by the package tests: temporary
// file trees and a logging context.
package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/gridkit/internal/ctxlog"
)

// WriteTree creates every file of files below a fresh temporary directory
// and returns that directory. Keys are slash-separated relative paths such
// as "maps/one.txt"; missing parent directories are created.
func WriteTree(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

// WriteFile writes a single file into a fresh temporary directory and
// returns its path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	return filepath.Join(WriteTree(t, map[string]string{name: content}), filepath.FromSlash(name))
}

// Context returns a context carrying a debug logger. Output is discarded
// unless GRIDKIT_TEST_LOGS=true, in which case it is dumped through t.Log
// when the test finishes.
func Context(t *testing.T) context.Context {
	t.Helper()

	if os.Getenv("GRIDKIT_TEST_LOGS") != "true" {
		return ctxlog.WithLogger(context.Background(), slog.New(slog.DiscardHandler))
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), buf.String())
	})
	return ctxlog.WithLogger(context.Background(), logger)
}
