package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/gridkit/internal/life"
)

func TestParseSquare(t *testing.T) {
	t.Parallel()

	t.Run("files", func(t *testing.T) {
		var out bytes.Buffer
		got, exit, err := ParseSquare([]string{"--log-level", "DEBUG", "a.txt", "b.txt"}, &out)

		require.NoError(t, err)
		require.False(t, exit)
		require.Equal(t, []string{"a.txt", "b.txt"}, got.Paths)
		require.Equal(t, "debug", got.Config.LogLevel)
		require.Equal(t, "text", got.Config.LogFormat)
	})

	t.Run("stdin", func(t *testing.T) {
		got, exit, err := ParseSquare(nil, &bytes.Buffer{})

		require.NoError(t, err)
		require.False(t, exit)
		require.Empty(t, got.Paths)
	})

	t.Run("help", func(t *testing.T) {
		var out bytes.Buffer
		got, exit, err := ParseSquare([]string{"-h"}, &out)

		require.NoError(t, err)
		require.True(t, exit)
		require.Nil(t, got)
		require.Contains(t, out.String(), "Usage:")
		require.Contains(t, out.String(), "-log-level")
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, _, err := ParseSquare([]string{"--nope"}, &bytes.Buffer{})

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		require.Equal(t, 2, exitErr.Code)
		require.Contains(t, exitErr.Message, "flag provided but not defined: -nope")
	})

	t.Run("bad log format", func(t *testing.T) {
		_, _, err := ParseSquare([]string{"--log-format", "xml"}, &bytes.Buffer{})

		var exitErr *ExitError
		require.ErrorAs(t, err, &exitErr)
		require.Equal(t, 2, exitErr.Code)
	})
}

func TestParseLife(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantRun bool
		want    life.Params
	}{
		{name: "plain", args: []string{"5", "4", "3"}, wantRun: true, want: life.Params{Width: 5, Height: 4, Iterations: 3}},
		{name: "negative iterations", args: []string{"5", "5", "-1"}, wantRun: true, want: life.Params{Width: 5, Height: 5, Iterations: -1}},
		{name: "negative width", args: []string{"-5", "5", "1"}, wantRun: true, want: life.Params{Width: -5, Height: 5, Iterations: 1}},
		{name: "options first", args: []string{"--log-format", "json", "2", "2", "0"}, wantRun: true, want: life.Params{Width: 2, Height: 2}},
		{name: "extra arguments ignored", args: []string{"1", "2", "3", "4"}, wantRun: true, want: life.Params{Width: 1, Height: 2, Iterations: 3}},
		{name: "no arguments", args: nil},
		{name: "missing iterations", args: []string{"5", "5"}},
		{name: "not a number", args: []string{"5", "five", "1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, exit, err := ParseLife(tc.args, &bytes.Buffer{})

			require.NoError(t, err)
			require.False(t, exit)
			require.Equal(t, tc.wantRun, got.Run)
			if tc.wantRun {
				require.Equal(t, tc.want, got.Params)
			}
		})
	}
}

func TestParseLife_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := ParseLife([]string{"--speed", "3", "1", "1", "1"}, &bytes.Buffer{})

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
}

func TestParseBatch(t *testing.T) {
	t.Parallel()

	t.Run("positional", func(t *testing.T) {
		got, exit, err := ParseBatch([]string{"jobs.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, exit)
		require.Equal(t, "jobs.hcl", got.ScenarioPath)
	})

	t.Run("flag wins over positional", func(t *testing.T) {
		got, _, err := ParseBatch([]string{"--scenario", "a.yaml", "b.hcl"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.Equal(t, "a.yaml", got.ScenarioPath)
	})

	t.Run("shorthand", func(t *testing.T) {
		got, _, err := ParseBatch([]string{"-s", "dir"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.Equal(t, "dir", got.ScenarioPath)
	})

	t.Run("missing path prints usage", func(t *testing.T) {
		var out bytes.Buffer
		got, exit, err := ParseBatch(nil, &out)
		require.NoError(t, err)
		require.True(t, exit)
		require.Nil(t, got)
		require.Contains(t, out.String(), "Usage:")
	})

	t.Run("bad log level", func(t *testing.T) {
		_, _, err := ParseBatch([]string{"--log-level", "loud", "x.hcl"}, &bytes.Buffer{})
		require.ErrorContains(t, err, "invalid log-level")
	})
}
