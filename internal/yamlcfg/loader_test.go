package yamlcfg

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/gridkit/internal/config"
	"github.com/vk/gridkit/internal/testutil"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	path := testutil.WriteFile(t, "batch.yaml", `jobs:
  - kind: square
    name: demo
    path: maps/demo.txt
  - kind: life
    name: blinker
    width: 5
    height: 5
    iterations: 1
    commands: sdxdd
  - kind: square
    name: inline
    map: |
      1 . o x
      ..
`)

	// --- Act ---
	model, err := NewLoader().Load(testutil.Context(t), path)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, model.Jobs, 3)

	require.Equal(t, config.KindSquare, model.Jobs[0].Kind)
	require.Equal(t, filepath.Join(filepath.Dir(path), "maps", "demo.txt"), model.Jobs[0].Square.Path)
	require.Equal(t, path+":2", model.Jobs[0].Source)

	require.Equal(t, &config.LifeJob{Width: 5, Height: 5, Iterations: 1, Commands: "sdxdd"}, model.Jobs[1].Life)
	require.Equal(t, path+":5", model.Jobs[1].Source)

	require.Equal(t, "1 . o x\n..\n", model.Jobs[2].Square.Map)
}

func TestLoad_EmptyFile(t *testing.T) {
	t.Parallel()

	path := testutil.WriteFile(t, "empty.yaml", "")

	model, err := NewLoader().Load(testutil.Context(t), path)

	require.NoError(t, err)
	require.Empty(t, model.Jobs)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "syntax", content: "jobs: [", wantErr: "failed to decode YAML file"},
		{name: "unknown top-level field", content: "steps: []\n", wantErr: "field steps not found"},
		{name: "unknown job field", content: "jobs:\n  - kind: life\n    name: a\n    depth: 3\n", wantErr: "field depth not found"},
		{name: "life missing dimensions", content: "jobs:\n  - kind: life\n    name: a\n    width: 3\n", wantErr: "requires width, height and iterations"},
		{name: "square with life fields", content: "jobs:\n  - kind: square\n    name: a\n    path: m\n    width: 3\n", wantErr: "has life fields"},
		{name: "life with square fields", content: "jobs:\n  - kind: life\n    name: a\n    width: 1\n    height: 1\n    iterations: 0\n    map: x\n", wantErr: "has square fields"},
		{name: "unknown kind", content: "jobs:\n  - kind: maze\n    name: a\n", wantErr: `unknown kind "maze"`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := testutil.WriteFile(t, "bad.yaml", tc.content)

			_, err := NewLoader().Load(testutil.Context(t), path)

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader().Load(testutil.Context(t), filepath.Join(t.TempDir(), "none.yaml"))

	require.ErrorContains(t, err, "failed to read YAML file")
}
