package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/gridkit/internal/life"
	"github.com/vk/gridkit/internal/testutil"
)

func TestRunLife(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		params   life.Params
		commands string
		want     string
	}{
		{
			name:     "blinker after one generation",
			params:   life.Params{Width: 5, Height: 5, Iterations: 1},
			commands: "ssdxdd",
			want:     "     \n  0  \n  0  \n  0  \n     \n",
		},
		{
			name:     "blinker after two generations",
			params:   life.Params{Width: 5, Height: 5, Iterations: 2},
			commands: "ssdxdd",
			want:     "     \n     \n 000 \n     \n     \n",
		},
		{
			name:     "drawing only",
			params:   life.Params{Width: 3, Height: 2, Iterations: 0},
			commands: "xdsa",
			want:     "00 \n00 \n",
		},
		{
			name:     "lonely cell dies",
			params:   life.Params{Width: 2, Height: 1, Iterations: 1},
			commands: "x",
			want:     "  \n",
		},
		{name: "zero width", params: life.Params{Width: 0, Height: 3, Iterations: 1}, commands: "x"},
		{name: "negative height", params: life.Params{Width: 3, Height: -3, Iterations: 1}, commands: "x"},
		{name: "negative iterations", params: life.Params{Width: 3, Height: 3, Iterations: -1}, commands: "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a, out, errOut := newTestApp(t)

			err := a.RunLife(testutil.Context(t), tc.params, strings.NewReader(tc.commands))

			require.NoError(t, err)
			require.Equal(t, tc.want, out.String())
			require.Empty(t, errOut.String())
		})
	}
}
