package app

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/gridkit/internal/ctxlog"
	"github.com/vk/gridkit/internal/life"
	"github.com/vk/gridkit/internal/render"
)

// RunLife draws the commands read from in onto a fresh board, runs it for
// p.Iterations generations and prints the result. Parameters that do not
// describe a runnable board produce no output and no error.
func (a *App) RunLife(ctx context.Context, p life.Params, in io.Reader) error {
	return a.runLife(unitContext(a.withLogger(ctx), "life"), p, in)
}

func (a *App) runLife(ctx context.Context, p life.Params, in io.Reader) error {
	logger := ctxlog.FromContext(ctx)
	if !p.Valid() {
		logger.Debug("Life parameters out of range, nothing to do.", "width", p.Width, "height", p.Height, "iterations", p.Iterations)
		return nil
	}

	b, err := life.Simulate(p, in)
	if err != nil {
		return fmt.Errorf("failed to read pen commands: %w", err)
	}
	logger.Debug("Life run finished.",
		"width", p.Width,
		"height", p.Height,
		"iterations", p.Iterations,
		"population", b.Population(),
	)
	return render.Flags(a.outW, b.Cells(), life.AliveGlyph, life.DeadGlyph)
}
