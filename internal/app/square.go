package app

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/gridkit/internal/ctxlog"
	"github.com/vk/gridkit/internal/mapfile"
	"github.com/vk/gridkit/internal/render"
	"github.com/vk/gridkit/internal/square"
)

// RunSquares solves every map found in paths, one map per file. With no
// paths it reads consecutive map sections from in instead. A rejected map
// prints the diagnostic line to the error stream and the batch moves on;
// only failures to write output are returned.
func (a *App) RunSquares(ctx context.Context, in io.Reader, paths []string) error {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	sep := render.NewSeparator(a.outW)

	if len(paths) == 0 {
		logger.Debug("Reading maps from stream.")
		sc := mapfile.NewScanner(in)
		section := 0
		for sc.Scan() {
			section++
			if err := sep.Next(); err != nil {
				return err
			}
			unitCtx := unitContext(ctx, fmt.Sprintf("stdin#%d", section))
			if err := a.solveUnit(unitCtx, sc.Map(), sc.Err()); err != nil {
				return err
			}
		}
		logger.Debug("Stream exhausted.", "sections", section)
		return nil
	}

	for _, path := range paths {
		if err := sep.Next(); err != nil {
			return err
		}
		m, loadErr := mapfile.Load(path)
		if err := a.solveUnit(unitContext(ctx, path), m, loadErr); err != nil {
			return err
		}
	}
	logger.Debug("All map files processed.", "files", len(paths))
	return nil
}

// solveUnit renders one map, or reports the diagnostic when loadErr is set.
func (a *App) solveUnit(ctx context.Context, m *mapfile.Map, loadErr error) error {
	logger := ctxlog.FromContext(ctx)
	if loadErr != nil {
		logger.Debug("Map rejected.", "error", loadErr)
		_, err := fmt.Fprintln(a.errW, mapfile.Diagnostic)
		return err
	}

	out, best := square.Fill(m)
	logger.Debug("Largest square found.",
		"rows", m.Cells.Rows(),
		"cols", m.Cells.Cols(),
		"row", best.Row,
		"col", best.Col,
		"size", best.Size,
	)
	return render.Symbols(a.outW, out)
}
