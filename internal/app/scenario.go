package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/vk/gridkit/internal/config"
	"github.com/vk/gridkit/internal/ctxlog"
	"github.com/vk/gridkit/internal/fsutil"
	"github.com/vk/gridkit/internal/hcl"
	"github.com/vk/gridkit/internal/life"
	"github.com/vk/gridkit/internal/mapfile"
	"github.com/vk/gridkit/internal/render"
	"github.com/vk/gridkit/internal/yamlcfg"
)

var (
	hclExtensions  = []string{".hcl"}
	yamlExtensions = []string{".yaml", ".yml"}
)

// loaderFor picks the config.Loader matching the file extension of path.
func loaderFor(path string) (config.Loader, error) {
	switch {
	case fsutil.HasExtension(path, hclExtensions...):
		return hcl.NewLoader(), nil
	case fsutil.HasExtension(path, yamlExtensions...):
		return yamlcfg.NewLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported scenario file %s: expected .hcl, .yaml or .yml", path)
	}
}

// LoadScenario loads a scenario file, or every scenario file below a
// directory in lexical order, into one model.
func (a *App) LoadScenario(ctx context.Context, path string) (*config.Model, error) {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing scenario path %s: %w", path, err)
	}

	files := []string{path}
	if info.IsDir() {
		exts := append(append([]string{}, hclExtensions...), yamlExtensions...)
		if files, err = fsutil.FindFilesByExtension(path, exts...); err != nil {
			return nil, fmt.Errorf("failed to find scenario files in %s: %w", path, err)
		}
		if len(files) == 0 {
			logger.Warn("No scenario files found in directory.", "path", path)
		}
	}

	model := &config.Model{}
	for _, file := range files {
		loader, err := loaderFor(file)
		if err != nil {
			return nil, err
		}
		part, err := loader.Load(ctx, file)
		if err != nil {
			return nil, err
		}
		model.Append(part.Jobs...)
	}
	// Names must also be unique across files.
	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Scenario loaded.", "files", len(files), "jobs", len(model.Jobs))
	return model, nil
}

// RunScenario loads the scenario at path and runs every job in order.
// Each job is introduced by a "== <kind> <name>" line and jobs are
// separated by one blank line.
func (a *App) RunScenario(ctx context.Context, path string) error {
	model, err := a.LoadScenario(ctx, path)
	if err != nil {
		return err
	}
	return a.RunJobs(ctx, model)
}

// RunJobs runs the jobs of an already loaded model.
func (a *App) RunJobs(ctx context.Context, model *config.Model) error {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	sep := render.NewSeparator(a.outW)

	for _, job := range model.Jobs {
		if err := sep.Next(); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(a.outW, "== %s %s\n", job.Kind, job.Name); err != nil {
			return err
		}

		jobCtx := unitContext(ctx, job.Source)
		var err error
		switch job.Kind {
		case config.KindSquare:
			err = a.runSquareJob(jobCtx, job.Square)
		case config.KindLife:
			err = a.runLife(jobCtx, life.Params{
				Width:      job.Life.Width,
				Height:     job.Life.Height,
				Iterations: job.Life.Iterations,
			}, strings.NewReader(job.Life.Commands))
		}
		if err != nil {
			return fmt.Errorf("job %s %q (%s): %w", job.Kind, job.Name, job.Source, err)
		}
	}
	logger.Info("Scenario finished.", "jobs", len(model.Jobs))
	return nil
}

func (a *App) runSquareJob(ctx context.Context, job *config.SquareJob) error {
	var (
		m   *mapfile.Map
		err error
	)
	if job.Path != "" {
		m, err = mapfile.Load(job.Path)
	} else {
		m, err = mapfile.Read(strings.NewReader(job.Map))
	}
	return a.solveUnit(ctx, m, err)
}
