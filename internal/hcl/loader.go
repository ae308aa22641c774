package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/gridkit/internal/config"
	"github.com/vk/gridkit/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL scenario loader.
func NewLoader() *Loader {
	return &Loader{}
}

// rootSchema lists the blocks a scenario file may contain.
var rootSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: string(config.KindSquare), LabelNames: []string{"name"}},
		{Type: string(config.KindLife), LabelNames: []string{"name"}},
	},
}

// squareBlock is the body of a `square "<name>" { ... }` block.
type squareBlock struct {
	Path string `hcl:"path,optional"`
	Map  string `hcl:"map,optional"`
}

// lifeBlock is the body of a `life "<name>" { ... }` block.
type lifeBlock struct {
	Width      int    `hcl:"width"`
	Height     int    `hcl:"height"`
	Iterations int    `hcl:"iterations"`
	Commands   string `hcl:"commands,optional"`
}

// Load parses every file and returns their jobs in source order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := &config.Model{}
	parser := hclparse.NewParser()
	evalCtx := newEvalContext()

	for _, path := range paths {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
		}

		jobs, diags := l.decodeFile(file.Body, filepath.Dir(path), evalCtx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
		}
		logger.Debug("Decoded HCL scenario file.", "path", path, "jobs", len(jobs))
		model.Append(jobs...)
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("HCL loading complete.", "jobs", len(model.Jobs))
	return model, nil
}

func (l *Loader) decodeFile(body hcl.Body, baseDir string, evalCtx *hcl.EvalContext) ([]*config.Job, hcl.Diagnostics) {
	content, diags := body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, diags
	}

	jobs := make([]*config.Job, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		job := &config.Job{
			Kind:   config.Kind(block.Type),
			Name:   block.Labels[0],
			Source: fmt.Sprintf("%s:%d", block.DefRange.Filename, block.DefRange.Start.Line),
		}

		switch job.Kind {
		case config.KindSquare:
			var sb squareBlock
			if d := gohcl.DecodeBody(block.Body, evalCtx, &sb); d.HasErrors() {
				diags = append(diags, d...)
				continue
			}
			if sb.Path != "" && !filepath.IsAbs(sb.Path) {
				sb.Path = filepath.Join(baseDir, sb.Path)
			}
			job.Square = &config.SquareJob{Path: sb.Path, Map: sb.Map}
		case config.KindLife:
			var lb lifeBlock
			if d := gohcl.DecodeBody(block.Body, evalCtx, &lb); d.HasErrors() {
				diags = append(diags, d...)
				continue
			}
			job.Life = &config.LifeJob{
				Width:      lb.Width,
				Height:     lb.Height,
				Iterations: lb.Iterations,
				Commands:   lb.Commands,
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, diags
}
