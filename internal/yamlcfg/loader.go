package yamlcfg

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vk/gridkit/internal/config"
	"github.com/vk/gridkit/internal/ctxlog"
	"gopkg.in/yaml.v3"
)

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML scenario loader.
func NewLoader() *Loader {
	return &Loader{}
}

type fileRoot struct {
	Jobs []jobEntry `yaml:"jobs"`
}

// jobEntry is one item of the jobs sequence. Fields of both kinds share a
// flat mapping; validation rejects fields that do not belong to the kind.
type jobEntry struct {
	Kind       string `yaml:"kind"`
	Name       string `yaml:"name"`
	Path       string `yaml:"path"`
	Map        string `yaml:"map"`
	Width      *int   `yaml:"width"`
	Height     *int   `yaml:"height"`
	Iterations *int   `yaml:"iterations"`
	Commands   string `yaml:"commands"`

	line int
}

var jobFields = map[string]bool{
	"kind": true, "name": true, "path": true, "map": true,
	"width": true, "height": true, "iterations": true, "commands": true,
}

// UnmarshalYAML records the source line of the entry. Node.Decode does not
// inherit the decoder's KnownFields setting, so keys are checked here.
func (e *jobEntry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if !jobFields[key.Value] {
				return fmt.Errorf("line %d: field %s not found in job", key.Line, key.Value)
			}
		}
	}
	type plain jobEntry
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*e = jobEntry(p)
	e.line = node.Line
	return nil
}

// Load parses every file and returns their jobs in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	model := &config.Model{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read YAML file %s: %w", path, err)
		}

		var root fileRoot
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&root); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
		}

		jobs, err := translate(root.Jobs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
		}
		logger.Debug("Decoded YAML scenario file.", "path", path, "jobs", len(jobs))
		model.Append(jobs...)
	}

	if err := model.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("YAML loading complete.", "jobs", len(model.Jobs))
	return model, nil
}

func translate(entries []jobEntry, path string) ([]*config.Job, error) {
	baseDir := filepath.Dir(path)
	jobs := make([]*config.Job, 0, len(entries))
	for _, e := range entries {
		job := &config.Job{
			Kind:   config.Kind(e.Kind),
			Name:   e.Name,
			Source: fmt.Sprintf("%s:%d", path, e.line),
		}
		switch job.Kind {
		case config.KindSquare:
			if e.Width != nil || e.Height != nil || e.Iterations != nil || e.Commands != "" {
				return nil, fmt.Errorf("%s: square %q has life fields", job.Source, e.Name)
			}
			p := e.Path
			if p != "" && !filepath.IsAbs(p) {
				p = filepath.Join(baseDir, p)
			}
			job.Square = &config.SquareJob{Path: p, Map: e.Map}
		case config.KindLife:
			if e.Path != "" || e.Map != "" {
				return nil, fmt.Errorf("%s: life %q has square fields", job.Source, e.Name)
			}
			if e.Width == nil || e.Height == nil || e.Iterations == nil {
				return nil, fmt.Errorf("%s: life %q requires width, height and iterations", job.Source, e.Name)
			}
			job.Life = &config.LifeJob{
				Width:      *e.Width,
				Height:     *e.Height,
				Iterations: *e.Iterations,
				Commands:   e.Commands,
			}
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
