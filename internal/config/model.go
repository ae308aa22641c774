package config

import (
	"errors"
	"fmt"
)

// Kind names the kernel a job runs.
type Kind string

const (
	KindSquare Kind = "square"
	KindLife   Kind = "life"
)

// Model is the unified representation of one or more scenario files.
type Model struct {
	Jobs []*Job
}

// Job is one unit of work. Exactly one of Square and Life is set,
// matching Kind.
type Job struct {
	Kind Kind
	Name string
	// Source points at the definition, e.g. "batch.hcl:12", for messages.
	Source string

	Square *SquareJob
	Life   *LifeJob
}

// SquareJob describes a map for the square solver. Path is resolved
// relative to the scenario file by the loader; Map holds inline text.
type SquareJob struct {
	Path string
	Map  string
}

// LifeJob describes one automaton run. Values are kept as written: a run
// with non-positive dimensions or negative iterations is valid
// configuration that simply produces no output.
type LifeJob struct {
	Width      int
	Height     int
	Iterations int
	Commands   string
}

// ErrInvalidJob is wrapped by every error Validate returns.
var ErrInvalidJob = errors.New("invalid job")

// Append adds jobs to the model.
func (m *Model) Append(jobs ...*Job) {
	m.Jobs = append(m.Jobs, jobs...)
}

// Validate checks the structural rules shared by every format: known kind,
// non-empty unique name per kind and exactly one map source per square job.
func (m *Model) Validate() error {
	seen := make(map[string]string)
	var errs []error
	for _, j := range m.Jobs {
		if err := j.validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		key := string(j.Kind) + "." + j.Name
		if prev, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%w: %s %q at %s already defined at %s", ErrInvalidJob, j.Kind, j.Name, j.Source, prev))
			continue
		}
		seen[key] = j.Source
	}
	return errors.Join(errs...)
}

func (j *Job) validate() error {
	if j.Name == "" {
		return fmt.Errorf("%w: %s job at %s has no name", ErrInvalidJob, j.Kind, j.Source)
	}
	switch j.Kind {
	case KindSquare:
		if j.Square == nil || j.Life != nil {
			return fmt.Errorf("%w: square %q at %s has no square body", ErrInvalidJob, j.Name, j.Source)
		}
		hasPath, hasMap := j.Square.Path != "", j.Square.Map != ""
		if hasPath == hasMap {
			return fmt.Errorf("%w: square %q at %s must set exactly one of path or map", ErrInvalidJob, j.Name, j.Source)
		}
	case KindLife:
		if j.Life == nil || j.Square != nil {
			return fmt.Errorf("%w: life %q at %s has no life body", ErrInvalidJob, j.Name, j.Source)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q at %s", ErrInvalidJob, j.Kind, j.Source)
	}
	return nil
}
