package config

import "context"

// Loader is the interface for a format-specific scenario loader.
type Loader interface {
	// Load reads every given file, translates it into the format-agnostic
	// model and returns the jobs in file order.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
