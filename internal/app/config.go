package app

import "fmt"

// Config holds the settings shared by every gridkit binary.
type Config struct {
	LogFormat string
	LogLevel  string
}

// Defaults keep stderr free of log noise so that it only carries
// diagnostics such as "map error".
const (
	DefaultLogFormat = "text"
	DefaultLogLevel  = "error"
)

// NewConfig validates cfg, filling empty fields with defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
