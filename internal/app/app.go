package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/vk/gridkit/internal/ctxlog"
)

// App encapsulates the output streams, logger and configuration of a run.
// Rendered grids go to outW; diagnostics and logs go to errW.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. The logger writes
// to errW so that outW only ever carries rendered grids.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)
	return &App{
		outW:   outW,
		errW:   errW,
		logger: logger,
		config: cfg,
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// withLogger returns ctx carrying the application logger.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}

// unitContext tags ctx's logger with a fresh unit id and the unit's source.
func unitContext(ctx context.Context, source string) context.Context {
	return ctxlog.With(ctx, "unit_id", uuid.NewString(), "source", source)
}
