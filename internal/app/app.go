package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/specialistvlad/kuilang/internal/builtins"
	"github.com/specialistvlad/kuilang/internal/ctxlog"
)

// Loader parses source files and keeps them for diagnostic rendering.
type Loader interface {
	ast.Loader
	Files() map[string]*hcl.File
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   Loader
	registry builtins.Registry
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. A nil registry
// means the built-in manifest.
func New(outW io.Writer, cfg *Config, loader Loader, reg builtins.Registry) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if reg == nil {
		reg = builtins.Default()
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		loader:   loader,
		registry: reg,
	}
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
