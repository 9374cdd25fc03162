package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/kuilang/internal/nodeid"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Paths []string // .kui files or directories

	LogFormat string
	LogLevel  string
	Workers   int

	Dump    bool   // print the symbol tree of every file
	Show    string // print the subtree at this address, e.g. Point.length.body
	NoColor bool
	Width   uint // wrap width of rendered diagnostics
}

// DefaultWidth is the diagnostic wrap width used when Config.Width is zero.
const DefaultWidth = 100

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.Paths) == 0 {
		return nil, errors.New("at least one source path is required")
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("workers must be positive, got %d", cfg.Workers)
	}
	if _, ok := parseLevel(cfg.LogLevel); !ok {
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.Show != "" {
		if _, err := nodeid.Parse(cfg.Show); err != nil {
			return nil, fmt.Errorf("invalid symbol address: %w", err)
		}
	}
	if cfg.Width == 0 {
		cfg.Width = DefaultWidth
	}

	cfg.Paths = append([]string(nil), cfg.Paths...)
	return &cfg, nil
}
