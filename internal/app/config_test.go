package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Paths:     []string{"main.kui"},
		LogFormat: "text",
		LogLevel:  "info",
		Workers:   4,
	}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mutate    func(*Config)
		wantError string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "valid show address", mutate: func(c *Config) { c.Show = "Point.length.body.return[1]" }},
		{name: "no paths", mutate: func(c *Config) { c.Paths = nil }, wantError: "source path is required"},
		{name: "zero workers", mutate: func(c *Config) { c.Workers = 0 }, wantError: "workers must be positive"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantError: `invalid log level "trace"`},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "yaml" }, wantError: `invalid log format "yaml"`},
		{name: "bad address", mutate: func(c *Config) { c.Show = "Point..x" }, wantError: "invalid symbol address"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			cfg := validConfig()
			tc.mutate(&cfg)

			// --- Act ---
			got, err := NewConfig(cfg)

			// --- Assert ---
			if tc.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantError)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, cfg.Paths, got.Paths)
		})
	}
}

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	paths := []string{"a.kui"}
	cfg := validConfig()
	cfg.Paths = paths

	got, err := NewConfig(cfg)

	require.NoError(t, err)
	assert.Equal(t, uint(DefaultWidth), got.Width)
	paths[0] = "changed.kui"
	assert.Equal(t, []string{"a.kui"}, got.Paths, "paths are copied")
}
