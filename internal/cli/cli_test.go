package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/kuilang/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{
		"-log-level", "DEBUG",
		"-log-format", "json",
		"-workers", "8",
		"-dump",
		"-show", "Point.length",
		"-no-color",
		"-width", "72",
		"a.kui", "src",
	}
	out := &bytes.Buffer{}

	// --- Act ---
	cfg, shouldExit, err := Parse(args, out)

	// --- Assert ---
	require.NoError(t, err)
	assert.False(t, shouldExit)
	want := &app.Config{
		Paths:     []string{"a.kui", "src"},
		LogFormat: "json",
		LogLevel:  "debug",
		Workers:   8,
		Dump:      true,
		Show:      "Point.length",
		NoColor:   true,
		Width:     72,
	}
	assert.Equal(t, want, cfg)
	assert.Empty(t, out.String())
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, shouldExit, err := Parse([]string{"main.kui"}, &bytes.Buffer{})

	require.NoError(t, err)
	assert.False(t, shouldExit)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, uint(app.DefaultWidth), cfg.Width)
	assert.False(t, cfg.Dump)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-show")
}

func TestParse_UsageErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-nope", "a.kui"}, wantMsg: "flag provided but not defined: -nope"},
		{name: "no path", args: nil, wantMsg: "no source path given"},
		{name: "bad level", args: []string{"-log-level", "loud", "a.kui"}, wantMsg: "invalid log level"},
		{name: "bad format", args: []string{"-log-format", "xml", "a.kui"}, wantMsg: "invalid log format"},
		{name: "zero workers", args: []string{"-workers", "0", "a.kui"}, wantMsg: "workers must be positive"},
		{name: "bad address", args: []string{"-show", "a[x]", "a.kui"}, wantMsg: "invalid symbol address"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			assert.Nil(t, cfg)
			assert.False(t, shouldExit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, UsageErrorCode, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
