package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/kuilang/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// UsageErrorCode is the exit code for invalid command lines.
const UsageErrorCode = 2

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: UsageErrorCode, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("kuic", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
kuic - binds KuiLang sources into a symbol graph and reports diagnostics.

Usage:
  kuic [options] PATH...

Arguments:
  PATH
    A .kui file or a directory searched recursively for .kui files.
    Directories may hold a .kuiignore file in .gitignore syntax.

Options:
`)
		flagSet.PrintDefaults()
	}

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'. With 'json', diagnostics are logged as records.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	workersFlag := flagSet.Int("workers", 4, "Number of files bound concurrently.")
	dumpFlag := flagSet.Bool("dump", false, "Print the symbol tree of every file.")
	showFlag := flagSet.String("show", "", "Print the symbol subtree at an address, e.g. 'Point.length.body'.")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colors in rendered diagnostics.")
	widthFlag := flagSet.Uint("width", app.DefaultWidth, "Wrap width of rendered diagnostics.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	paths := flagSet.Args()
	if len(paths) == 0 {
		flagSet.Usage()
		return nil, false, usageError("no source path given")
	}
	slog.Debug("Source paths determined.", "paths", paths)

	config, err := app.NewConfig(app.Config{
		Paths:     paths,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
		Workers:   *workersFlag,
		Dump:      *dumpFlag,
		Show:      *showFlag,
		NoColor:   *noColorFlag,
		Width:     *widthFlag,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
