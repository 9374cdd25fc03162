package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/kuilang/internal/app"
	"github.com/specialistvlad/kuilang/internal/cli"
	"github.com/specialistvlad/kuilang/internal/hcl"
)

// main is the entrypoint for the kuic binder.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Stdout, os.Args[1:])
	stop()
	os.Exit(exitCode(os.Stderr, err))
}

// exitCode reports err on errW and maps it to the process exit code.
func exitCode(errW io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		fmt.Fprintln(errW, exitErr.Message)
		return exitErr.Code
	}
	fmt.Fprintln(errW, err)
	return 1
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	// Internal defects panic; recover here to provide a clean exit message
	// to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	// Instantiate the concrete HCL loader to pass to the app.
	loader := hcl.NewLoader()
	kuiApp := app.New(outW, appConfig, loader, nil)

	return kuiApp.Run(ctx)
}
