package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/kuilang/internal/builder"
	"github.com/specialistvlad/kuilang/internal/ctxlog"
	"github.com/specialistvlad/kuilang/internal/diag"
	"github.com/specialistvlad/kuilang/internal/fsutil"
	kuihcl "github.com/specialistvlad/kuilang/internal/hcl"
	"golang.org/x/sync/errgroup"
)

// ErrDiagnostics is wrapped by the error Run returns when a source file has
// error diagnostics.
var ErrDiagnostics = errors.New("source files have errors")

// fileResult is the outcome of one compilation unit. result is nil when the
// file could not be parsed.
type fileResult struct {
	path   string
	result *builder.Result
	diags  hcl.Diagnostics
}

// Run executes the main application logic based on the provided configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = a.context(ctx)
	a.logger.Debug("App.Run method started.")

	files, err := fsutil.Discover(a.config.Paths, kuihcl.FileExtension)
	if err != nil {
		return fmt.Errorf("failed to discover source files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", kuihcl.FileExtension, strings.Join(a.config.Paths, ", "))
	}
	a.logger.Debug("Source files discovered.", "count", len(files), "workers", a.config.Workers)

	results := make([]fileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Workers)
	for i, path := range files {
		g.Go(func() error {
			res, err := a.bindFile(gctx, path)
			results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := a.report(ctx, results); err != nil {
		return err
	}

	var all hcl.Diagnostics
	failed, symbolCount := 0, 0
	for _, r := range results {
		all = append(all, r.diags...)
		if r.diags.HasErrors() {
			failed++
		}
		if r.result != nil {
			symbolCount += r.result.Symbols
		}
	}
	errCount := diag.ErrorCount(all)
	a.logger.Info("Binding finished.",
		"files", len(files),
		"symbols", symbolCount,
		"errors", errCount,
		"warnings", len(all)-errCount,
	)

	if errCount > 0 {
		return fmt.Errorf("%d error(s) in %d file(s): %w", errCount, failed, ErrDiagnostics)
	}
	a.logger.Debug("App.Run method finished.")
	return nil
}

// bindFile parses and binds one file with its own builder and collector.
// Only fatal errors are returned; diagnostics travel in the result.
func (a *App) bindFile(ctx context.Context, path string) (fileResult, error) {
	out := fileResult{path: path}
	if err := ctx.Err(); err != nil {
		return out, err
	}

	collector := &diag.Collector{}
	program, diags := a.loader.Load(ctx, path)
	collector.Extend(diags)
	if program == nil {
		out.diags = collector.Diagnostics()
		return out, nil
	}

	res, err := builder.New(collector, a.registry).Build(ctx, program)
	if err != nil {
		return out, fmt.Errorf("failed to bind %s: %w", path, err)
	}
	ctxlog.FromContext(ctx).Debug("File bound.", "file", path, "symbols", res.Symbols, "ok", res.OK())

	out.result = res
	out.diags = collector.Diagnostics()
	return out, nil
}
