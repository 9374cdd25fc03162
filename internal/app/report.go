package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/kuilang/internal/diag"
	"github.com/specialistvlad/kuilang/internal/nodeid"
	"github.com/specialistvlad/kuilang/internal/symbols"
)

// ErrSymbolNotFound is returned when Config.Show names an address that no
// bound file has.
var ErrSymbolNotFound = errors.New("no symbol at address")

// report writes diagnostics, then the requested symbol trees, in file order.
// With the json log format diagnostics become log records instead of text.
func (a *App) report(ctx context.Context, results []fileResult) error {
	var all hcl.Diagnostics
	for _, r := range results {
		all = append(all, r.diags...)
	}

	if a.config.LogFormat == "json" {
		sink := diag.NewLogSink(ctx, a.logger)
		for _, d := range all {
			sink.Emit(d)
		}
	} else if len(all) > 0 {
		wr := hcl.NewDiagnosticTextWriter(a.outW, a.loader.Files(), a.config.Width, !a.config.NoColor)
		if err := wr.WriteDiagnostics(all); err != nil {
			return fmt.Errorf("failed to write diagnostics: %w", err)
		}
	}

	if a.config.Dump {
		for _, r := range results {
			if r.result == nil {
				continue
			}
			fmt.Fprintf(a.outW, "# %s\n", r.path)
			if err := symbols.Dump(a.outW, r.result.Root); err != nil {
				return fmt.Errorf("failed to dump %s: %w", r.path, err)
			}
		}
	}

	if a.config.Show != "" {
		return a.show(results)
	}
	return nil
}

func (a *App) show(results []fileResult) error {
	addr := nodeid.MustParse(a.config.Show)
	found := false
	for _, r := range results {
		if r.result == nil {
			continue
		}
		sym, ok := symbols.Lookup(r.result.Root, addr)
		if !ok {
			continue
		}
		found = true
		fmt.Fprintf(a.outW, "# %s: %s\n", r.path, addr)
		if err := symbols.Dump(a.outW, sym); err != nil {
			return fmt.Errorf("failed to dump %s: %w", addr, err)
		}
	}
	if !found {
		return fmt.Errorf("%w %q", ErrSymbolNotFound, a.config.Show)
	}
	return nil
}
