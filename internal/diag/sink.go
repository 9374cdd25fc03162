package diag

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hashicorp/hcl/v2"
)

// Sink receives diagnostics. Emit has no failure mode.
type Sink interface {
	Emit(d *hcl.Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(d *hcl.Diagnostic)

func (f SinkFunc) Emit(d *hcl.Diagnostic) { f(d) }

// Discard drops every diagnostic.
var Discard Sink = SinkFunc(func(*hcl.Diagnostic) {})

// Collector accumulates diagnostics in emission order. It is safe for
// concurrent use.
type Collector struct {
	mu    sync.Mutex
	diags hcl.Diagnostics
}

func (c *Collector) Emit(d *hcl.Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, d)
}

// Extend emits every diagnostic of diags in order.
func (c *Collector) Extend(diags hcl.Diagnostics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.diags = append(c.diags, diags...)
}

// Diagnostics returns a snapshot of the collected diagnostics.
func (c *Collector) Diagnostics() hcl.Diagnostics {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(hcl.Diagnostics, len(c.diags))
	copy(out, c.diags)
	return out
}

// HasErrors reports whether an error-severity diagnostic was collected.
func (c *Collector) HasErrors() bool {
	return c.ErrorCount() > 0
}

// ErrorCount returns the number of error-severity diagnostics collected.
func (c *Collector) ErrorCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return ErrorCount(c.diags)
}

// ErrorCount returns the number of error-severity diagnostics in diags.
func ErrorCount(diags hcl.Diagnostics) int {
	n := 0
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			n++
		}
	}
	return n
}

// LogSink writes each diagnostic to a structured logger: errors at error
// level, everything else at warn level.
type LogSink struct {
	ctx    context.Context
	logger *slog.Logger
}

// NewLogSink returns a sink logging through logger.
func NewLogSink(ctx context.Context, logger *slog.Logger) *LogSink {
	return &LogSink{ctx: ctx, logger: logger}
}

func (s *LogSink) Emit(d *hcl.Diagnostic) {
	level := slog.LevelWarn
	if d.Severity == hcl.DiagError {
		level = slog.LevelError
	}
	attrs := []any{"code", string(CodeOf(d))}
	if d.Subject != nil {
		attrs = append(attrs, "range", d.Subject.String())
	}
	if d.Detail != "" {
		attrs = append(attrs, "detail", d.Detail)
	}
	s.logger.Log(s.ctx, level, d.Summary, attrs...)
}

type tee []Sink

func (t tee) Emit(d *hcl.Diagnostic) {
	for _, s := range t {
		s.Emit(d)
	}
}

// Tee returns a sink forwarding every diagnostic to each of sinks in order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}
