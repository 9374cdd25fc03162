package builder

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/specialistvlad/kuilang/internal/builtins"
	"github.com/specialistvlad/kuilang/internal/ctxlog"
	"github.com/specialistvlad/kuilang/internal/diag"
	"github.com/specialistvlad/kuilang/internal/symbols"
	"github.com/specialistvlad/kuilang/internal/visit"
)

// VisitHook observes the scope cursor around every dispatched syntax node.
// before is the cursor when n was entered and after the cursor once its
// visit returned.
type VisitHook func(n ast.Node, before, after symbols.Symbol)

// Option configures a Builder.
type Option func(*Builder)

// WithVisitHook installs hook. Intended for tests and tracing.
func WithVisitHook(hook VisitHook) Option {
	return func(b *Builder) { b.hook = hook }
}

// Builder binds one compilation unit.
type Builder struct {
	sink     diag.Sink
	registry builtins.Registry
	hook     VisitHook
	used     bool
}

// New creates a Builder emitting diagnostics to sink and seeding every
// program with the types of reg. A nil sink discards diagnostics and a nil
// registry stands for builtins.Default. Pass builtins.None to bind without
// intrinsic types.
func New(sink diag.Sink, reg builtins.Registry, opts ...Option) *Builder {
	if sink == nil {
		sink = diag.Discard
	}
	if reg == nil {
		reg = builtins.Default()
	}
	b := &Builder{sink: sink, registry: reg}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Result is the outcome of a successful pass. The graph is complete even
// when Diagnostics contain errors; OK tells whether it may be handed to
// later passes.
type Result struct {
	Root        *symbols.ProgramRoot
	Diagnostics hcl.Diagnostics
	// Symbols is the number of symbols built from syntax nodes, including
	// those that were not attached to the graph.
	Symbols int
}

// OK reports whether the pass emitted no error diagnostics.
func (r *Result) OK() bool {
	return !r.Diagnostics.HasErrors()
}

// ErrorCount returns the number of error diagnostics.
func (r *Result) ErrorCount() int {
	return diag.ErrorCount(r.Diagnostics)
}

// Build binds program. It returns an *InternalError, and no graph, when the
// syntax tree violates the builder's contract.
func (b *Builder) Build(ctx context.Context, program *ast.Program) (res *Result, err error) {
	if program == nil {
		return nil, internalf(nil, "nil program")
	}
	if b.used {
		return nil, internalf(program, "builder already used; create one per compilation unit")
	}
	b.used = true

	logger := ctxlog.FromContext(ctx).With("file", program.Filename)
	p := &pass{
		sink:     b.sink,
		registry: b.registry,
		hook:     b.hook,
		logger:   logger,
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *InternalError:
			err = e
		case *visit.UnknownNodeError:
			err = &InternalError{Node: e.Node, Msg: "unsupported syntax node", Cause: e}
		default:
			panic(r)
		}
		logger.Error("Binding aborted.", "error", err)
		res = nil
	}()

	root := p.visit(program).(*symbols.ProgramRoot)
	if len(p.scopes) != 0 {
		return nil, internalf(program, "%d scope(s) left open", len(p.scopes))
	}

	logger.Debug("Binding finished.", "symbols", p.count, "diagnostics", len(p.diags))
	return &Result{Root: root, Diagnostics: p.diags, Symbols: p.count}, nil
}

// Bind is a convenience wrapper binding program with a fresh Builder.
func Bind(ctx context.Context, program *ast.Program, sink diag.Sink, reg builtins.Registry, opts ...Option) (*Result, error) {
	return New(sink, reg, opts...).Build(ctx, program)
}
