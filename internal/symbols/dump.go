package symbols

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

type dumpConfig struct {
	builtins bool
}

// DumpOption configures Dump.
type DumpOption func(*dumpConfig)

// IncludeBuiltins makes Dump render built-in types, which are hidden by
// default.
func IncludeBuiltins() DumpOption {
	return func(c *dumpConfig) { c.builtins = true }
}

// Dump writes an indented rendering of the graph owned by s to w, one symbol
// per line.
func Dump(w io.Writer, s Symbol, opts ...DumpOption) error {
	var cfg dumpConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	d := &dumper{w: w, cfg: cfg}
	d.line(0, "", s)
	d.children(1, s)
	return d.err
}

type dumper struct {
	w   io.Writer
	cfg dumpConfig
	err error
}

func (d *dumper) children(depth int, s Symbol) {
	for _, e := range Edges(s) {
		if t, ok := e.Child.(*Type); ok && t.Builtin && !d.cfg.builtins {
			continue
		}
		d.line(depth, e.Segment.String(), e.Child)
		d.children(depth+1, e.Child)
	}
}

func (d *dumper) line(depth int, label string, s Symbol) {
	if d.err != nil {
		return
	}
	var sb strings.Builder
	sb.WriteString(strings.Repeat("  ", depth))
	if label != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
	}
	sb.WriteString(s.Kind().String())
	for _, attr := range describe(s) {
		sb.WriteByte(' ')
		sb.WriteString(attr)
	}
	sb.WriteByte('\n')
	_, d.err = io.WriteString(d.w, sb.String())
}

func describe(s Symbol) []string {
	switch s := s.(type) {
	case *Type:
		if s.Builtin {
			return []string{"builtin"}
		}
	case *Method:
		if s.ReturnTypeName != "" {
			return []string{"returns=" + s.ReturnTypeName}
		}
	case *Parameter:
		return typeAttr(s.TypeName)
	case *Field:
		return typeAttr(s.TypeName)
	case *LocalVariable:
		return append([]string{"name=" + s.Name}, typeAttr(s.TypeName)...)
	case *IdentifierReference:
		return []string{"name=" + s.Name}
	case *NumberLiteral:
		return []string{"value=" + renderValue(s.Value)}
	case *FunctionCallExpression:
		if s.Operator {
			return []string{"op=" + s.Name}
		}
		return []string{"name=" + s.Name}
	case *MethodCallExpression:
		return []string{"name=" + s.Name}
	}
	return nil
}

func typeAttr(name string) []string {
	if name == "" {
		return nil
	}
	return []string{"type=" + name}
}

func renderValue(v cty.Value) string {
	if v.IsNull() || !v.IsWhollyKnown() {
		return fmt.Sprintf("(%s)", v.GoString())
	}
	return string(hclwrite.TokensForValue(v).Bytes())
}
