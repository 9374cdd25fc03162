package builder

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/specialistvlad/kuilang/internal/builtins"
	"github.com/specialistvlad/kuilang/internal/diag"
	"github.com/specialistvlad/kuilang/internal/testutil"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// Syntax tree shorthands. Ranges are only set where a test looks at them.

func at(line int) hcl.Range {
	return hcl.Range{
		Filename: "test.kui",
		Start:    hcl.Pos{Line: line, Column: 1},
		End:      hcl.Pos{Line: line, Column: 10},
	}
}

func program(stmts ...ast.Statement) *ast.Program {
	return &ast.Program{Filename: "test.kui", Body: block(stmts...)}
}

func block(stmts ...ast.Statement) *ast.Block {
	return &ast.Block{Statements: stmts}
}

func typ(name string, members ...ast.Statement) *ast.Type {
	return &ast.Type{Name: name, Members: members}
}

func method(name, returns string, params []*ast.Parameter, body *ast.Block) *ast.Method {
	return &ast.Method{Name: name, ReturnType: returns, Parameters: params, Body: body}
}

func params(names ...string) []*ast.Parameter {
	out := make([]*ast.Parameter, 0, len(names))
	for _, n := range names {
		out = append(out, &ast.Parameter{Name: n, TypeName: "number"})
	}
	return out
}

func field(name string, init ast.Expression) *ast.Field {
	return &ast.Field{Name: name, TypeName: "number", InitValue: init}
}

func ifs(cond ast.Expression, body ast.Statement) *ast.If {
	return &ast.If{Condition: cond, Statement: body}
}

func ret(v ast.Expression) *ast.Return {
	return &ast.Return{Value: v}
}

func assign(target, value ast.Expression) *ast.FieldAssignation {
	return &ast.FieldAssignation{Target: target, NewValue: value}
}

func callStmt(e ast.Expression) *ast.MethodCallStatement {
	return &ast.MethodCallStatement{Call: e}
}

func id(name string) *ast.IdentifierValue {
	return &ast.IdentifierValue{Name: name}
}

func num(v int64) *ast.Number {
	return &ast.Number{Value: cty.NumberIntVal(v)}
}

func fcall(name string, args ...ast.Expression) *ast.FuncCall {
	return &ast.FuncCall{Name: name, Args: args}
}

func op(o string, l, r ast.Expression) *ast.Operator {
	return &ast.Operator{Op: o, Left: l, Right: r}
}

func mcall(recv ast.Expression, name string, args ...ast.Expression) *ast.MethodCall {
	return &ast.MethodCall{Receiver: recv, Name: name, Args: args}
}

// bind runs a fresh builder over p with the default built-ins and fails the
// test on an internal error.
func bind(t *testing.T, p *ast.Program, opts ...Option) (*Result, *diag.Collector) {
	t.Helper()
	ctx, _ := testutil.Context(t)
	sink := &diag.Collector{}
	res, err := New(sink, builtins.Default(), opts...).Build(ctx, p)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res, sink
}

func bindErr(t *testing.T, p *ast.Program) error {
	t.Helper()
	ctx, logs := testutil.Context(t)
	res, err := New(nil, builtins.None).Build(ctx, p)
	require.Error(t, err)
	require.Nil(t, res)
	require.Contains(t, logs.String(), "Binding aborted.")
	return err
}
