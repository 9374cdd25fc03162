package builder

import (
	"log/slog"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/specialistvlad/kuilang/internal/builtins"
	"github.com/specialistvlad/kuilang/internal/diag"
	"github.com/specialistvlad/kuilang/internal/symbols"
	"github.com/specialistvlad/kuilang/internal/visit"
)

// pass holds the state of one Build call.
type pass struct {
	sink     diag.Sink
	registry builtins.Registry
	hook     VisitHook
	logger   *slog.Logger

	scopes []symbols.Symbol
	diags  hcl.Diagnostics
	count  int
}

var _ visit.Visitor[symbols.Symbol] = (*pass)(nil)

func dispatch(p *pass, n ast.Node) symbols.Symbol {
	return visit.Dispatch[symbols.Symbol](p, n)
}

func (p *pass) emit(d *hcl.Diagnostic) {
	p.diags = append(p.diags, d)
	p.sink.Emit(d)
}

// track counts a symbol built from syntax.
func track[S symbols.Symbol](p *pass, s S) S {
	p.count++
	return s
}

// expr visits a required expression.
func (p *pass) expr(owner ast.Node, n ast.Expression) symbols.Expression {
	if n == nil {
		panic(internalf(owner, "missing expression"))
	}
	sym := p.visit(n)
	e, ok := sym.(symbols.Expression)
	if !ok {
		panic(internalf(n, "%T bound to %s, not an expression", n, sym.Kind()))
	}
	return e
}

// optExpr visits an optional expression.
func (p *pass) optExpr(owner ast.Node, n ast.Expression) symbols.Expression {
	if n == nil {
		return nil
	}
	return p.expr(owner, n)
}

func (p *pass) exprs(owner ast.Node, ns []ast.Expression) []symbols.Expression {
	if len(ns) == 0 {
		return nil
	}
	out := make([]symbols.Expression, 0, len(ns))
	for _, n := range ns {
		out = append(out, p.expr(owner, n))
	}
	return out
}

// rootOwner returns the root when the cursor is the root itself or the
// top-level block directly under it.
func (p *pass) rootOwner() (*symbols.ProgramRoot, bool) {
	switch cur := p.current().(type) {
	case *symbols.ProgramRoot:
		return cur, true
	case *symbols.StatementBlock:
		root, ok := cur.Parent().(*symbols.ProgramRoot)
		return root, ok
	}
	return nil, false
}

// --- Root ---

func (p *pass) VisitProgram(n *ast.Program) symbols.Symbol {
	if p.current() != nil {
		panic(internalf(n, "nested program"))
	}
	root := track(p, symbols.NewProgramRoot(n))
	for _, t := range p.registry.Types() {
		if _, ok := root.Adopt(t); !ok {
			panic(internalf(n, "built-in type %q registered twice", t.Name))
		}
	}
	p.logger.Debug("Built-in types adopted.", "count", root.Types.Len())

	release := p.enter(n, root)
	defer release()

	if n.Body != nil {
		root.Body = p.visit(n.Body).(*symbols.StatementBlock)
	}
	return root
}

// --- Declarations ---

func (p *pass) VisitType(n *ast.Type) symbols.Symbol {
	root, ok := p.rootOwner()
	if !ok {
		panic(internalf(n, "type %q declared inside %s; types only live at the top level", n.Name, p.current().Kind()))
	}
	t := track(p, symbols.NewType(root, n, n.Name))
	if n.Name == symbols.TopLevelSegment {
		p.reserved("type", n.Name, n, n.DeclRange)
	} else if !clash(p, "type", n.Name, n, n.DeclRange, "method", root.Methods) {
		if first, ok := root.Types.Add(n.Name, t); !ok {
			p.duplicate("type", n.Name, n, n.DeclRange, first)
		}
	}

	release := p.enter(n, t)
	defer release()

	for _, m := range n.Members {
		p.visit(m)
	}
	return t
}

func (p *pass) VisitMethod(n *ast.Method) symbols.Symbol {
	var owner symbols.MethodHolder
	if holder, ok := p.current().(symbols.MethodHolder); ok {
		owner = holder
	} else if root, ok := p.rootOwner(); ok {
		owner = root
	} else {
		panic(internalf(n, "method %q declared inside %s", n.Name, p.current().Kind()))
	}

	m := track(p, symbols.NewMethod(owner, n, n.Name))
	m.ReturnTypeName = n.ReturnType

	// Types and free methods share the root namespace, fields and methods
	// share the namespace of a type.
	var taken bool
	switch o := owner.(type) {
	case *symbols.ProgramRoot:
		if n.Name == symbols.TopLevelSegment {
			p.reserved("method", n.Name, n, n.DeclRange)
			taken = true
		} else {
			taken = clash(p, "method", n.Name, n, n.DeclRange, "type", o.Types)
		}
	case *symbols.Type:
		taken = clash(p, "method", n.Name, n, n.DeclRange, "field", o.Fields)
	}
	if !taken {
		if first, ok := owner.MethodTable().Add(n.Name, m); !ok {
			p.duplicate("method", n.Name, n, n.DeclRange, first)
		}
	}

	release := p.enter(n, m)
	defer release()

	for _, param := range n.Parameters {
		p.visit(param)
	}
	if n.Body != nil {
		m.Body = p.visit(n.Body).(*symbols.StatementBlock)
	}
	return m
}

func (p *pass) VisitParameter(n *ast.Parameter) symbols.Symbol {
	m, ok := p.current().(*symbols.Method)
	if !ok {
		panic(internalf(n, "parameter %q outside of a method", n.Name))
	}
	param := track(p, symbols.NewParameter(m, n, n.Name, n.TypeName))
	if n.Name == symbols.BodySegment {
		p.reserved("parameter", n.Name, n, n.DeclRange)
	} else if first, ok := m.Parameters.Add(n.Name, param); !ok {
		p.duplicate("parameter", n.Name, n, n.DeclRange, first)
	}
	return param
}

// VisitField builds a Field when the cursor is a type and a LocalVariable
// anywhere else.
func (p *pass) VisitField(n *ast.Field) symbols.Symbol {
	enclosing := p.current()

	if t, ok := enclosing.(*symbols.Type); ok {
		f := track(p, symbols.NewField(t, n, n.Name, n.TypeName))
		if !clash(p, "field", n.Name, n, n.DeclRange, "method", t.Methods) {
			if first, ok := t.Fields.Add(n.Name, f); !ok {
				p.duplicate("field", n.Name, n, n.DeclRange, first)
			}
		}
		if n.InitValue != nil {
			p.within(n, f, func() { f.InitValue = p.expr(n, n.InitValue) })
		}
		return f
	}

	v := track(p, symbols.NewLocalVariable(enclosing, n, n.Name, n.TypeName))
	if n.InitValue != nil {
		p.within(n, v, func() { v.InitValue = p.expr(n, n.InitValue) })
	}
	if _, ok := enclosing.(symbols.SingleStatementHolder); ok {
		p.emit(diag.FieldSingleStatement(n))
	}
	return v
}

// duplicate reports a rejected redeclaration. first is the symbol that
// keeps the name.
func (p *pass) duplicate(kind, name string, n ast.Node, declRange hcl.Range, first symbols.Symbol) {
	p.logger.Debug("Duplicate declaration rejected.", "kind", kind, "name", name)
	p.emit(diag.DuplicateDeclaration(kind, name, n, declRange, sourceRange(first)))
}

// clash reports a declaration whose name is already taken in other, a table
// of another kind sharing its namespace. It returns false when the name is
// free there.
func clash[T symbols.Symbol](p *pass, kind, name string, n ast.Node, declRange hcl.Range, otherKind string, other *symbols.Table[T]) bool {
	first, ok := other.Get(name)
	if !ok {
		return false
	}
	p.logger.Debug("Conflicting declaration rejected.", "kind", kind, "name", name, "taken_by", otherKind)
	p.emit(diag.ConflictingDeclaration(kind, name, otherKind, n, declRange, sourceRange(first)))
	return true
}

func (p *pass) reserved(kind, name string, n ast.Node, declRange hcl.Range) {
	p.logger.Debug("Reserved name rejected.", "kind", kind, "name", name)
	p.emit(diag.ReservedName(kind, name, n, declRange))
}

// sourceRange returns the declaration range of s, or nil for a built-in.
func sourceRange(s symbols.Symbol) *hcl.Range {
	syn := s.Syntax()
	if syn == nil {
		return nil
	}
	r := declRangeOf(syn)
	return &r
}

func declRangeOf(n ast.Node) hcl.Range {
	switch n := n.(type) {
	case *ast.Type:
		return n.DeclRange
	case *ast.Method:
		return n.DeclRange
	case *ast.Parameter:
		return n.DeclRange
	case *ast.Field:
		return n.DeclRange
	}
	return n.SrcRange()
}

// --- Statements ---

func (p *pass) VisitBlock(n *ast.Block) symbols.Symbol {
	b := track(p, symbols.NewStatementBlock(p.current(), n))

	release := p.enter(n, b)
	defer release()

	for _, st := range n.Statements {
		// Type and method declarations are owned by their table.
		if s, ok := p.visit(st).(symbols.Statement); ok {
			b.AppendStatement(s)
		}
	}
	return b
}

func (p *pass) VisitIf(n *ast.If) symbols.Symbol {
	s := track(p, symbols.NewIfStatement(p.current(), n))

	release := p.enter(n, s)
	defer release()

	s.Condition = p.expr(n, n.Condition)
	if n.Statement == nil {
		panic(internalf(n, "if without a body"))
	}
	body, ok := p.visit(n.Statement).(symbols.Statement)
	if !ok {
		panic(internalf(n.Statement, "%T is not allowed as the body of an if", n.Statement))
	}
	s.Body = body
	return s
}

func (p *pass) VisitReturn(n *ast.Return) symbols.Symbol {
	s := track(p, symbols.NewReturnStatement(p.current(), n))

	release := p.enter(n, s)
	defer release()

	s.Value = p.optExpr(n, n.Value)
	return s
}

func (p *pass) VisitFieldAssignation(n *ast.FieldAssignation) symbols.Symbol {
	s := track(p, symbols.NewFieldAssignationStatement(p.current(), n))

	release := p.enter(n, s)
	defer release()

	target, ok := p.expr(n, n.Target).(*symbols.IdentifierReference)
	if !ok {
		panic(internalf(n.Target, "assignment target must be a name, got %T", n.Target))
	}
	s.Target = target
	s.NewValue = p.expr(n, n.NewValue)
	return s
}

func (p *pass) VisitMethodCallStatement(n *ast.MethodCallStatement) symbols.Symbol {
	s := track(p, symbols.NewMethodCallStatement(p.current(), n))

	release := p.enter(n, s)
	defer release()

	s.Call = p.expr(n, n.Call)
	return s
}

// --- Expressions ---

func (p *pass) VisitIdentifierValue(n *ast.IdentifierValue) symbols.Symbol {
	return track(p, symbols.NewIdentifierReference(p.current(), n, n.Name))
}

func (p *pass) VisitNumber(n *ast.Number) symbols.Symbol {
	return track(p, symbols.NewNumberLiteral(p.current(), n, n.Value))
}

func (p *pass) VisitFuncCall(n *ast.FuncCall) symbols.Symbol {
	c := track(p, symbols.NewFunctionCall(p.current(), n, n.Name))

	release := p.enter(n, c)
	defer release()

	c.Arguments = p.exprs(n, n.Args)
	return c
}

// VisitOperator binds `left op right` as a call of op whose only argument
// is right. left is bound under the enclosing scope and not kept on the
// call.
func (p *pass) VisitOperator(n *ast.Operator) symbols.Symbol {
	c := track(p, symbols.NewOperatorCall(p.current(), n, n.Op))
	p.expr(n, n.Left)

	release := p.enter(n, c)
	defer release()

	c.Arguments = []symbols.Expression{p.expr(n, n.Right)}
	return c
}

func (p *pass) VisitMethodCall(n *ast.MethodCall) symbols.Symbol {
	c := track(p, symbols.NewMethodCall(p.current(), n, n.Name))

	release := p.enter(n, c)
	defer release()

	c.Receiver = p.expr(n, n.Receiver)
	c.Arguments = p.exprs(n, n.Args)
	return c
}
