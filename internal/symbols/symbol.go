package symbols

import "github.com/specialistvlad/kuilang/internal/ast"

// Symbol is implemented by every node of the graph.
type Symbol interface {
	// Parent returns the enclosing scope. It is nil only for the
	// ProgramRoot and for built-in types that have not been adopted yet.
	Parent() Symbol
	Kind() Kind
	// Syntax returns the syntax node the symbol was built from, or nil for
	// built-ins.
	Syntax() ast.Node
}

// MethodHolder is a scope that can declare methods: the program root and
// types. Method names are unique within a holder.
type MethodHolder interface {
	Symbol
	MethodTable() *Table[*Method]
}

// Expression is a value-producing symbol.
type Expression interface {
	Symbol
	// ResultType is the type of the produced value. It is nil until the
	// type-checking pass runs.
	ResultType() *Type
	expressionSymbol()
}

// Statement is a symbol that can appear in a statement sequence.
type Statement interface {
	Symbol
	statementSymbol()
}

// StatementHolder is a scope that owns an ordered statement list.
type StatementHolder interface {
	Symbol
	AppendStatement(s Statement)
}

// SingleStatementHolder is a scope whose body is exactly one statement,
// e.g. the branch of an if.
type SingleStatementHolder interface {
	Symbol
	SingleStatement() Statement
}

type base struct {
	parent Symbol
	syntax ast.Node
}

func (b *base) Parent() Symbol   { return b.parent }
func (b *base) Syntax() ast.Node { return b.syntax }

func newBase[N interface {
	ast.Node
	comparable
}](parent Symbol, n N) base {
	var zero N
	if n == zero {
		return base{parent: parent}
	}
	return base{parent: parent, syntax: n}
}
