package ast

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// Node is implemented by every syntax tree node.
type Node interface {
	SrcRange() hcl.Range
	node()
}

// Statement is a node allowed in a statement sequence. Declarations are
// statements too: a block may declare variables, and the top-level block
// declares types and methods.
type Statement interface {
	Node
	statementNode()
}

// Expression is a value-producing node.
type Expression interface {
	Node
	expressionNode()
}

// Program is the compilation unit. Body holds the top-level declarations in
// source order.
type Program struct {
	Filename string
	Body     *Block
	Range    hcl.Range
}

// --- Declarations ---

// Type declares a user type. Members are Field and Method nodes in source order.
type Type struct {
	Name      string
	Members   []Statement
	DeclRange hcl.Range
	Range     hcl.Range
}

// Method declares a callable, either free (top level) or a type member.
type Method struct {
	Name       string
	ReturnType string
	Parameters []*Parameter
	Body       *Block
	DeclRange  hcl.Range
	Range      hcl.Range
}

// Parameter is a formal argument of a Method.
type Parameter struct {
	Name      string
	TypeName  string
	DeclRange hcl.Range
	Range     hcl.Range
}

// Field is the single declaration construct for both type fields and local
// variables. Which one it is depends on where it appears.
type Field struct {
	Name      string
	TypeName  string
	InitValue Expression // nil when absent
	DeclRange hcl.Range
	Range     hcl.Range
}

// --- Statements ---

// Block is a lexical sequence of statements.
type Block struct {
	Statements []Statement
	Range      hcl.Range
}

// If is a conditional. Statement is either a *Block or a single statement.
type If struct {
	Condition Expression
	Statement Statement
	Range     hcl.Range
}

// Return exits the enclosing method. Value is nil for a bare return.
type Return struct {
	Value Expression
	Range hcl.Range
}

// FieldAssignation assigns NewValue to the name referenced by Target.
type FieldAssignation struct {
	Target   Expression
	NewValue Expression
	Range    hcl.Range
}

// MethodCallStatement evaluates a call for its side effects.
type MethodCallStatement struct {
	Call  Expression
	Range hcl.Range
}

// --- Expressions ---

// IdentifierValue is a use of a name.
type IdentifierValue struct {
	Name  string
	Range hcl.Range
}

// Number is a numeric literal. Value is always of type cty.Number.
type Number struct {
	Value cty.Value
	Range hcl.Range
}

// FuncCall calls a free function.
type FuncCall struct {
	Name  string
	Args  []Expression
	Range hcl.Range
}

// Operator is a binary operation such as `a + b`.
type Operator struct {
	Op    string
	Left  Expression
	Right Expression
	Range hcl.Range
}

// MethodCall calls the method Name on Receiver.
type MethodCall struct {
	Receiver Expression
	Name     string
	Args     []Expression
	Range    hcl.Range
}

func (n *Program) SrcRange() hcl.Range             { return n.Range }
func (n *Type) SrcRange() hcl.Range                { return n.Range }
func (n *Method) SrcRange() hcl.Range              { return n.Range }
func (n *Parameter) SrcRange() hcl.Range           { return n.Range }
func (n *Field) SrcRange() hcl.Range               { return n.Range }
func (n *Block) SrcRange() hcl.Range               { return n.Range }
func (n *If) SrcRange() hcl.Range                  { return n.Range }
func (n *Return) SrcRange() hcl.Range              { return n.Range }
func (n *FieldAssignation) SrcRange() hcl.Range    { return n.Range }
func (n *MethodCallStatement) SrcRange() hcl.Range { return n.Range }
func (n *IdentifierValue) SrcRange() hcl.Range     { return n.Range }
func (n *Number) SrcRange() hcl.Range              { return n.Range }
func (n *FuncCall) SrcRange() hcl.Range            { return n.Range }
func (n *Operator) SrcRange() hcl.Range            { return n.Range }
func (n *MethodCall) SrcRange() hcl.Range          { return n.Range }

func (*Program) node()             {}
func (*Type) node()                {}
func (*Method) node()              {}
func (*Parameter) node()           {}
func (*Field) node()               {}
func (*Block) node()               {}
func (*If) node()                  {}
func (*Return) node()              {}
func (*FieldAssignation) node()    {}
func (*MethodCallStatement) node() {}
func (*IdentifierValue) node()     {}
func (*Number) node()              {}
func (*FuncCall) node()            {}
func (*Operator) node()            {}
func (*MethodCall) node()          {}

func (*Type) statementNode()                {}
func (*Method) statementNode()              {}
func (*Field) statementNode()               {}
func (*Block) statementNode()               {}
func (*If) statementNode()                  {}
func (*Return) statementNode()              {}
func (*FieldAssignation) statementNode()    {}
func (*MethodCallStatement) statementNode() {}

func (*IdentifierValue) expressionNode() {}
func (*Number) expressionNode()          {}
func (*FuncCall) expressionNode()        {}
func (*Operator) expressionNode()        {}
func (*MethodCall) expressionNode()      {}
