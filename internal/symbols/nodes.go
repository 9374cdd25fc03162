package symbols

import (
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// ProgramRoot is the root of the graph for one compilation unit.
type ProgramRoot struct {
	base
	Types   *Table[*Type]
	Methods *Table[*Method]
	// Body is the top-level block. Declarations found in it are registered
	// on the root, not appended to it.
	Body *StatementBlock
}

// NewProgramRoot creates an empty root for program.
func NewProgramRoot(program *ast.Program) *ProgramRoot {
	return &ProgramRoot{
		base:    newBase[*ast.Program](nil, program),
		Types:   NewTable[*Type](),
		Methods: NewTable[*Method](),
	}
}

// Adopt makes t a type of the root and registers it. It is used for types
// created outside the tree, such as built-ins. Like Table.Add it returns the
// already registered type and false when the name is taken.
func (r *ProgramRoot) Adopt(t *Type) (*Type, bool) {
	existing, ok := r.Types.Add(t.Name, t)
	if ok {
		t.parent = r
	}
	return existing, ok
}

func (*ProgramRoot) Kind() Kind                     { return KindProgramRoot }
func (r *ProgramRoot) MethodTable() *Table[*Method] { return r.Methods }

// Type is a user-declared or built-in type.
type Type struct {
	base
	Name    string
	Methods *Table[*Method]
	Fields  *Table[*Field]
	// Builtin is set for types supplied by the built-in registry.
	Builtin bool

	// Constructor is deferred.
	Constructor *Method
}

// NewType creates a type declared by syntax under root. A nil root creates
// an unparented type to be adopted later.
func NewType(root *ProgramRoot, syntax *ast.Type, name string) *Type {
	var parent Symbol
	if root != nil {
		parent = root
	}
	return &Type{
		base:    newBase(parent, syntax),
		Name:    name,
		Methods: NewTable[*Method](),
		Fields:  NewTable[*Field](),
	}
}

func (*Type) Kind() Kind                     { return KindType }
func (t *Type) MethodTable() *Table[*Method] { return t.Methods }

// Method is a free function or a type member.
type Method struct {
	base
	Name           string
	Parameters     *Table[*Parameter]
	Body           *StatementBlock
	ReturnTypeName string

	// ReturnType is deferred.
	ReturnType *Type
}

// NewMethod creates a method owned by owner. The caller registers it.
func NewMethod(owner MethodHolder, syntax *ast.Method, name string) *Method {
	return &Method{
		base:       newBase[*ast.Method](owner, syntax),
		Name:       name,
		Parameters: NewTable[*Parameter](),
	}
}

func (*Method) Kind() Kind { return KindMethod }

// Parameter is a formal argument of a method.
type Parameter struct {
	base
	Name     string
	TypeName string

	// Type is deferred.
	Type *Type
}

// NewParameter creates a parameter of m. The caller registers it.
func NewParameter(m *Method, syntax *ast.Parameter, name, typeName string) *Parameter {
	return &Parameter{
		base:     newBase[*ast.Parameter](m, syntax),
		Name:     name,
		TypeName: typeName,
	}
}

func (*Parameter) Kind() Kind { return KindParameter }

// Field is a member variable of a type.
type Field struct {
	base
	Name      string
	TypeName  string
	InitValue Expression

	// Type is deferred.
	Type *Type
}

// NewField creates a field of t. The caller registers it.
func NewField(t *Type, syntax *ast.Field, name, typeName string) *Field {
	return &Field{
		base:     newBase[*ast.Field](t, syntax),
		Name:     name,
		TypeName: typeName,
	}
}

func (*Field) Kind() Kind { return KindField }

// LocalVariable is a variable declared inside a statement scope.
type LocalVariable struct {
	base
	Name      string
	TypeName  string
	InitValue Expression

	// Type is deferred.
	Type *Type
}

func NewLocalVariable(parent Symbol, syntax *ast.Field, name, typeName string) *LocalVariable {
	return &LocalVariable{
		base:     newBase[*ast.Field](parent, syntax),
		Name:     name,
		TypeName: typeName,
	}
}

func (*LocalVariable) Kind() Kind       { return KindLocalVariable }
func (*LocalVariable) statementSymbol() {}

// StatementBlock owns an ordered list of statements.
type StatementBlock struct {
	base
	Statements []Statement
}

func NewStatementBlock(parent Symbol, syntax *ast.Block) *StatementBlock {
	return &StatementBlock{base: newBase[*ast.Block](parent, syntax)}
}

func (*StatementBlock) Kind() Kind                    { return KindStatementBlock }
func (*StatementBlock) statementSymbol()              {}
func (b *StatementBlock) AppendStatement(s Statement) { b.Statements = append(b.Statements, s) }

// IfStatement is a conditional with a single-statement body.
type IfStatement struct {
	base
	Condition Expression
	Body      Statement
}

func NewIfStatement(parent Symbol, syntax *ast.If) *IfStatement {
	return &IfStatement{base: newBase[*ast.If](parent, syntax)}
}

func (*IfStatement) Kind() Kind                   { return KindIf }
func (*IfStatement) statementSymbol()             {}
func (s *IfStatement) SingleStatement() Statement { return s.Body }

// ReturnStatement exits the enclosing method. Value is nil for a bare return.
type ReturnStatement struct {
	base
	Value Expression
}

func NewReturnStatement(parent Symbol, syntax *ast.Return) *ReturnStatement {
	return &ReturnStatement{base: newBase[*ast.Return](parent, syntax)}
}

func (*ReturnStatement) Kind() Kind       { return KindReturn }
func (*ReturnStatement) statementSymbol() {}

// FieldAssignationStatement assigns NewValue to the name referenced by Target.
type FieldAssignationStatement struct {
	base
	Target   *IdentifierReference
	NewValue Expression
}

func NewFieldAssignationStatement(parent Symbol, syntax *ast.FieldAssignation) *FieldAssignationStatement {
	return &FieldAssignationStatement{base: newBase[*ast.FieldAssignation](parent, syntax)}
}

func (*FieldAssignationStatement) Kind() Kind       { return KindFieldAssignation }
func (*FieldAssignationStatement) statementSymbol() {}

// MethodCallStatement evaluates Call for its side effects.
type MethodCallStatement struct {
	base
	Call Expression
}

func NewMethodCallStatement(parent Symbol, syntax *ast.MethodCallStatement) *MethodCallStatement {
	return &MethodCallStatement{base: newBase[*ast.MethodCallStatement](parent, syntax)}
}

func (*MethodCallStatement) Kind() Kind       { return KindMethodCallStatement }
func (*MethodCallStatement) statementSymbol() {}

// IdentifierReference is a use of a name.
type IdentifierReference struct {
	base
	Name string

	// Target and Type are deferred.
	Target Symbol
	Type   *Type
}

func NewIdentifierReference(parent Symbol, syntax *ast.IdentifierValue, name string) *IdentifierReference {
	return &IdentifierReference{base: newBase[*ast.IdentifierValue](parent, syntax), Name: name}
}

func (*IdentifierReference) Kind() Kind          { return KindIdentifierReference }
func (r *IdentifierReference) ResultType() *Type { return r.Type }
func (*IdentifierReference) expressionSymbol()   {}

// NumberLiteral is a numeric constant.
type NumberLiteral struct {
	base
	Value cty.Value

	// Type is deferred.
	Type *Type
}

func NewNumberLiteral(parent Symbol, syntax *ast.Number, value cty.Value) *NumberLiteral {
	return &NumberLiteral{base: newBase[*ast.Number](parent, syntax), Value: value}
}

func (*NumberLiteral) Kind() Kind          { return KindNumberLiteral }
func (l *NumberLiteral) ResultType() *Type { return l.Type }
func (*NumberLiteral) expressionSymbol()   {}

// Float64 converts the literal to a float64.
func (l *NumberLiteral) Float64() (float64, error) {
	var f float64
	err := gocty.FromCtyValue(l.Value, &f)
	return f, err
}

// FunctionCallExpression is a call of a free function. Binary operators are
// bound as function calls too: Name is the operator and Operator is set.
type FunctionCallExpression struct {
	base
	Name      string
	Operator  bool
	Arguments []Expression

	// Target is deferred.
	Target *Method
}

func NewFunctionCall(parent Symbol, syntax *ast.FuncCall, name string) *FunctionCallExpression {
	return &FunctionCallExpression{base: newBase[*ast.FuncCall](parent, syntax), Name: name}
}

func NewOperatorCall(parent Symbol, syntax *ast.Operator, op string) *FunctionCallExpression {
	return &FunctionCallExpression{base: newBase[*ast.Operator](parent, syntax), Name: op, Operator: true}
}

func (*FunctionCallExpression) Kind() Kind        { return KindFunctionCall }
func (*FunctionCallExpression) expressionSymbol() {}

// ResultType returns the return type of the resolved target.
func (c *FunctionCallExpression) ResultType() *Type {
	if c.Target == nil {
		return nil
	}
	return c.Target.ReturnType
}

// MethodCallExpression calls the method Name on Receiver.
type MethodCallExpression struct {
	base
	Name      string
	Receiver  Expression
	Arguments []Expression

	// Target is deferred.
	Target *Method
}

func NewMethodCall(parent Symbol, syntax *ast.MethodCall, name string) *MethodCallExpression {
	return &MethodCallExpression{base: newBase[*ast.MethodCall](parent, syntax), Name: name}
}

func (*MethodCallExpression) Kind() Kind        { return KindMethodCall }
func (*MethodCallExpression) expressionSymbol() {}

// ResultType returns the return type of the resolved target.
func (c *MethodCallExpression) ResultType() *Type {
	if c.Target == nil {
		return nil
	}
	return c.Target.ReturnType
}
