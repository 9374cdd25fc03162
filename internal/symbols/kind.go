package symbols

// Kind identifies the concrete type of a Symbol.
type Kind int

const (
	KindProgramRoot Kind = iota
	KindType
	KindMethod
	KindParameter
	KindField
	KindLocalVariable
	KindStatementBlock
	KindIf
	KindReturn
	KindFieldAssignation
	KindMethodCallStatement
	KindIdentifierReference
	KindNumberLiteral
	KindFunctionCall
	KindMethodCall
)

var kindNames = [...]string{
	KindProgramRoot:         "ProgramRoot",
	KindType:                "Type",
	KindMethod:              "Method",
	KindParameter:           "Parameter",
	KindField:               "Field",
	KindLocalVariable:       "LocalVariable",
	KindStatementBlock:      "StatementBlock",
	KindIf:                  "IfStatement",
	KindReturn:              "ReturnStatement",
	KindFieldAssignation:    "FieldAssignationStatement",
	KindMethodCallStatement: "MethodCallStatement",
	KindIdentifierReference: "IdentifierReference",
	KindNumberLiteral:       "NumberLiteral",
	KindFunctionCall:        "FunctionCallExpression",
	KindMethodCall:          "MethodCallExpression",
}

// keywords name statement kinds in positional address segments. They match
// the statement keywords of the source syntax.
var keywords = [...]string{
	KindProgramRoot:         "root",
	KindType:                "type",
	KindMethod:              "method",
	KindParameter:           "param",
	KindField:               "field",
	KindLocalVariable:       "var",
	KindStatementBlock:      "block",
	KindIf:                  "if",
	KindReturn:              "return",
	KindFieldAssignation:    "assign",
	KindMethodCallStatement: "call",
	KindIdentifierReference: "ident",
	KindNumberLiteral:       "number",
	KindFunctionCall:        "func",
	KindMethodCall:          "member",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(?)"
	}
	return kindNames[k]
}

// Keyword returns the short lower-case name of k used in addresses.
func (k Kind) Keyword() string {
	if k < 0 || int(k) >= len(keywords) {
		return "?"
	}
	return keywords[k]
}
