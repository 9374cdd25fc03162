package visit

import (
	"fmt"

	"github.com/specialistvlad/kuilang/internal/ast"
)

// Visitor has one visit operation per syntax tree variant. R is the opaque
// per-kind result type chosen by the implementation.
type Visitor[R any] interface {
	VisitProgram(n *ast.Program) R

	VisitType(n *ast.Type) R
	VisitMethod(n *ast.Method) R
	VisitParameter(n *ast.Parameter) R
	VisitField(n *ast.Field) R

	VisitBlock(n *ast.Block) R
	VisitIf(n *ast.If) R
	VisitReturn(n *ast.Return) R
	VisitFieldAssignation(n *ast.FieldAssignation) R
	VisitMethodCallStatement(n *ast.MethodCallStatement) R

	VisitIdentifierValue(n *ast.IdentifierValue) R
	VisitNumber(n *ast.Number) R
	VisitFuncCall(n *ast.FuncCall) R
	VisitOperator(n *ast.Operator) R
	VisitMethodCall(n *ast.MethodCall) R
}

// UnknownNodeError reports a node whose variant has no visit operation.
// It is raised as a panic: it means the front end and the engine disagree
// about the grammar.
type UnknownNodeError struct {
	Node ast.Node
}

// Error implements the error interface.
func (e *UnknownNodeError) Error() string {
	if e.Node == nil {
		return "visit: nil syntax node"
	}
	return fmt.Sprintf("visit: no visit operation registered for %T at %s", e.Node, e.Node.SrcRange())
}

// Dispatch calls the visit operation registered for the dynamic type of n.
func Dispatch[R any](v Visitor[R], n ast.Node) R {
	switch n := n.(type) {
	case *ast.Program:
		return v.VisitProgram(n)
	case *ast.Type:
		return v.VisitType(n)
	case *ast.Method:
		return v.VisitMethod(n)
	case *ast.Parameter:
		return v.VisitParameter(n)
	case *ast.Field:
		return v.VisitField(n)
	case *ast.Block:
		return v.VisitBlock(n)
	case *ast.If:
		return v.VisitIf(n)
	case *ast.Return:
		return v.VisitReturn(n)
	case *ast.FieldAssignation:
		return v.VisitFieldAssignation(n)
	case *ast.MethodCallStatement:
		return v.VisitMethodCallStatement(n)
	case *ast.IdentifierValue:
		return v.VisitIdentifierValue(n)
	case *ast.Number:
		return v.VisitNumber(n)
	case *ast.FuncCall:
		return v.VisitFuncCall(n)
	case *ast.Operator:
		return v.VisitOperator(n)
	case *ast.MethodCall:
		return v.VisitMethodCall(n)
	}
	panic(&UnknownNodeError{Node: n})
}
