// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/specialistvlad/kuilang/internal/diag"
	"github.com/specialistvlad/kuilang/internal/hclutil"
	"github.com/zclconf/go-cty/cty"
)

// operators maps the HCL binary operations KuiLang accepts to the operator
// method names of the built-in number type.
var operators = map[*hclsyntax.Operation]string{
	hclsyntax.OpAdd:                "+",
	hclsyntax.OpSubtract:           "-",
	hclsyntax.OpMultiply:           "*",
	hclsyntax.OpDivide:             "/",
	hclsyntax.OpModulo:             "%",
	hclsyntax.OpEqual:              "==",
	hclsyntax.OpNotEqual:           "!=",
	hclsyntax.OpLessThan:           "<",
	hclsyntax.OpLessThanOrEqual:    "<=",
	hclsyntax.OpGreaterThan:        ">",
	hclsyntax.OpGreaterThanOrEqual: ">=",
}

// methodCallSeparator splits `recv::name` in a namespaced function call.
const methodCallSeparator = "::"

// expr translates an HCL expression. It returns nil after recording a
// diagnostic when the expression has no KuiLang equivalent.
func (p *fileParser) expr(e hcl.Expression) ast.Expression {
	switch e := e.(type) {
	case *hclsyntax.ParenthesesExpr:
		return p.expr(e.Expression)

	case *hclsyntax.ScopeTraversalExpr:
		if len(e.Traversal) != 1 {
			p.errorf(diag.CodeUnsupported, e.Range(), "Unsupported expression",
				"Attribute and index access (%s) is not supported. Call a method with recv::name().", hclutil.TraversalKey(e.Traversal))
			return nil
		}
		return &ast.IdentifierValue{Name: e.Traversal.RootName(), Range: e.Range()}

	case *hclsyntax.LiteralValueExpr:
		if e.Val.Type() != cty.Number || e.Val.IsNull() {
			p.errorf(diag.CodeUnsupported, e.Range(), "Unsupported literal",
				"Only number literals are supported, got a %s.", e.Val.Type().FriendlyName())
			return nil
		}
		return &ast.Number{Value: e.Val, Range: e.Range()}

	case *hclsyntax.UnaryOpExpr:
		// A negated number literal is a literal.
		if lit, ok := e.Val.(*hclsyntax.LiteralValueExpr); ok && e.Op == hclsyntax.OpNegate && lit.Val.Type() == cty.Number {
			return &ast.Number{Value: lit.Val.Negate(), Range: e.Range()}
		}
		p.errorf(diag.CodeUnsupported, e.Range(), "Unsupported expression", "Unary operators are only supported on number literals.")
		return nil

	case *hclsyntax.BinaryOpExpr:
		op, ok := operators[e.Op]
		if !ok {
			p.errorf(diag.CodeUnsupported, e.Range(), "Unsupported operator", "Logical operators are not supported.")
			return nil
		}
		left, right := p.expr(e.LHS), p.expr(e.RHS)
		if left == nil || right == nil {
			return nil
		}
		return &ast.Operator{Op: op, Left: left, Right: right, Range: e.Range()}

	case *hclsyntax.FunctionCallExpr:
		return p.call(e)
	}

	p.errorf(diag.CodeUnsupported, e.Range(), "Unsupported expression", "%s expressions are not supported.", exprKind(e))
	return nil
}

func (p *fileParser) call(e *hclsyntax.FunctionCallExpr) ast.Expression {
	if e.ExpandFinal {
		p.errorf(diag.CodeUnsupported, e.Range(), "Unsupported expression", "Argument expansion with ... is not supported.")
		return nil
	}

	args := make([]ast.Expression, 0, len(e.Args))
	failed := false
	for _, a := range e.Args {
		arg := p.expr(a)
		if arg == nil {
			failed = true
			continue
		}
		args = append(args, arg)
	}
	if failed {
		return nil
	}
	if len(args) == 0 {
		args = nil
	}

	recv, name, isMethod := strings.Cut(e.Name, methodCallSeparator)
	if !isMethod {
		return &ast.FuncCall{Name: e.Name, Args: args, Range: e.Range()}
	}
	if strings.Contains(name, methodCallSeparator) {
		p.errorf(diag.CodeUnsupported, e.NameRange, "Unsupported method call",
			"%q has more than one receiver. Method calls are written recv::name().", e.Name)
		return nil
	}

	recvRange := e.NameRange
	recvRange.End = recvRange.Start
	recvRange.End.Column += len(recv)
	recvRange.End.Byte += len(recv)
	return &ast.MethodCall{
		Receiver: &ast.IdentifierValue{Name: recv, Range: recvRange},
		Name:     name,
		Args:     args,
		Range:    e.Range(),
	}
}

func exprKind(e hcl.Expression) string {
	switch e.(type) {
	case *hclsyntax.TemplateExpr, *hclsyntax.TemplateWrapExpr, *hclsyntax.TemplateJoinExpr:
		return "String template"
	case *hclsyntax.ConditionalExpr:
		return "Conditional"
	case *hclsyntax.TupleConsExpr:
		return "Tuple"
	case *hclsyntax.ObjectConsExpr:
		return "Object"
	case *hclsyntax.ForExpr:
		return "For"
	case *hclsyntax.SplatExpr:
		return "Splat"
	case *hclsyntax.IndexExpr, *hclsyntax.RelativeTraversalExpr:
		return "Index"
	}
	return "These"
}
