package hcl

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/kuilang/internal/ast"
)

// render prints a syntax tree as a compact s-expression so tests can compare
// whole trees without looking at ranges.
func render(n ast.Node) string {
	var sb strings.Builder
	write(&sb, n)
	return sb.String()
}

func write(sb *strings.Builder, n ast.Node) {
	list := func(head string, parts ...string) {
		sb.WriteString("(" + head)
		for _, p := range parts {
			sb.WriteString(" " + p)
		}
		sb.WriteString(")")
	}
	opt := func(s string) string {
		if s == "" {
			return "_"
		}
		return s
	}
	all := func(head string, prefix []string, children []ast.Node) {
		parts := append([]string{}, prefix...)
		for _, c := range children {
			parts = append(parts, render(c))
		}
		list(head, parts...)
	}

	switch n := n.(type) {
	case nil:
		sb.WriteString("nil")
	case *ast.Program:
		sb.WriteString(render(n.Body))
	case *ast.Type:
		all("type", []string{n.Name}, ast.Children(n))
	case *ast.Method:
		all("method", []string{n.Name, opt(n.ReturnType)}, ast.Children(n))
	case *ast.Parameter:
		list("param", n.Name, opt(n.TypeName))
	case *ast.Field:
		value := "_"
		if n.InitValue != nil {
			value = render(n.InitValue)
		}
		list("field", n.Name, opt(n.TypeName), value)
	case *ast.Block:
		all("block", nil, ast.Children(n))
	case *ast.If:
		all("if", nil, ast.Children(n))
	case *ast.Return:
		all("return", nil, ast.Children(n))
	case *ast.FieldAssignation:
		all("assign", nil, ast.Children(n))
	case *ast.MethodCallStatement:
		all("call", nil, ast.Children(n))
	case *ast.IdentifierValue:
		sb.WriteString(n.Name)
	case *ast.Number:
		sb.WriteString(n.Value.AsBigFloat().Text('g', -1))
	case *ast.FuncCall:
		all(n.Name, nil, ast.Children(n))
	case *ast.Operator:
		all(n.Op, nil, ast.Children(n))
	case *ast.MethodCall:
		all("."+n.Name, nil, ast.Children(n))
	default:
		fmt.Fprintf(sb, "?%T", n)
	}
}
