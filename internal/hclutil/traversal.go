package hclutil

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/kuilang/internal/diag"
)

// TraversalKey generates a stable, canonical string representation for an
// hcl.Traversal, e.g. `point.x[0]`.
func TraversalKey(t hcl.Traversal) string {
	return string(hclwrite.TokensForTraversal(t).Bytes())
}

// TypeKeyword reads a type reference written as a bare identifier, such as
// `number` or `Point`. Anything else, including a dotted path, is an error.
func TypeKeyword(expr hcl.Expression) (string, hcl.Diagnostics) {
	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() || len(traversal) != 1 || traversal.RootName() == "" {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid type specification",
			Detail:   "A type must be a single type name like 'number' or 'Point', not an expression.",
			Subject:  expr.Range().Ptr(),
			Extra:    diag.Info{Code: diag.CodeSyntax},
		}}
	}
	return traversal.RootName(), nil
}

// BareName reads an expression that must be a single identifier and
// returns the identifier. ok is false otherwise; the rendered expression is
// returned for messages when it is a longer traversal.
func BareName(expr hcl.Expression) (name string, rendered string, ok bool) {
	traversal, diags := hcl.AbsTraversalForExpr(expr)
	if diags.HasErrors() {
		return "", "", false
	}
	if len(traversal) != 1 {
		return "", TraversalKey(traversal), false
	}
	return traversal.RootName(), traversal.RootName(), true
}
