package diag

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/kuilang/internal/ast"
)

// Code identifies a class of diagnostic.
type Code string

const (
	CodeFieldSingleStatement Code = "field-single-statement"
	CodeDuplicateDeclaration Code = "duplicate-declaration"
	CodeReservedName         Code = "reserved-name"
	CodeSyntax               Code = "syntax"
	CodeUnsupported          Code = "unsupported"
	CodeStructure            Code = "structure"
)

// Info is stored in hcl.Diagnostic.Extra.
type Info struct {
	Code Code
	// Node is the offending syntax node, when there is one.
	Node ast.Node
	// Related points at an earlier declaration the diagnostic refers to.
	Related *hcl.Range
}

// CodeOf returns the code of d, or "" when d carries no Info.
func CodeOf(d *hcl.Diagnostic) Code {
	info, ok := hcl.DiagnosticExtra[Info](d)
	if !ok {
		return ""
	}
	return info.Code
}

// NodeOf returns the syntax node attached to d.
func NodeOf(d *hcl.Diagnostic) ast.Node {
	info, ok := hcl.DiagnosticExtra[Info](d)
	if !ok {
		return nil
	}
	return info.Node
}

// New builds an error diagnostic with the given code.
func New(code Code, summary, detail string, subject hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  subject.Ptr(),
		Extra:    Info{Code: code},
	}
}

// FieldSingleStatement reports a declaration that is the only statement of a
// single-statement body, as in `if (c) var x = 1`. The variable would be
// unusable.
func FieldSingleStatement(f *ast.Field) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagWarning,
		Summary:  "Declaration as single statement",
		Detail:   fmt.Sprintf("%q is declared as the only statement of its body and cannot be used anywhere. Wrap it in a block.", f.Name),
		Subject:  f.DeclRange.Ptr(),
		Context:  f.Range.Ptr(),
		Extra:    Info{Code: CodeFieldSingleStatement, Node: f},
	}
}

// DuplicateDeclaration reports a second declaration of name in the same
// scope. first is nil when the earlier declaration has no source, e.g. a
// built-in. It is kept in Info.Related rather than in Context because the
// two ranges need not overlap.
func DuplicateDeclaration(kind, name string, dup ast.Node, dupRange hcl.Range, first *hcl.Range) *hcl.Diagnostic {
	detail := fmt.Sprintf("A %s named %q is already built in.", kind, name)
	if first != nil {
		detail = fmt.Sprintf("A %s named %q was already declared at %s.", kind, name, first)
	}
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Duplicate " + kind + " declaration",
		Detail:   detail,
		Subject:  dupRange.Ptr(),
		Extra:    Info{Code: CodeDuplicateDeclaration, Node: dup, Related: first},
	}
}

// ConflictingDeclaration reports a declaration whose name is already taken by
// a declaration of another kind in the same namespace, e.g. a method named
// after a field of its type. first is nil when the earlier declaration is a
// built-in.
func ConflictingDeclaration(kind, name, firstKind string, dup ast.Node, dupRange hcl.Range, first *hcl.Range) *hcl.Diagnostic {
	detail := fmt.Sprintf("%q is already a built-in %s.", name, firstKind)
	if first != nil {
		detail = fmt.Sprintf("%q is already declared as a %s at %s.", name, firstKind, first)
	}
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Conflicting " + kind + " name",
		Detail:   detail,
		Subject:  dupRange.Ptr(),
		Extra:    Info{Code: CodeDuplicateDeclaration, Node: dup, Related: first},
	}
}

// ReservedName reports a declaration named after a structural address
// segment, e.g. a parameter called body.
func ReservedName(kind, name string, dup ast.Node, dupRange hcl.Range) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Reserved " + kind + " name",
		Detail:   fmt.Sprintf("%q is reserved and cannot name a %s.", name, kind),
		Subject:  dupRange.Ptr(),
		Extra:    Info{Code: CodeReservedName, Node: dup},
	}
}
