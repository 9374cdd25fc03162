// Package ast defines the KuiLang syntax tree consumed by the binding pass.
//
// The tree is format-agnostic: the concrete front end (see internal/hcl)
// translates source files into these types and the builder never looks at the
// source format again. Every variant set is closed. Declarations, statements
// and expressions are sealed interfaces, so only this package can add a
// variant, and internal/visit must learn about it at the same time.
package ast
