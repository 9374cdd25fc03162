// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/specialistvlad/kuilang/internal/diag"
	"github.com/specialistvlad/kuilang/internal/hclutil"
)

// fileParser translates one parsed file. Diagnostics accumulate in diags and
// translation continues past errors so a file reports all of them at once.
type fileParser struct {
	diags hcl.Diagnostics
}

func (p *fileParser) add(diags hcl.Diagnostics) {
	p.diags = append(p.diags, diags...)
}

func (p *fileParser) errorf(code diag.Code, subject hcl.Range, summary, format string, args ...any) {
	p.diags = append(p.diags, diag.New(code, summary, fmt.Sprintf(format, args...), subject))
}

var topLevelSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "type", LabelNames: []string{"name"}},
		{Type: "method", LabelNames: []string{"name"}},
		{Type: "var", LabelNames: []string{"name"}},
		{Type: "field", LabelNames: []string{"name"}},
	},
}

var typeSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "field", LabelNames: []string{"name"}},
		{Type: "var", LabelNames: []string{"name"}},
		{Type: "method", LabelNames: []string{"name"}},
	},
}

var methodSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "returns"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "param", LabelNames: []string{"name"}},
		{Type: "body"},
	},
}

var fieldSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type"},
		{Name: "value"},
	},
}

// paramBlock is decoded with gohcl.
type paramBlock struct {
	Type hcl.Expression `hcl:"type"`
}

// program translates the top level of a file. The top level is a block of
// its own in the syntax tree.
func (p *fileParser) program(filename string, body *hclsyntax.Body) *ast.Program {
	content, diags := body.Content(topLevelSchema)
	p.add(diags)

	top := &ast.Block{Range: body.SrcRange}
	for _, blk := range content.Blocks {
		var st ast.Statement
		switch blk.Type {
		case "type":
			st = p.typeDecl(blk)
		case "method":
			st = p.method(blk)
		case "var", "field":
			st = p.field(blk)
		}
		if st != nil {
			top.Statements = append(top.Statements, st)
		}
	}
	return &ast.Program{Filename: filename, Body: top, Range: body.SrcRange}
}

func (p *fileParser) typeDecl(blk *hcl.Block) ast.Statement {
	content, diags := blk.Body.Content(typeSchema)
	p.add(diags)

	t := &ast.Type{Name: p.name(blk), DeclRange: blk.DefRange, Range: blockRange(blk)}
	for _, member := range content.Blocks {
		var st ast.Statement
		switch member.Type {
		case "field", "var":
			st = p.field(member)
		case "method":
			st = p.method(member)
		}
		if st != nil {
			t.Members = append(t.Members, st)
		}
	}
	return t
}

func (p *fileParser) method(blk *hcl.Block) ast.Statement {
	content, diags := blk.Body.Content(methodSchema)
	p.add(diags)

	m := &ast.Method{Name: p.name(blk), DeclRange: blk.DefRange, Range: blockRange(blk)}
	if attr, ok := content.Attributes["returns"]; ok {
		name, diags := hclutil.TypeKeyword(attr.Expr)
		p.add(diags)
		m.ReturnType = name
	}

	for _, pb := range content.Blocks.OfType("param") {
		var decoded paramBlock
		diags := gohcl.DecodeBody(pb.Body, nil, &decoded)
		p.add(diags)
		if diags.HasErrors() {
			continue
		}
		if missing(decoded.Type) {
			p.errorf(diag.CodeStructure, pb.DefRange, "Missing parameter type", "Parameter %q needs a type, e.g. type = number.", pb.Labels[0])
			continue
		}
		typeName, diags := hclutil.TypeKeyword(decoded.Type)
		p.add(diags)
		m.Parameters = append(m.Parameters, &ast.Parameter{
			Name:      p.name(pb),
			TypeName:  typeName,
			DeclRange: pb.DefRange,
			Range:     blockRange(pb),
		})
	}

	bodyBlk, diags := hclutil.FindUniqueBlock(content.Blocks, "body")
	p.add(diags)
	if bodyBlk != nil {
		m.Body = p.block(bodyBlk)
	}
	return m
}

// field translates the declaration construct shared by fields and local
// variables. The builder decides which one it is.
func (p *fileParser) field(blk *hcl.Block) ast.Statement {
	content, diags := blk.Body.Content(fieldSchema)
	p.add(diags)

	f := &ast.Field{Name: p.name(blk), DeclRange: blk.DefRange, Range: blockRange(blk)}
	if attr, ok := content.Attributes["type"]; ok {
		name, diags := hclutil.TypeKeyword(attr.Expr)
		p.add(diags)
		f.TypeName = name
	}
	if attr, ok := content.Attributes["value"]; ok {
		f.InitValue = p.expr(attr.Expr)
	}
	return f
}

// name returns the name label of a declaration block. Names end up as
// symbol address segments and must be identifiers.
func (p *fileParser) name(blk *hcl.Block) string {
	name := blk.Labels[0]
	if !hclsyntax.ValidIdentifier(name) {
		p.errorf(diag.CodeSyntax, blk.LabelRanges[0], "Invalid declaration name", "%q is not a valid name. A name starts with a letter and may contain letters, digits, underscores and dashes.", name)
	}
	return name
}

// missing reports whether a gohcl-decoded expression stands for an absent
// attribute. gohcl fills those with a static null.
func missing(e hcl.Expression) bool {
	v, diags := e.Value(nil)
	return !diags.HasErrors() && v.IsNull()
}

// blockRange covers a whole block, from its type keyword to its closing
// brace.
func blockRange(blk *hcl.Block) hcl.Range {
	if body, ok := blk.Body.(*hclsyntax.Body); ok {
		return hcl.RangeBetween(blk.DefRange, body.SrcRange)
	}
	return blk.DefRange
}
