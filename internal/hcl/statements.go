// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file implements a table-driven parser for statement sequences: the
// `body` of a method, a nested `block`, and the single statement of an `if`.
// Each statement keyword maps to one entry of statementParsers; adding a
// statement form means adding a schema block type and a table entry.

package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/specialistvlad/kuilang/internal/diag"
	"github.com/specialistvlad/kuilang/internal/hclutil"
)

// statementParser translates one statement block. A nil statement means the
// block was rejected and a diagnostic was recorded.
type statementParser func(p *fileParser, blk *hcl.Block) ast.Statement

// statementParsers is the table that drives statement translation. It is
// filled in init because the block parser refers back to it.
var statementParsers map[string]statementParser

func init() {
	statementParsers = map[string]statementParser{
		"var":    (*fileParser).field,
		"field":  (*fileParser).field,
		"if":     (*fileParser).ifStmt,
		"return": (*fileParser).returnStmt,
		"assign": (*fileParser).assignStmt,
		"call":   (*fileParser).callStmt,
		"block":  func(p *fileParser, blk *hcl.Block) ast.Statement { return p.block(blk) },
	}
}

// statementBlocks also accepts type and method so that a declaration inside
// a statement sequence gets a precise error instead of a schema error.
func statementBlocks() []hcl.BlockHeaderSchema {
	return []hcl.BlockHeaderSchema{
		{Type: "var", LabelNames: []string{"name"}},
		{Type: "field", LabelNames: []string{"name"}},
		{Type: "if"},
		{Type: "return"},
		{Type: "assign"},
		{Type: "call"},
		{Type: "block"},
		{Type: "type", LabelNames: []string{"name"}},
		{Type: "method", LabelNames: []string{"name"}},
	}
}

var blockSchema = &hcl.BodySchema{Blocks: statementBlocks()}

var ifSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "condition", Required: true}},
	Blocks:     statementBlocks(),
}

var returnSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "value"}},
}

var assignSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "target", Required: true},
		{Name: "value", Required: true},
	},
}

var callSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: "expr", Required: true}},
}

// statements translates a sequence of statement blocks in source order.
func (p *fileParser) statements(blocks hcl.Blocks) []ast.Statement {
	var out []ast.Statement
	for _, blk := range blocks {
		parse, ok := statementParsers[blk.Type]
		if !ok {
			p.misplacedDeclaration(blk)
			continue
		}
		if st := parse(p, blk); st != nil {
			out = append(out, st)
		}
	}
	return out
}

func (p *fileParser) misplacedDeclaration(blk *hcl.Block) {
	switch blk.Type {
	case "method":
		p.errorf(diag.CodeStructure, blk.DefRange, "Misplaced declaration", "A method can only be declared at the top level of a file or inside a type.")
	case "type":
		p.errorf(diag.CodeStructure, blk.DefRange, "Misplaced declaration", "A type can only be declared at the top level of a file.")
	default:
		p.errorf(diag.CodeStructure, blk.DefRange, "Unsupported statement", "%q is not a statement.", blk.Type)
	}
}

func (p *fileParser) block(blk *hcl.Block) *ast.Block {
	content, diags := blk.Body.Content(blockSchema)
	p.add(diags)
	return &ast.Block{Statements: p.statements(content.Blocks), Range: blockRange(blk)}
}

func (p *fileParser) ifStmt(blk *hcl.Block) ast.Statement {
	content, diags := blk.Body.Content(ifSchema)
	p.add(diags)

	body := p.statements(content.Blocks)
	if len(body) != 1 {
		if len(content.Blocks) != 1 {
			p.errorf(diag.CodeStructure, blk.DefRange, "Invalid if statement",
				"An if needs exactly one body statement, found %d. Use a block to group several statements.", len(content.Blocks))
		}
		return nil
	}
	attr, ok := content.Attributes["condition"]
	if !ok {
		return nil
	}
	cond := p.expr(attr.Expr)
	if cond == nil {
		return nil
	}
	return &ast.If{Condition: cond, Statement: body[0], Range: blockRange(blk)}
}

func (p *fileParser) returnStmt(blk *hcl.Block) ast.Statement {
	content, diags := blk.Body.Content(returnSchema)
	p.add(diags)

	r := &ast.Return{Range: blockRange(blk)}
	if attr, ok := content.Attributes["value"]; ok {
		r.Value = p.expr(attr.Expr)
		if r.Value == nil {
			return nil
		}
	}
	return r
}

func (p *fileParser) assignStmt(blk *hcl.Block) ast.Statement {
	content, diags := blk.Body.Content(assignSchema)
	p.add(diags)
	if diags.HasErrors() {
		return nil
	}

	targetExpr := content.Attributes["target"].Expr
	name, rendered, ok := hclutil.BareName(targetExpr)
	if !ok {
		if rendered == "" {
			p.errorf(diag.CodeStructure, targetExpr.Range(), "Invalid assignment target", "The target of an assignment must be a variable or field name.")
		} else {
			p.errorf(diag.CodeStructure, targetExpr.Range(), "Invalid assignment target", "The target of an assignment must be a bare name, got %s.", rendered)
		}
		return nil
	}

	value := p.expr(content.Attributes["value"].Expr)
	if value == nil {
		return nil
	}
	return &ast.FieldAssignation{
		Target:   &ast.IdentifierValue{Name: name, Range: targetExpr.Range()},
		NewValue: value,
		Range:    blockRange(blk),
	}
}

func (p *fileParser) callStmt(blk *hcl.Block) ast.Statement {
	content, diags := blk.Body.Content(callSchema)
	p.add(diags)
	if diags.HasErrors() {
		return nil
	}

	attr := content.Attributes["expr"]
	call := p.expr(attr.Expr)
	switch call.(type) {
	case *ast.FuncCall, *ast.MethodCall:
		return &ast.MethodCallStatement{Call: call, Range: blockRange(blk)}
	case nil:
		return nil
	}
	p.errorf(diag.CodeStructure, attr.Expr.Range(), "Invalid call statement", "The expr of a call statement must be a function or method call.")
	return nil
}
