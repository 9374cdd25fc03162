package builtins

import (
	_ "embed"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/kuilang/internal/hclutil"
	"github.com/specialistvlad/kuilang/internal/symbols"
)

// ManifestFilename is the name diagnostics use for the embedded manifest.
const ManifestFilename = "builtins.hcl"

//go:embed builtins.hcl
var manifestSrc []byte

// Registry provides the intrinsic types. Types never fails and returns new
// symbols on every call.
type Registry interface {
	Types() []*symbols.Type
}

type manifest struct {
	Types []typeSpec `hcl:"type,block"`
}

type typeSpec struct {
	Name    string       `hcl:"name,label"`
	Methods []methodSpec `hcl:"method,block"`
}

type methodSpec struct {
	Name    string         `hcl:"name,label"`
	Returns hcl.Expression `hcl:"returns,optional"`
	Params  []paramSpec    `hcl:"param,block"`
}

type paramSpec struct {
	Name string         `hcl:"name,label"`
	Type hcl.Expression `hcl:"type"`
}

// manifestRegistry builds symbols from a decoded manifest.
type manifestRegistry struct {
	m *manifest
}

// Default returns the registry backed by the embedded manifest. A malformed
// manifest is a build defect and panics.
func Default() Registry {
	r, err := Parse(manifestSrc, ManifestFilename)
	if err != nil {
		panic(fmt.Sprintf("builtins: embedded manifest: %v", err))
	}
	return r
}

// Parse decodes a manifest and validates its type references.
func Parse(src []byte, filename string) (Registry, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}

	var m manifest
	if diags := gohcl.DecodeBody(file.Body, nil, &m); diags.HasErrors() {
		return nil, diags
	}

	r := &manifestRegistry{m: &m}
	// Decode once eagerly so type keyword errors surface here.
	if _, diags := r.build(); diags.HasErrors() {
		return nil, diags
	}
	return r, nil
}

func (r *manifestRegistry) Types() []*symbols.Type {
	types, _ := r.build()
	return types
}

func (r *manifestRegistry) build() ([]*symbols.Type, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	out := make([]*symbols.Type, 0, len(r.m.Types))

	for _, ts := range r.m.Types {
		t := symbols.NewType(nil, nil, ts.Name)
		t.Builtin = true

		for _, ms := range ts.Methods {
			m := symbols.NewMethod(t, nil, ms.Name)
			if ms.Returns != nil {
				name, d := typeName(ms.Returns)
				diags = append(diags, d...)
				m.ReturnTypeName = name
			}
			for _, ps := range ms.Params {
				name, d := hclutil.TypeKeyword(ps.Type)
				diags = append(diags, d...)
				m.Parameters.Add(ps.Name, symbols.NewParameter(m, nil, ps.Name, name))
			}
			t.Methods.Add(ms.Name, m)
		}
		out = append(out, t)
	}
	return out, diags
}

// typeName reads an optional type attribute. gohcl yields a non-nil
// expression for absent optional attributes, which evaluates to null.
func typeName(expr hcl.Expression) (string, hcl.Diagnostics) {
	if v, diags := expr.Value(nil); !diags.HasErrors() && v.IsNull() {
		return "", nil
	}
	return hclutil.TypeKeyword(expr)
}

// Func adapts a constructor function to the Registry interface. The
// function must return new symbols on every call.
type Func func() []*symbols.Type

func (f Func) Types() []*symbols.Type { return f() }

// None is a registry without any intrinsic type.
var None Registry = Func(func() []*symbols.Type { return nil })
