package hclutil

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/kuilang/internal/diag"
)

// FindUniqueBlock searches a slice of blocks for all blocks of a given name.
// It returns a diagnostic error for every block after the first one. If no
// block is found, it returns nil.
func FindUniqueBlock(blocks hcl.Blocks, name string) (*hcl.Block, hcl.Diagnostics) {
	var found *hcl.Block
	var diags hcl.Diagnostics

	for _, block := range blocks {
		if block.Type != name {
			continue
		}
		if found != nil {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  fmt.Sprintf("Duplicate %q block", name),
				Detail:   fmt.Sprintf("Only one %q block is allowed here; the first one is at %s.", name, found.DefRange),
				Subject:  block.DefRange.Ptr(),
				Extra:    diag.Info{Code: diag.CodeStructure, Related: found.DefRange.Ptr()},
			})
			continue
		}
		found = block
	}

	return found, diags
}
