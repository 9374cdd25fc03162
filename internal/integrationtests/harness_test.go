package integrationtests

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/specialistvlad/kuilang/internal/builder"
	"github.com/specialistvlad/kuilang/internal/builtins"
	"github.com/specialistvlad/kuilang/internal/diag"
	kuihcl "github.com/specialistvlad/kuilang/internal/hcl"
	"github.com/specialistvlad/kuilang/internal/testutil"
	"github.com/stretchr/testify/require"
)

// bindResult holds everything one source file produced.
type bindResult struct {
	Program     *ast.Program
	Result      *builder.Result
	Diagnostics hcl.Diagnostics
}

// bindSource runs the whole pipeline on src: parse, then bind with the
// built-in manifest. Front-end errors fail the test.
func bindSource(t *testing.T, src string) bindResult {
	t.Helper()

	ctx, _ := testutil.Context(t)
	collector := &diag.Collector{}

	program, diags := kuihcl.NewLoader().LoadSource(ctx, "main.kui", []byte(src))
	require.False(t, diags.HasErrors(), diags.Error())
	collector.Extend(diags)

	res, err := builder.New(collector, builtins.Default()).Build(ctx, program)
	require.NoError(t, err)

	return bindResult{Program: program, Result: res, Diagnostics: collector.Diagnostics()}
}
