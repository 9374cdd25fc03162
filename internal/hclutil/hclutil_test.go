package hclutil

import (
	"testing"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/kuilang/internal/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseExpr(t *testing.T, src string) hcl.Expression {
	t.Helper()
	expr, diags := hclsyntax.ParseExpression([]byte(src), "test.kui", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	return expr
}

func parseBody(t *testing.T, src string) *hclsyntax.Body {
	t.Helper()
	file, diags := hclsyntax.ParseConfig([]byte(src), "test.kui", hcl.InitialPos)
	require.False(t, diags.HasErrors(), diags.Error())
	return file.Body.(*hclsyntax.Body)
}

func TestFindUniqueBlock(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		src       string
		wantFound bool
		wantDiags int
	}{
		{name: "absent", src: `param "a" {}`, wantFound: false},
		{name: "single", src: "body {}\nparam \"a\" {}", wantFound: true},
		{name: "duplicate", src: "body {}\nbody {}\nbody {}", wantFound: true, wantDiags: 2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			body := parseBody(t, tc.src)
			content, diags := body.Content(&hcl.BodySchema{Blocks: []hcl.BlockHeaderSchema{
				{Type: "body"},
				{Type: "param", LabelNames: []string{"name"}},
			}})
			require.False(t, diags.HasErrors())

			// --- Act ---
			found, diags := FindUniqueBlock(content.Blocks, "body")

			// --- Assert ---
			assert.Equal(t, tc.wantFound, found != nil)
			assert.Len(t, diags, tc.wantDiags)
			for _, d := range diags {
				assert.Equal(t, diag.CodeStructure, diag.CodeOf(d))
				assert.Equal(t, 1, found.DefRange.Start.Line, "first block wins")
			}
		})
	}
}

func TestTypeKeyword(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		src     string
		want    string
		wantErr bool
	}{
		{src: "number", want: "number"},
		{src: "Point", want: "Point"},
		{src: "a.b", wantErr: true},
		{src: "1 + 2", wantErr: true},
		{src: `"number"`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()

			got, diags := TypeKeyword(parseExpr(t, tc.src))

			if tc.wantErr {
				require.True(t, diags.HasErrors())
				assert.Equal(t, diag.CodeSyntax, diag.CodeOf(diags[0]))
				return
			}
			require.False(t, diags.HasErrors())
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBareName(t *testing.T) {
	t.Parallel()

	name, _, ok := BareName(parseExpr(t, "unit"))
	assert.True(t, ok)
	assert.Equal(t, "unit", name)

	_, rendered, ok := BareName(parseExpr(t, "point.x"))
	assert.False(t, ok)
	assert.Equal(t, "point.x", rendered)

	_, rendered, ok = BareName(parseExpr(t, "f(1)"))
	assert.False(t, ok)
	assert.Empty(t, rendered)
}
