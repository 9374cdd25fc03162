package nodeid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name         string
		rawID        string
		expectErr    bool
		expectedAddr *Address
	}{
		{
			name:         "empty string is the root",
			rawID:        "",
			expectedAddr: Root(),
		},
		{
			name:  "simple path",
			rawID: "Point.length.unit",
			expectedAddr: &Address{
				Path: []PathSegment{NewPathSegment("Point"), NewPathSegment("length"), NewPathSegment("unit")},
			},
		},
		{
			name:  "positional segments",
			rawID: "main.body.if[0].then.call[12]",
			expectedAddr: &Address{
				Path: []PathSegment{
					NewPathSegment("main"),
					NewPathSegment("body"),
					NewPathSegmentWithIndex("if", 0),
					NewPathSegment("then"),
					NewPathSegmentWithIndex("call", 12),
				},
			},
		},
		{
			name:  "operator method name",
			rawID: "number.<=",
			expectedAddr: &Address{
				Path: []PathSegment{NewPathSegment("number"), NewPathSegment("<=")},
			},
		},
		{
			name:  "structural marker",
			rawID: "$top.var[0]",
			expectedAddr: &Address{
				Path: []PathSegment{NewPathSegment("$top"), NewPathSegmentWithIndex("var", 0)},
			},
		},
		{
			name:      "error - empty path segment",
			rawID:     "a..b",
			expectErr: true,
		},
		{
			name:      "error - non numeric index",
			rawID:     "a.b[x]",
			expectErr: true,
		},
		{
			name:      "error - index without name",
			rawID:     "a.[1]",
			expectErr: true,
		},
		{
			name:      "error - just dot",
			rawID:     ".",
			expectErr: true,
		},
		{
			name:      "error - white space",
			rawID:     "a.b c",
			expectErr: true,
		},
		{
			name:      "error - unterminated index",
			rawID:     "a.b[1",
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			addr, err := Parse(tc.rawID)

			if tc.expectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, addr)
			assert.True(t, tc.expectedAddr.Equal(addr), "parsed %q, got %q", tc.rawID, addr.String())
		})
	}
}

func TestMustParse_PanicsOnInvalidInput(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { MustParse("a..b") })
	assert.NotPanics(t, func() { MustParse("a.b[3]") })
}
