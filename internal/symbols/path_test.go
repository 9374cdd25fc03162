package symbols

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/kuilang/internal/nodeid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// samplePoint builds, by hand, the graph of
//
//	type Point { field x: number; method length(unit: number) { if (unit > 0) var temp = unit; return 2 } }
func samplePoint(t *testing.T) (*ProgramRoot, map[string]Symbol) {
	t.Helper()

	syms := map[string]Symbol{}
	root := NewProgramRoot(nil)
	number := NewType(nil, nil, "number")
	number.Builtin = true
	_, ok := root.Adopt(number)
	require.True(t, ok)

	top := NewStatementBlock(root, nil)
	root.Body = top

	point := NewType(root, nil, "Point")
	root.Types.Add(point.Name, point)
	syms["Point"] = point

	x := NewField(point, nil, "x", "number")
	point.Fields.Add(x.Name, x)
	syms["x"] = x

	length := NewMethod(point, nil, "length")
	length.ReturnTypeName = "number"
	point.Methods.Add(length.Name, length)
	syms["length"] = length

	unit := NewParameter(length, nil, "unit", "number")
	length.Parameters.Add(unit.Name, unit)
	syms["unit"] = unit

	body := NewStatementBlock(length, nil)
	length.Body = body
	syms["body"] = body

	ifs := NewIfStatement(body, nil)
	gt := NewOperatorCall(ifs, nil, ">")
	gt.Arguments = []Expression{NewNumberLiteral(gt, nil, cty.NumberIntVal(0))}
	ifs.Condition = gt
	temp := NewLocalVariable(ifs, nil, "temp", "")
	temp.InitValue = NewIdentifierReference(temp, nil, "unit")
	ifs.Body = temp
	body.AppendStatement(ifs)
	syms["if"] = ifs
	syms["temp"] = temp

	ret := NewReturnStatement(body, nil)
	ret.Value = NewNumberLiteral(ret, nil, cty.NumberIntVal(2))
	body.AppendStatement(ret)
	syms["return"] = ret

	return root, syms
}

func TestPathOf(t *testing.T) {
	t.Parallel()

	root, syms := samplePoint(t)

	testCases := []struct {
		sym  string
		want string
	}{
		{"Point", "Point"},
		{"x", "Point.x"},
		{"length", "Point.length"},
		{"unit", "Point.length.unit"},
		{"body", "Point.length.body"},
		{"if", "Point.length.body.if[0]"},
		{"temp", "Point.length.body.if[0].then"},
		{"return", "Point.length.body.return[1]"},
	}
	for _, tc := range testCases {
		t.Run(tc.sym, func(t *testing.T) {
			t.Parallel()

			addr := PathOf(syms[tc.sym])
			require.NotNil(t, addr)
			assert.Equal(t, tc.want, addr.String())

			found, ok := Lookup(root, addr)
			require.True(t, ok)
			assert.Same(t, syms[tc.sym], found)
		})
	}
}

func TestPathOf_RootAndDetached(t *testing.T) {
	t.Parallel()

	root, syms := samplePoint(t)
	assert.True(t, PathOf(root).IsRoot())

	// A symbol parented to the graph but never attached to it.
	detached := NewMethod(syms["Point"].(*Type), nil, "length")
	assert.Nil(t, PathOf(detached))

	assert.Nil(t, PathOf(NewType(nil, nil, "floating")))
	assert.Nil(t, PathOf(nil))
}

func TestLookup_Misses(t *testing.T) {
	t.Parallel()

	root, _ := samplePoint(t)

	for _, raw := range []string{"Nope", "Point.y", "Point.length.body.if[5]", "Point.length.body.return[0]"} {
		_, ok := Lookup(root, nodeid.MustParse(raw))
		assert.False(t, ok, raw)
	}

	found, ok := Lookup(root, nodeid.Root())
	require.True(t, ok)
	assert.Same(t, root, found)

	builtin, ok := Lookup(root, nodeid.MustParse("number"))
	require.True(t, ok)
	assert.True(t, builtin.(*Type).Builtin)
}

func TestDepthAndWalk(t *testing.T) {
	t.Parallel()

	root, syms := samplePoint(t)

	assert.Equal(t, 0, Depth(root))
	assert.Equal(t, 1, Depth(syms["Point"]))
	assert.Equal(t, 4, Depth(syms["if"]))
	assert.Equal(t, 5, Depth(syms["temp"]))
	assert.Same(t, root, Root(syms["temp"]))

	// Every walked symbol's parent is the symbol one level up.
	Walk(root, func(s Symbol) bool {
		for _, e := range Edges(s) {
			assert.Same(t, s, e.Child.Parent(), "%s under %s", e.Child.Kind(), s.Kind())
		}
		return true
	})

	// root, number, $top, Point, x, length, unit, body, if, >, 0, temp, unit-ref, return, 2
	assert.Equal(t, 15, Count(root))

	skipped := 0
	Walk(root, func(s Symbol) bool {
		skipped++
		return s.Kind() != KindType
	})
	assert.Equal(t, 4, skipped, "root, number, Point, $top")
}

func TestDump(t *testing.T) {
	t.Parallel()

	root, _ := samplePoint(t)
	var buf bytes.Buffer

	require.NoError(t, Dump(&buf, root))

	want := `ProgramRoot
  Point: Type
    x: Field type=number
    length: Method returns=number
      unit: Parameter type=number
      body: StatementBlock
        if[0]: IfStatement
          cond: FunctionCallExpression op=>
            arg[0]: NumberLiteral value=0
          then: LocalVariable name=temp
            init: IdentifierReference name=unit
        return[1]: ReturnStatement
          value: NumberLiteral value=2
  $top: StatementBlock
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("dump mismatch (-want +got):\n%s", diff)
	}
}

func TestDump_IncludeBuiltins(t *testing.T) {
	t.Parallel()

	root, _ := samplePoint(t)
	var buf bytes.Buffer

	require.NoError(t, Dump(&buf, root, IncludeBuiltins()))

	assert.Contains(t, buf.String(), "  number: Type builtin\n")
}
