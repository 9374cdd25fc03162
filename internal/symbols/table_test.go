package symbols

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_PreservesInsertionOrder(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	typ := NewType(nil, nil, "Point")
	names := []string{"z", "a", "m", "b", "y"}

	// --- Act ---
	for _, n := range names {
		_, ok := typ.Fields.Add(n, NewField(typ, nil, n, "number"))
		require.True(t, ok)
	}

	// --- Assert ---
	if diff := cmp.Diff(names, typ.Fields.Names()); diff != "" {
		t.Errorf("field order mismatch (-want +got):\n%s", diff)
	}
	var iterated []string
	for name, f := range typ.Fields.All() {
		assert.Equal(t, name, f.Name)
		iterated = append(iterated, name)
	}
	assert.Equal(t, names, iterated)
	assert.Len(t, typ.Fields.Values(), len(names))
}

func TestTable_AddKeepsFirstEntry(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := NewProgramRoot(nil)
	first := NewMethod(root, nil, "main")
	second := NewMethod(root, nil, "main")

	// --- Act ---
	_, ok1 := root.Methods.Add("main", first)
	existing, ok2 := root.Methods.Add("main", second)

	// --- Assert ---
	assert.True(t, ok1)
	assert.False(t, ok2)
	assert.Same(t, first, existing)
	assert.Equal(t, 1, root.Methods.Len())
	got, ok := root.Methods.Get("main")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestTable_NilIsEmpty(t *testing.T) {
	t.Parallel()

	var tbl *Table[*Field]
	assert.Equal(t, 0, tbl.Len())
	assert.Nil(t, tbl.Names())
	assert.Nil(t, tbl.Values())
	_, ok := tbl.Get("x")
	assert.False(t, ok)
	for range tbl.All() {
		t.Fatal("nil table must not yield")
	}
}

func TestTable_NamesReturnsCopy(t *testing.T) {
	t.Parallel()

	tbl := NewTable[*Type]()
	tbl.Add("a", NewType(nil, nil, "a"))
	names := tbl.Names()
	names[0] = "changed"
	assert.Equal(t, []string{"a"}, tbl.Names())
}
