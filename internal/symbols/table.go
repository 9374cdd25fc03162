package symbols

import "iter"

// Table is a name-keyed collection that remembers insertion order. The zero
// value is not usable; create one with NewTable. A nil *Table behaves as an
// empty, read-only table.
type Table[T Symbol] struct {
	names []string
	items map[string]T
}

// NewTable returns an empty table.
func NewTable[T Symbol]() *Table[T] {
	return &Table[T]{items: make(map[string]T)}
}

// Add registers v under name. If the name is already taken the table is left
// unchanged and Add returns the existing entry and false.
func (t *Table[T]) Add(name string, v T) (T, bool) {
	if existing, ok := t.items[name]; ok {
		return existing, false
	}
	t.items[name] = v
	t.names = append(t.names, name)
	return v, true
}

// Get returns the entry registered under name.
func (t *Table[T]) Get(name string) (T, bool) {
	if t == nil {
		var zero T
		return zero, false
	}
	v, ok := t.items[name]
	return v, ok
}

// Len returns the number of entries.
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.names)
}

// Names returns the registered names in insertion order.
func (t *Table[T]) Names() []string {
	if t == nil {
		return nil
	}
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// All iterates over the entries in insertion order.
func (t *Table[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		if t == nil {
			return
		}
		for _, name := range t.names {
			if !yield(name, t.items[name]) {
				return
			}
		}
	}
}

// Values returns the entries in insertion order.
func (t *Table[T]) Values() []T {
	if t == nil {
		return nil
	}
	out := make([]T, 0, len(t.names))
	for _, name := range t.names {
		out = append(out, t.items[name])
	}
	return out
}
