package symbols

// Walk traverses the graph owned by s in pre-order, s included. If fn returns
// false the children of that symbol are skipped.
func Walk(s Symbol, fn func(Symbol) bool) {
	if s == nil || !fn(s) {
		return
	}
	for _, e := range Edges(s) {
		Walk(e.Child, fn)
	}
}

// Count returns the number of symbols owned by s, s included.
func Count(s Symbol) int {
	n := 0
	Walk(s, func(Symbol) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of parent links between s and the top of its
// graph.
func Depth(s Symbol) int {
	d := 0
	for p := s.Parent(); p != nil; p = p.Parent() {
		d++
	}
	return d
}

// Root returns the top of the graph containing s.
func Root(s Symbol) Symbol {
	for s != nil && s.Parent() != nil {
		s = s.Parent()
	}
	return s
}
