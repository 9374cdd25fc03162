package symbols

import "github.com/specialistvlad/kuilang/internal/nodeid"

const (
	// TopLevelSegment addresses the top-level block of a program.
	TopLevelSegment = "$top"
	// BodySegment addresses the body of a method.
	BodySegment = "body"
)

// Edge is an ownership link from a symbol to one of its children.
type Edge struct {
	Segment nodeid.PathSegment
	Child   Symbol
}

// Edges returns the owned children of s in a stable order: declarations in
// declaration order, then positional children in source order. Segments are
// unique among the edges of one symbol as long as declarations sharing a
// namespace have distinct names and none is named after TopLevelSegment or
// BodySegment.
func Edges(s Symbol) []Edge {
	var out []Edge
	named := func(name string, c Symbol) {
		out = append(out, Edge{Segment: nodeid.NewPathSegment(name), Child: c})
	}
	indexed := func(name string, i int, c Symbol) {
		out = append(out, Edge{Segment: nodeid.NewPathSegmentWithIndex(name, i), Child: c})
	}

	switch s := s.(type) {
	case *ProgramRoot:
		for name, t := range s.Types.All() {
			named(name, t)
		}
		for name, m := range s.Methods.All() {
			named(name, m)
		}
		if s.Body != nil {
			named(TopLevelSegment, s.Body)
		}
	case *Type:
		for name, f := range s.Fields.All() {
			named(name, f)
		}
		for name, m := range s.Methods.All() {
			named(name, m)
		}
	case *Method:
		for name, p := range s.Parameters.All() {
			named(name, p)
		}
		if s.Body != nil {
			named(BodySegment, s.Body)
		}
	case *Field:
		if s.InitValue != nil {
			named("init", s.InitValue)
		}
	case *LocalVariable:
		if s.InitValue != nil {
			named("init", s.InitValue)
		}
	case *StatementBlock:
		for i, st := range s.Statements {
			indexed(st.Kind().Keyword(), i, st)
		}
	case *IfStatement:
		if s.Condition != nil {
			named("cond", s.Condition)
		}
		if s.Body != nil {
			named("then", s.Body)
		}
	case *ReturnStatement:
		if s.Value != nil {
			named("value", s.Value)
		}
	case *FieldAssignationStatement:
		if s.Target != nil {
			named("target", s.Target)
		}
		if s.NewValue != nil {
			named("value", s.NewValue)
		}
	case *MethodCallStatement:
		if s.Call != nil {
			named("expr", s.Call)
		}
	case *FunctionCallExpression:
		for i, a := range s.Arguments {
			indexed("arg", i, a)
		}
	case *MethodCallExpression:
		if s.Receiver != nil {
			named("receiver", s.Receiver)
		}
		for i, a := range s.Arguments {
			indexed("arg", i, a)
		}
	}
	return out
}

// PathOf returns the address of s relative to its program root. It returns
// nil when s is not reachable from the root through ownership links, which
// is the case for symbols that were built but never attached (for example a
// rejected duplicate declaration).
func PathOf(s Symbol) *nodeid.Address {
	if s == nil {
		return nil
	}
	parent := s.Parent()
	if parent == nil {
		if s.Kind() == KindProgramRoot {
			return nodeid.Root()
		}
		return nil
	}
	parentAddr := PathOf(parent)
	if parentAddr == nil {
		return nil
	}
	for _, e := range Edges(parent) {
		if e.Child == s {
			return parentAddr.Child(e.Segment)
		}
	}
	return nil
}

// Lookup follows addr from root and returns the symbol it names.
func Lookup(root Symbol, addr *nodeid.Address) (Symbol, bool) {
	if root == nil {
		return nil, false
	}
	cur := root
	if addr == nil {
		return cur, true
	}
	for _, seg := range addr.Path {
		next, ok := child(cur, seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func child(s Symbol, seg nodeid.PathSegment) (Symbol, bool) {
	for _, e := range Edges(s) {
		if e.Segment == seg {
			return e.Child, true
		}
	}
	return nil, false
}
