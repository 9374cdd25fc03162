package ast

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	var out []Node
	add := func(c Node) {
		if c != nil {
			out = append(out, c)
		}
	}
	switch n := n.(type) {
	case *Program:
		if n.Body != nil {
			add(n.Body)
		}
	case *Type:
		for _, m := range n.Members {
			add(m)
		}
	case *Method:
		for _, p := range n.Parameters {
			add(p)
		}
		if n.Body != nil {
			add(n.Body)
		}
	case *Field:
		if n.InitValue != nil {
			add(n.InitValue)
		}
	case *Block:
		for _, s := range n.Statements {
			add(s)
		}
	case *If:
		if n.Condition != nil {
			add(n.Condition)
		}
		if n.Statement != nil {
			add(n.Statement)
		}
	case *Return:
		if n.Value != nil {
			add(n.Value)
		}
	case *FieldAssignation:
		if n.Target != nil {
			add(n.Target)
		}
		if n.NewValue != nil {
			add(n.NewValue)
		}
	case *MethodCallStatement:
		if n.Call != nil {
			add(n.Call)
		}
	case *FuncCall:
		for _, a := range n.Args {
			add(a)
		}
	case *Operator:
		if n.Left != nil {
			add(n.Left)
		}
		if n.Right != nil {
			add(n.Right)
		}
	case *MethodCall:
		if n.Receiver != nil {
			add(n.Receiver)
		}
		for _, a := range n.Args {
			add(a)
		}
	}
	return out
}

// Inspect traverses the tree rooted at n in pre-order. If fn returns false
// the children of that node are skipped.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Inspect(c, fn)
	}
}

// Count returns the number of nodes in the tree rooted at n, n included.
func Count(n Node) int {
	count := 0
	Inspect(n, func(Node) bool {
		count++
		return true
	})
	return count
}
