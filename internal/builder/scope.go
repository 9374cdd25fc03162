package builder

import (
	"github.com/specialistvlad/kuilang/internal/ast"
	"github.com/specialistvlad/kuilang/internal/symbols"
)

// current returns the owning scope for symbols built now.
func (p *pass) current() symbols.Symbol {
	if len(p.scopes) == 0 {
		return nil
	}
	return p.scopes[len(p.scopes)-1]
}

// enter pushes s as the current scope. The returned function pops it and
// must be deferred by the caller.
func (p *pass) enter(n ast.Node, s symbols.Symbol) (release func()) {
	p.scopes = append(p.scopes, s)
	depth := len(p.scopes)
	p.logger.Debug("Entering scope.", "kind", s.Kind().String(), "depth", depth, "range", n.SrcRange().String())

	return func() {
		if len(p.scopes) != depth || p.scopes[depth-1] != s {
			panic(internalf(n, "scope stack corrupted leaving %s at depth %d", s.Kind(), depth))
		}
		p.scopes = p.scopes[:depth-1]
	}
}

// within runs fn with s as the current scope.
func (p *pass) within(n ast.Node, s symbols.Symbol, fn func()) {
	release := p.enter(n, s)
	defer release()
	fn()
}

// visit dispatches n and checks that the visit left the cursor where it
// found it.
func (p *pass) visit(n ast.Node) symbols.Symbol {
	before := p.current()
	sym := dispatch(p, n)
	after := p.current()
	if p.hook != nil {
		p.hook(n, before, after)
	}
	if before != after {
		panic(internalf(n, "scope cursor not restored"))
	}
	return sym
}
