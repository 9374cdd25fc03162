package builder

import (
	"fmt"

	"github.com/specialistvlad/kuilang/internal/ast"
)

// InternalError is a contract violation between the front end and the
// builder, such as a method declared inside an if. It aborts the pass.
type InternalError struct {
	Node  ast.Node
	Msg   string
	Cause error
}

func (e *InternalError) Error() string {
	msg := "builder: internal error: " + e.Msg
	if e.Node != nil {
		msg = fmt.Sprintf("builder: internal error at %s: %s", e.Node.SrcRange(), e.Msg)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *InternalError) Unwrap() error { return e.Cause }

func internalf(n ast.Node, format string, args ...any) *InternalError {
	return &InternalError{Node: n, Msg: fmt.Sprintf(format, args...)}
}
