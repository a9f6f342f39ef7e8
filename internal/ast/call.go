package ast

import "github.com/langrt/langrt/internal/types"

// Call is a method invocation: receiver.method(args...), or a bare
// `method(args...)`/`method args...` with an implicit nil receiver.
type Call struct {
	base
	Receiver Node // nil means implicit self
	Method   string
	Args     []Node
}

// NewCall creates a Call node with no arguments; use AddArg to append.
func NewCall(receiver Node, method string, span types.Span) *Call {
	return &Call{base: base{span}, Receiver: receiver, Method: method}
}

// AddArg appends an argument, extending the node's span to cover it.
func (c *Call) AddArg(arg Node) {
	c.Args = append(c.Args, arg)
	if arg.Span().End > c.span.End {
		c.span.End = arg.Span().End
	}
}

// ExtendTo widens the call's span to end at least at end (used to cover a
// trailing ')' when the argument list is empty).
func (c *Call) ExtendTo(end types.ByteOffset) {
	if end > c.span.End {
		c.span.End = end
	}
}
