package ast

import "github.com/langrt/langrt/internal/types"

// If is a conditional. Else is nil when the branch is absent (bare `if`);
// the ternary production always populates both branches since it desugars
// directly into an If with no separate node type.
type If struct {
	base
	Cond Node
	Then Node
	Else Node
}

// NewIf creates an If node.
func NewIf(cond, then, els Node, span types.Span) *If {
	return &If{base: base{span}, Cond: cond, Then: then, Else: els}
}
