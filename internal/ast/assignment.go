package ast

import "github.com/langrt/langrt/internal/types"

// Assignment is `target = value`.
type Assignment struct {
	base
	Target *Identifier
	Value  Node
}

// NewAssignment creates an Assignment node.
func NewAssignment(target *Identifier, value Node, span types.Span) *Assignment {
	return &Assignment{base: base{span}, Target: target, Value: value}
}
