// Package ast defines the expression tree produced by the parser.
//
// Node shapes mirror the Data Model: a tagged set of literals, an
// Identifier shape shared by all five variable kinds, Assignment, Call,
// If, Def, and the Block that holds a sequence of top-level or body
// expressions. The AST carries no semantics of its own — the evaluator
// (an external collaborator) walks it against the object model.
package ast

import "github.com/langrt/langrt/internal/types"

// Node is any expression in the tree. The unexported marker method seals
// the interface to this package's node types.
type Node interface {
	Span() types.Span
	node()
}

type base struct {
	span types.Span
}

func (b base) Span() types.Span { return b.span }
func (base) node()              {}

// Block is a sequence of expressions, used for both the top-level program
// and a def/if body.
type Block struct {
	base
	Nodes []Node
}

// NewBlock creates a Block holding nodes, covering the span the caller
// passes.
func NewBlock(nodes []Node, span types.Span) *Block {
	return &Block{base: base{span: span}, Nodes: nodes}
}
