package ast

import "github.com/langrt/langrt/internal/types"

// Def is a method definition: `def name(params...) ... end` or the
// bare-identifier parameter-list form.
type Def struct {
	base
	Name   string
	Params []string
	Body   *Block
}

// NewDef creates a Def node.
func NewDef(name string, params []string, body *Block, span types.Span) *Def {
	return &Def{base: base{span}, Name: name, Params: params, Body: body}
}
