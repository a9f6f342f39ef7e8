package ast

import "github.com/langrt/langrt/internal/types"

// VarKind distinguishes the five identifier shapes the lexer can produce.
// All five share the Identifier node shape; only
// Local participates in the locals-stack disambiguation.
type VarKind int

const (
	VarLocal VarKind = iota
	VarConstant
	VarGlobal
	VarInstanceVar
	VarClassVar
)

// Identifier is a bare name reference: a local variable, a paren-less method
// call target, a constant, a global, an instance variable, or a class
// variable, depending on Kind.
//
// IsLocal is only meaningful when Kind == VarLocal: it records whether this
// occurrence matched an entry in the locals stack at parse time (I6). A
// VarLocal identifier with IsLocal == false is a paren-less method call.
type Identifier struct {
	base
	Name    string
	Kind    VarKind
	IsLocal bool
}

// NewIdentifier creates an Identifier node.
func NewIdentifier(name string, kind VarKind, isLocal bool, span types.Span) *Identifier {
	return &Identifier{base: base{span}, Name: name, Kind: kind, IsLocal: isLocal}
}
