package ast

import "github.com/langrt/langrt/internal/types"

// True is the `true` literal.
type True struct{ base }

// False is the `false` literal.
type False struct{ base }

// Nil is the `nil` literal.
type Nil struct{ base }

// Integer is an integer literal, possibly negative (see the lexer's
// attached-sign scanning and the parser's signed-literal rewrite).
type Integer struct {
	base
	Value int64
}

// Float is a floating point literal.
type Float struct {
	base
	Value float64
}

// String is a quoted string literal.
type String struct {
	base
	Value string
}

func NewTrue(span types.Span) *True    { return &True{base{span}} }
func NewFalse(span types.Span) *False  { return &False{base{span}} }
func NewNil(span types.Span) *Nil      { return &Nil{base{span}} }
func NewInteger(v int64, span types.Span) *Integer   { return &Integer{base{span}, v} }
func NewFloat(v float64, span types.Span) *Float     { return &Float{base{span}, v} }
func NewString(v string, span types.Span) *String    { return &String{base{span}, v} }
