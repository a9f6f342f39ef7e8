package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders node back to source text in a canonical form: fully
// parenthesized calls, explicit receivers, no paren-less calls. This is
// used to drive the parser round-trip property (P7): re-parsing Print(n)
// must yield a structurally identical tree.
func Print(n Node) string {
	var b strings.Builder
	printNode(&b, n)
	return b.String()
}

func printNode(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case *True:
		b.WriteString("true")
	case *False:
		b.WriteString("false")
	case *Nil:
		b.WriteString("nil")
	case *Integer:
		b.WriteString(strconv.FormatInt(v.Value, 10))
	case *Float:
		b.WriteString(strconv.FormatFloat(v.Value, 'g', -1, 64))
	case *String:
		fmt.Fprintf(b, "%q", v.Value)
	case *Identifier:
		b.WriteString(identPrefix(v.Kind))
		b.WriteString(v.Name)
	case *Assignment:
		printNode(b, v.Target)
		b.WriteString(" = ")
		printNode(b, v.Value)
	case *Call:
		if v.Receiver != nil && isOperatorMethod(v.Method) && len(v.Args) == 1 {
			b.WriteByte('(')
			printNode(b, v.Receiver)
			b.WriteByte(' ')
			b.WriteString(v.Method)
			b.WriteByte(' ')
			printNode(b, v.Args[0])
			b.WriteByte(')')
			return
		}
		if v.Receiver != nil {
			b.WriteByte('(')
			printNode(b, v.Receiver)
			b.WriteByte(')')
			b.WriteByte('.')
		}
		b.WriteString(v.Method)
		b.WriteByte('(')
		for i, arg := range v.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			printNode(b, arg)
		}
		b.WriteByte(')')
	case *If:
		// If only ever arises from the ternary desugar; there
		// is no standalone if/end production, so print it back as a ternary.
		b.WriteByte('(')
		printNode(b, v.Cond)
		b.WriteString(" ? ")
		printNode(b, v.Then)
		b.WriteString(" : ")
		printNode(b, v.Else)
		b.WriteByte(')')
	case *Def:
		b.WriteString("def ")
		b.WriteString(v.Name)
		b.WriteByte('(')
		b.WriteString(strings.Join(v.Params, ", "))
		b.WriteString(")\n")
		printNode(b, v.Body)
		b.WriteString("\nend")
	case *Block:
		for i, stmt := range v.Nodes {
			if i > 0 {
				b.WriteByte('\n')
			}
			printNode(b, stmt)
		}
	default:
		fmt.Fprintf(b, "<unknown node %T>", n)
	}
}

// isOperatorMethod reports whether name is one of the infix operator
// symbols the parser desugars into a Call (see parser.parseInfixExpression).
// Printing these back as `(recv).op(arg)` would leave an operator token where
// parseSendExpression expects a TokIdentifier, so they round-trip through
// infix notation instead.
func isOperatorMethod(name string) bool {
	switch name {
	case "+", "-", "*", "/", "==", "<", "<=", ">", ">=":
		return true
	default:
		return false
	}
}

func identPrefix(kind VarKind) string {
	switch kind {
	case VarGlobal:
		return "$"
	case VarInstanceVar:
		return "@"
	case VarClassVar:
		return "@@"
	default:
		return ""
	}
}
