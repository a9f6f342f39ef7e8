package parser

import (
	"github.com/langrt/langrt/internal/ast"
	"github.com/langrt/langrt/internal/lexer"
)

// nullDenotationFn parses the left-initial (prefix/primary) expression
// chosen by the first token. leftDenotationFn parses the continuation
// (infix/postfix) chosen by a token that follows a subexpression. Both are
// method expressions, not bound method values, so the table itself holds no
// per-call-site state, giving O(1) dispatch with no per-call-site state.
type nullDenotationFn func(*Parser, *localsScope) ast.Node
type leftDenotationFn func(*Parser, ast.Node, *localsScope) ast.Node

// nullDenotation maps a token kind to its null-denotation parser, or nil if
// the kind cannot start an expression.
func nullDenotation(kind lexer.TokenKind) nullDenotationFn {
	switch kind {
	case lexer.TokTrue, lexer.TokFalse, lexer.TokNil:
		return (*Parser).parseLiteralKeyword
	case lexer.TokDefKeyword:
		return (*Parser).parseDef
	case lexer.TokLParen:
		return (*Parser).parseGroup
	case lexer.TokClassVar, lexer.TokConstant, lexer.TokGlobalVariable,
		lexer.TokIdentifier, lexer.TokInstanceVar:
		return (*Parser).parseIdentifier
	case lexer.TokInteger, lexer.TokFloat:
		return (*Parser).parseLit
	case lexer.TokString:
		return (*Parser).parseString
	default:
		return nil
	}
}

// leftDenotation maps the current token to its left-denotation parser. It
// takes the full Token, not just its kind, because Integer/Float only
// trigger the signed-literal infix rewrite when their scanned value is
// negative (see getPrecedence).
func leftDenotation(tok lexer.Token) leftDenotationFn {
	switch tok.Kind {
	case lexer.TokPlus, lexer.TokMinus, lexer.TokMultiply, lexer.TokDivide,
		lexer.TokEqualEqual, lexer.TokLessThan, lexer.TokLessThanOrEqual,
		lexer.TokGreaterThan, lexer.TokGreaterThanOrEqual:
		return (*Parser).parseInfixExpression
	case lexer.TokInteger:
		if tok.Int < 0 {
			return (*Parser).parseInfixExpression
		}
		return nil
	case lexer.TokFloat:
		if tok.Float < 0 {
			return (*Parser).parseInfixExpression
		}
		return nil
	case lexer.TokEqual:
		return (*Parser).parseAssignmentExpression
	case lexer.TokLParen:
		return (*Parser).parseCallExpressionWithParens
	case lexer.TokDot:
		return (*Parser).parseSendExpression
	case lexer.TokTernaryQuestion:
		return (*Parser).parseTernaryExpression
	default:
		return nil
	}
}

// parseExpression is the Pratt expression loop.
func (p *Parser) parseExpression(minPrec Precedence, locals *localsScope) ast.Node {
	p.skipNewlines()

	nullFn := nullDenotation(p.current().Kind)
	if nullFn == nil {
		p.raiseUnexpected()
	}
	left := nullFn(p, locals)

	// Paren-less call at statement position: an Identifier followed
	// directly by something that isn't a left-denotation trigger (i.e. sits
	// at LOWEST precedence) and that can start an expression is
	// reinterpreted as a call with that identifier as the method name.
	// Closing tokens such as ')', ',' and ':' leave the Identifier as is.
	// This rule is kind-independent, matching the source algorithm's check
	// on node shape rather than variable kind.
	if _, ok := left.(*ast.Identifier); ok && !p.isEOL() && !p.isEOF() && getPrecedence(p.current()) == PrecLowest && nullDenotation(p.current().Kind) != nil {
		left = p.parseCallExpressionWithoutParens(left, locals)
	}

	for p.isValid() && minPrec < getPrecedence(p.current()) {
		leftFn := leftDenotation(p.current())
		if leftFn == nil {
			p.raiseUnexpected()
		}
		left = leftFn(p, left, locals)
	}
	return left
}
