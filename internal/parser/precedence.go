package parser

import "github.com/langrt/langrt/internal/lexer"

// Precedence is a total order over operator tokens ("Precedence
// table"), low to high: LOWEST < ASSIGNMENT < TERNARY < equality/relational
// < additive < multiplicative < call < member.
type Precedence int

const (
	PrecLowest Precedence = iota
	PrecAssignment
	PrecTernary
	PrecEquality
	PrecAdditive
	PrecMultiplicative
	PrecCall
	PrecMember
)

// getPrecedence returns the binding power of tok were it to appear as a
// left-denotation trigger. Integer/Float tokens are precedence LOWEST
// unless their scanned value is negative, in which case they bind at
// PrecAdditive — this is what lets `x -1` re-parse as subtraction via the
// signed-literal rewrite in parseInfixExpression, while `puts(-1)` parses
// -1 as an ordinary primary literal in null-denotation position.
func getPrecedence(tok lexer.Token) Precedence {
	switch tok.Kind {
	case lexer.TokEqual:
		return PrecAssignment
	case lexer.TokTernaryQuestion:
		return PrecTernary
	case lexer.TokEqualEqual, lexer.TokLessThan, lexer.TokLessThanOrEqual,
		lexer.TokGreaterThan, lexer.TokGreaterThanOrEqual:
		return PrecEquality
	case lexer.TokPlus, lexer.TokMinus:
		return PrecAdditive
	case lexer.TokMultiply, lexer.TokDivide:
		return PrecMultiplicative
	case lexer.TokLParen:
		return PrecCall
	case lexer.TokDot:
		return PrecMember
	case lexer.TokInteger:
		if tok.Int < 0 {
			return PrecAdditive
		}
		return PrecLowest
	case lexer.TokFloat:
		if tok.Float < 0 {
			return PrecAdditive
		}
		return PrecLowest
	default:
		return PrecLowest
	}
}
