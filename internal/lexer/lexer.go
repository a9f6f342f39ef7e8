package lexer

import (
	"log/slog"
	"strconv"

	"github.com/langrt/langrt/internal/types"
)

// Lexer tokenizes source text for the parser.
//
// It operates on raw bytes and never fails outright: unrecognized input
// produces a TokInvalid token rather than aborting, leaving the decision of
// whether that is fatal to the parser (which treats it as a syntax error).
type Lexer struct {
	source []byte
	pos    int
	line   int
	types.Logger
}

// New creates a lexer for the given source bytes.
// logger may be nil to disable logging.
func New(source []byte, logger *slog.Logger) *Lexer {
	l := &Lexer{source: source, pos: 0, line: 1, Logger: types.Logger{L: logger}}
	l.Log(slog.LevelDebug, "lexer initialized", slog.Int("source_len", len(source)))
	return l
}

// Tokenize scans the entire source and returns the token sequence, always
// terminated by exactly one TokEOF.
func (l *Lexer) Tokenize() []Token {
	estimated := len(l.source)/4 + 16
	tokens := make([]Token, 0, estimated)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == TokEOF {
			break
		}
	}
	l.Log(slog.LevelDebug, "tokenization complete", slog.Int("tokens", len(tokens)))
	return tokens
}

func (l *Lexer) isEOF() bool { return l.pos >= len(l.source) }

func (l *Lexer) peek() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	return l.source[l.pos], true
}

func (l *Lexer) peekAt(offset int) (byte, bool) {
	idx := l.pos + offset
	if idx >= len(l.source) {
		return 0, false
	}
	return l.source[idx], true
}

func (l *Lexer) advance() (byte, bool) {
	if l.pos >= len(l.source) {
		return 0, false
	}
	b := l.source[l.pos]
	l.pos++
	return b, true
}

func (l *Lexer) token(kind TokenKind, start, line int) Token {
	tok := Token{
		Kind: kind,
		Span: types.NewSpan(types.ByteOffset(start), types.ByteOffset(l.pos)),
		Text: string(l.source[start:l.pos]),
		Line: line,
	}
	if l.TraceEnabled() {
		l.Trace("token", slog.String("kind", kind.Name()), slog.String("text", tok.Text))
	}
	return tok
}

// NextToken scans and returns the next token, advancing the cursor past it.
func (l *Lexer) NextToken() Token {
	l.skipWhitespaceAndComments()

	start, line := l.pos, l.line

	b, ok := l.peek()
	if !ok {
		return l.token(TokEOF, start, line)
	}

	if b == '\n' {
		l.advance()
		l.line++
		return l.token(TokEOL, start, line)
	}
	if b == ';' {
		l.advance()
		return l.token(TokEOL, start, line)
	}

	switch b {
	case '(':
		l.advance()
		return l.token(TokLParen, start, line)
	case ')':
		l.advance()
		return l.token(TokRParen, start, line)
	case ',':
		l.advance()
		return l.token(TokComma, start, line)
	case '?':
		l.advance()
		return l.token(TokTernaryQuestion, start, line)
	case ':':
		l.advance()
		return l.token(TokTernaryColon, start, line)
	}

	if b == '.' {
		l.advance()
		return l.token(TokDot, start, line)
	}

	if b == '+' {
		l.advance()
		return l.token(TokPlus, start, line)
	}

	if b == '-' {
		if next, ok := l.peekAt(1); ok && isDigit(next) {
			return l.scanNumber(start, line) // attached digit: single signed literal
		}
		l.advance()
		return l.token(TokMinus, start, line)
	}

	if b == '*' {
		l.advance()
		return l.token(TokMultiply, start, line)
	}
	if b == '/' {
		l.advance()
		return l.token(TokDivide, start, line)
	}

	if b == '=' {
		l.advance()
		if next, ok := l.peek(); ok && next == '=' {
			l.advance()
			return l.token(TokEqualEqual, start, line)
		}
		return l.token(TokEqual, start, line)
	}

	if b == '<' {
		l.advance()
		if next, ok := l.peek(); ok && next == '=' {
			l.advance()
			return l.token(TokLessThanOrEqual, start, line)
		}
		return l.token(TokLessThan, start, line)
	}
	if b == '>' {
		l.advance()
		if next, ok := l.peek(); ok && next == '=' {
			l.advance()
			return l.token(TokGreaterThanOrEqual, start, line)
		}
		return l.token(TokGreaterThan, start, line)
	}

	if isDigit(b) {
		return l.scanNumber(start, line)
	}

	if b == '"' {
		return l.scanString(start, line)
	}

	if b == '$' {
		l.advance()
		l.scanIdentTail()
		return l.token(TokGlobalVariable, start, line)
	}

	if b == '@' {
		l.advance()
		if next, ok := l.peek(); ok && next == '@' {
			l.advance()
			l.scanIdentTail()
			return l.token(TokClassVar, start, line)
		}
		l.scanIdentTail()
		return l.token(TokInstanceVar, start, line)
	}

	if isAlpha(b) || b == '_' {
		return l.scanIdentifierOrKeyword(start, line)
	}

	// Unrecognized byte: consume it so the cursor always advances, and hand
	// back an invalid token for the parser to reject as a syntax error.
	l.advance()
	return l.token(TokInvalid, start, line)
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		b, ok := l.peek()
		if !ok {
			return
		}
		switch {
		case b == ' ' || b == '\t' || b == '\r':
			l.advance()
		case b == '#':
			for {
				b, ok := l.peek()
				if !ok || b == '\n' {
					break
				}
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanIdentTail() {
	for {
		b, ok := l.peek()
		if !ok || !(isAlphanumeric(b) || b == '_') {
			return
		}
		l.advance()
	}
}

func (l *Lexer) scanIdentifierOrKeyword(start, line int) Token {
	firstUpper := isUpperAlpha(l.source[start])
	l.scanIdentTail()
	// '?' and '!' suffixes are conventional on method-shaped identifiers.
	if b, ok := l.peek(); ok && (b == '?' || b == '!') {
		l.advance()
	}
	text := string(l.source[start:l.pos])

	if kind, ok := lookupKeyword(text); ok {
		return l.token(kind, start, line)
	}
	if firstUpper {
		return l.token(TokConstant, start, line)
	}
	return l.token(TokIdentifier, start, line)
}

func (l *Lexer) scanNumber(start, line int) Token {
	if b, _ := l.peek(); b == '-' {
		l.advance()
	}
	for {
		b, ok := l.peek()
		if !ok || !isDigit(b) {
			break
		}
		l.advance()
	}
	isFloat := false
	if b, ok := l.peek(); ok && b == '.' {
		if next, ok := l.peekAt(1); ok && isDigit(next) {
			isFloat = true
			l.advance()
			for {
				b, ok := l.peek()
				if !ok || !isDigit(b) {
					break
				}
				l.advance()
			}
		}
	}
	text := string(l.source[start:l.pos])
	if isFloat {
		f, _ := strconv.ParseFloat(text, 64)
		tok := l.token(TokFloat, start, line)
		tok.Float = f
		return tok
	}
	n, _ := strconv.ParseInt(text, 10, 64)
	tok := l.token(TokInteger, start, line)
	tok.Int = n
	return tok
}

func (l *Lexer) scanString(start, line int) Token {
	l.advance() // opening quote
	var text []byte
	for {
		b, ok := l.peek()
		if !ok {
			break // unterminated; hand back what we have, parser will see EOF next
		}
		if b == '"' {
			l.advance()
			break
		}
		if b == '\\' {
			l.advance()
			if esc, ok := l.advance(); ok {
				text = append(text, unescape(esc))
			}
			continue
		}
		l.advance()
		text = append(text, b)
	}
	tok := l.token(TokString, start, line)
	tok.Text = string(text)
	return tok
}

func unescape(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case '"':
		return '"'
	case '\\':
		return '\\'
	default:
		return b
	}
}

func isDigit(b byte) bool        { return b >= '0' && b <= '9' }
func isAlpha(b byte) bool        { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isUpperAlpha(b byte) bool   { return b >= 'A' && b <= 'Z' }
func isAlphanumeric(b byte) bool { return isAlpha(b) || isDigit(b) }
