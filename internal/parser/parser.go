// Package parser implements the top-down operator precedence (Pratt)
// expression parser: a token cursor, null/left-denotation dispatch tables,
// a precedence table, a locals stack, and the AST node constructors that
// turn a token sequence into an expression tree.
package parser

import (
	"log/slog"

	"github.com/langrt/langrt/internal/ast"
	"github.com/langrt/langrt/internal/lexer"
	"github.com/langrt/langrt/internal/types"
)

// Parser turns a token sequence into an AST. It holds no diagnostics list:
// there is no recovery, so the first SyntaxError aborts the parse and is
// returned directly from Parse.
type Parser struct {
	tokens  []lexer.Token
	pos     int
	eofLine int
	types.Logger
}

// New tokenizes source and returns a Parser ready to produce its AST.
// logger may be nil to disable logging.
func New(source []byte, logger *slog.Logger) *Parser {
	toks := lexer.New(source, logger).Tokenize()
	eofLine := 1
	if len(toks) > 0 {
		eofLine = toks[len(toks)-1].Line
	}
	return &Parser{tokens: toks, eofLine: eofLine, Logger: types.Logger{L: logger}}
}

// Parse parses the entire token stream as a top-level program and returns
// its Block, or the first SyntaxError encountered.
func (p *Parser) Parse() (block *ast.Block, err error) {
	defer func() {
		if r := recover(); r != nil {
			if ab, ok := r.(parseAbort); ok {
				err = ab.err
				return
			}
			panic(r)
		}
	}()
	return p.tree(), nil
}

// --- Token cursor ---

// current returns the token at the cursor, or the invalid sentinel past the
// end of the stream.
func (p *Parser) current() lexer.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return lexer.InvalidToken
}

// advance consumes and returns the current token. Every successful consume
// advances the cursor exactly once.
func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

func (p *Parser) isEOF() bool   { return p.current().Kind == lexer.TokEOF }
func (p *Parser) isEOL() bool   { return p.current().Kind == lexer.TokEOL }
func (p *Parser) isValid() bool { return p.current().IsValid() }

// expect aborts with a SyntaxError unless the current token has kind.
func (p *Parser) expect(kind lexer.TokenKind) {
	if p.current().Kind != kind {
		p.raiseUnexpected()
	}
}

// skipNewlines consumes a run of EOL tokens.
func (p *Parser) skipNewlines() {
	for p.isEOL() {
		p.advance()
	}
}

// nextExpression enforces the statement terminator: the current token must
// be EOL or EOF, after which any run of blank lines is skipped.
func (p *Parser) nextExpression() {
	if !p.isEOL() && !p.isEOF() {
		p.raiseUnexpected()
	}
	p.skipNewlines()
}

// raiseUnexpected aborts the parse with a SyntaxError describing the
// current token, matching the exact message shape of
// raise_unexpected: "{line}: syntax error, unexpected '{kind}'", or
// "...unexpected end-of-input" at EOF.
func (p *Parser) raiseUnexpected() {
	tok := p.current()
	if tok.Kind == lexer.TokEOF || !tok.IsValid() {
		p.fail("end-of-input")
		return
	}
	p.fail(tok.Kind.Name())
}
