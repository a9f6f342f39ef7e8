package parser

import (
	"github.com/langrt/langrt/internal/ast"
	"github.com/langrt/langrt/internal/lexer"
	"github.com/langrt/langrt/internal/types"
)

// unreachable marks an internal invariant breach:
// a production was dispatched for a token shape it cannot actually handle.
// Unlike SyntaxError, this is never recovered — it is left to propagate and
// terminate the process.
func unreachable(where string) ast.Node {
	panic("parser: unreachable: " + where)
}

// tree parses the whole token stream as the top-level program, invoked
// once with a fresh top-level locals scope.
func (p *Parser) tree() *ast.Block {
	locals := newLocalsScope()
	startSpan := p.current().Span
	var nodes []ast.Node
	p.skipNewlines()
	for !p.isEOF() {
		nodes = append(nodes, p.parseExpression(PrecLowest, locals))
		p.nextExpression()
	}
	return ast.NewBlock(nodes, types.NewSpan(startSpan.Start, p.current().Span.End))
}

// parseBody parses expressions until `end`, shared by def bodies.
func (p *Parser) parseBody(locals *localsScope) *ast.Block {
	startSpan := p.current().Span
	var nodes []ast.Node
	p.skipNewlines()
	for !p.isEOF() && p.current().Kind != lexer.TokEndKeyword {
		nodes = append(nodes, p.parseExpression(PrecLowest, locals))
		p.nextExpression()
	}
	if p.current().Kind != lexer.TokEndKeyword {
		p.raiseUnexpected()
	}
	endTok := p.advance()
	return ast.NewBlock(nodes, types.NewSpan(startSpan.Start, endTok.Span.End))
}

func (p *Parser) parseLiteralKeyword(_ *localsScope) ast.Node {
	tok := p.advance()
	switch tok.Kind {
	case lexer.TokTrue:
		return ast.NewTrue(tok.Span)
	case lexer.TokFalse:
		return ast.NewFalse(tok.Span)
	case lexer.TokNil:
		return ast.NewNil(tok.Span)
	default:
		return unreachable("parseLiteralKeyword")
	}
}

// parseDef parses `def name(params...) body end` or the bare-identifier
// parameter list form. A fresh locals scope is created for the
// method's own body, independent of the enclosing scope, and each parameter
// is seeded into it so reads of the parameter inside the body resolve as
// locals rather than paren-less calls.
func (p *Parser) parseDef(_ *localsScope) ast.Node {
	startTok := p.advance() // consume 'def'

	defLocals := newLocalsScope()
	p.expect(lexer.TokIdentifier)
	nameTok := p.advance()

	var params []string
	parseParam := func() {
		p.expect(lexer.TokIdentifier)
		tok := p.advance()
		params = append(params, tok.Text)
		defLocals.add(tok.Text)
	}

	switch {
	case p.current().Kind == lexer.TokLParen:
		p.advance()
		if p.current().Kind != lexer.TokRParen {
			parseParam()
			for p.current().Kind == lexer.TokComma {
				p.advance()
				parseParam()
			}
		}
		p.expect(lexer.TokRParen)
		p.advance()
	case p.current().Kind == lexer.TokIdentifier:
		parseParam()
		for p.current().Kind == lexer.TokComma {
			p.advance()
			parseParam()
		}
	}

	body := p.parseBody(defLocals)
	return ast.NewDef(nameTok.Text, params, body, types.NewSpan(startTok.Span.Start, body.Span().End))
}

// parseGroup parses a parenthesized expression.
func (p *Parser) parseGroup(locals *localsScope) ast.Node {
	p.advance() // consume '('
	exp := p.parseExpression(PrecLowest, locals)
	if p.current().Kind != lexer.TokRParen {
		p.raiseUnexpected()
	}
	p.advance()
	return exp
}

func varKindOf(kind lexer.TokenKind) ast.VarKind {
	switch kind {
	case lexer.TokConstant:
		return ast.VarConstant
	case lexer.TokGlobalVariable:
		return ast.VarGlobal
	case lexer.TokInstanceVar:
		return ast.VarInstanceVar
	case lexer.TokClassVar:
		return ast.VarClassVar
	default:
		return ast.VarLocal
	}
}

// parseIdentifier parses any of the five identifier-shaped tokens, tagging
// VarLocal occurrences with whether they match the current locals stack
// against the current locals stack.
func (p *Parser) parseIdentifier(locals *localsScope) ast.Node {
	tok := p.advance()
	kind := varKindOf(tok.Kind)
	isLocal := kind == ast.VarLocal && locals.has(tok.Text)
	return ast.NewIdentifier(tok.Text, kind, isLocal, tok.Span)
}

func (p *Parser) parseLit(_ *localsScope) ast.Node {
	tok := p.advance()
	switch tok.Kind {
	case lexer.TokInteger:
		return ast.NewInteger(tok.Int, tok.Span)
	case lexer.TokFloat:
		return ast.NewFloat(tok.Float, tok.Span)
	default:
		return unreachable("parseLit")
	}
}

func (p *Parser) parseString(_ *localsScope) ast.Node {
	tok := p.advance()
	return ast.NewString(tok.Text, tok.Span)
}

// parseAssignmentExpression parses `target = value`.
// Only a VarLocal target is pushed onto the locals stack, and it is pushed
// before the right-hand side is parsed, so in `x = x + 1` the right-hand
// side's own read of `x` already resolves as a local, as does any later
// reference within the same scope. The target Identifier itself was parsed
// before the push and keeps is_local=false on its first assignment.
func (p *Parser) parseAssignmentExpression(left ast.Node, locals *localsScope) ast.Node {
	target, ok := left.(*ast.Identifier)
	if !ok {
		return unreachable("parseAssignmentExpression: non-identifier target")
	}
	if target.Kind == ast.VarLocal {
		locals.add(target.Name)
	}
	p.advance() // consume '='
	value := p.parseExpression(PrecAssignment, locals)
	return ast.NewAssignment(target, value, types.NewSpan(target.Span().Start, value.Span().End))
}

// toCallNode synthesizes or reuses a Call node from a null-denotation
// Identifier or an already-built Call (the chained-call case, e.g.
// `a.b(1)` or `a.b 1`).
func toCallNode(left ast.Node) *ast.Call {
	switch v := left.(type) {
	case *ast.Identifier:
		return ast.NewCall(nil, v.Name, v.Span())
	case *ast.Call:
		return v
	default:
		unreachable("toCallNode: unexpected receiver shape")
		return nil
	}
}

// parseCallExpressionWithParens parses the `(args...)` suffix.
func (p *Parser) parseCallExpressionWithParens(left ast.Node, locals *localsScope) ast.Node {
	call := toCallNode(left)
	p.advance() // consume '('
	if p.current().Kind != lexer.TokRParen {
		call.AddArg(p.parseExpression(PrecLowest, locals))
		for p.current().Kind == lexer.TokComma {
			p.advance()
			call.AddArg(p.parseExpression(PrecLowest, locals))
		}
	}
	p.expect(lexer.TokRParen)
	rparen := p.advance()
	call.ExtendTo(rparen.Span.End)
	return call
}

// parseCallExpressionWithoutParens parses a greedy, comma-separated
// argument list with no enclosing parens,
// e.g. `puts 1, 2, 3`.
func (p *Parser) parseCallExpressionWithoutParens(left ast.Node, locals *localsScope) ast.Node {
	call := toCallNode(left)
	if !p.isEOL() && !p.isEOF() {
		call.AddArg(p.parseExpression(PrecLowest, locals))
		for p.current().Kind == lexer.TokComma {
			p.advance()
			call.AddArg(p.parseExpression(PrecLowest, locals))
		}
	}
	return call
}

// parseInfixExpression parses a binary operator. If the
// operator token is itself a signed numeric literal (the lexer's
// attached-minus scan), it is rewritten into a Minus call over the
// literal's absolute value — this is what makes `x -1` parse as
// subtraction.
func (p *Parser) parseInfixExpression(left ast.Node, locals *localsScope) ast.Node {
	opTok := p.current()
	prec := getPrecedence(opTok)
	p.advance()

	var right ast.Node
	opName := opTok.Kind.Name()
	switch opTok.Kind {
	case lexer.TokInteger:
		right = ast.NewInteger(-opTok.Int, opTok.Span)
		opName = "-"
	case lexer.TokFloat:
		right = ast.NewFloat(-opTok.Float, opTok.Span)
		opName = "-"
	default:
		right = p.parseExpression(prec, locals)
	}

	call := ast.NewCall(left, opName, types.NewSpan(left.Span().Start, right.Span().End))
	call.AddArg(right)
	return call
}

// parseSendExpression parses `.method`, trying a paren-less
// argument list immediately after, mirroring the top-level rule.
func (p *Parser) parseSendExpression(left ast.Node, locals *localsScope) ast.Node {
	p.advance() // consume '.'
	p.expect(lexer.TokIdentifier)
	nameTok := p.advance()

	call := ast.NewCall(left, nameTok.Text, types.NewSpan(left.Span().Start, nameTok.Span.End))
	if !p.isEOL() && !p.isEOF() && getPrecedence(p.current()) == PrecLowest && nullDenotation(p.current().Kind) != nil {
		return p.parseCallExpressionWithoutParens(call, locals)
	}
	return call
}

// parseTernaryExpression desugars `cond ? a : b` directly into an If node;
// there is no separate ternary AST shape.
func (p *Parser) parseTernaryExpression(left ast.Node, locals *localsScope) ast.Node {
	p.advance() // consume '?'
	trueExpr := p.parseExpression(PrecTernary, locals)
	p.expect(lexer.TokTernaryColon)
	p.advance()
	falseExpr := p.parseExpression(PrecTernary, locals)
	return ast.NewIf(left, trueExpr, falseExpr, types.NewSpan(left.Span().Start, falseExpr.Span().End))
}
