package parser

import (
	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

func (p *Parser) parseStatement() syntax.Statement {
	switch p.current().Kind {
	case lexer.OpenBraceTokenKind:
		return p.parseBlockStatement()
	case lexer.VarKeywordTokenKind, lexer.ConstKeywordTokenKind:
		return p.parseVariableDeclaration()
	case lexer.IfKeywordTokenKind:
		return p.parseIfStatement()
	case lexer.WhileKeywordTokenKind:
		return p.parseWhileStatement()
	case lexer.DoKeywordTokenKind:
		return p.parseDoWhileStatement()
	case lexer.ForKeywordTokenKind:
		return p.parseForStatement()
	case lexer.BreakKeywordTokenKind:
		return p.parseBreakStatement()
	case lexer.ContinueKeywordTokenKind:
		return p.parseContinueStatement()
	case lexer.ReturnKeywordTokenKind:
		return p.parseReturnStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockStatement() *syntax.BlockStatement {
	open := p.matchToken(lexer.OpenBraceTokenKind)
	var statements []syntax.Statement
	for p.current().Kind != lexer.CloseBraceTokenKind && !p.atEnd() {
		prevPos := p.pos
		statements = append(statements, p.parseStatement())
		if p.pos == prevPos {
			p.skipToken()
		}
	}
	close := p.matchToken(lexer.CloseBraceTokenKind)
	return &syntax.BlockStatement{OpenBraceToken: open, Statements: statements, CloseBraceToken: close}
}

func (p *Parser) parseVariableDeclaration() *syntax.VariableDeclaration {
	keyword := p.nextToken() // var or const, already checked by the caller's switch
	ident := p.matchToken(lexer.IdentifierTokenKind)

	var typeClause *syntax.TypeClause
	if p.current().Kind == lexer.ColonTokenKind {
		typeClause = p.parseTypeClause()
	}

	var equals lexer.Token
	var initializer syntax.Expression
	if p.current().Kind == lexer.EqualsTokenKind {
		equals = p.nextToken()
		initializer = p.parseExpression()
	}
	semicolon := p.matchToken(lexer.SemicolonTokenKind)

	return &syntax.VariableDeclaration{
		KeywordToken:    keyword,
		IdentifierToken: ident,
		TypeClause:      typeClause,
		EqualsToken:     equals,
		Initializer:     initializer,
		SemicolonToken:  semicolon,
	}
}

func (p *Parser) parseIfStatement() *syntax.IfStatement {
	keyword := p.matchToken(lexer.IfKeywordTokenKind)
	condition := p.parseExpression()
	then := p.parseStatement()

	var elseClause *syntax.ElseClause
	if p.current().Kind == lexer.ElseKeywordTokenKind {
		elseKeyword := p.nextToken()
		elseClause = &syntax.ElseClause{ElseKeyword: elseKeyword, ElseStatement: p.parseStatement()}
	}

	return &syntax.IfStatement{IfKeyword: keyword, Condition: condition, ThenStatement: then, Else: elseClause}
}

func (p *Parser) parseWhileStatement() *syntax.WhileStatement {
	keyword := p.matchToken(lexer.WhileKeywordTokenKind)
	condition := p.parseExpression()
	body := p.parseStatement()
	return &syntax.WhileStatement{WhileKeyword: keyword, Condition: condition, Body: body}
}

func (p *Parser) parseDoWhileStatement() *syntax.DoWhileStatement {
	doKeyword := p.matchToken(lexer.DoKeywordTokenKind)
	body := p.parseStatement()
	whileKeyword := p.matchToken(lexer.WhileKeywordTokenKind)
	condition := p.parseExpression()
	semicolon := p.matchToken(lexer.SemicolonTokenKind)
	return &syntax.DoWhileStatement{
		DoKeyword:      doKeyword,
		Body:           body,
		WhileKeyword:   whileKeyword,
		Condition:      condition,
		SemicolonToken: semicolon,
	}
}

func (p *Parser) parseForStatement() *syntax.ForStatement {
	forKeyword := p.matchToken(lexer.ForKeywordTokenKind)
	ident := p.matchToken(lexer.IdentifierTokenKind)
	inKeyword := p.matchToken(lexer.InKeywordTokenKind)
	lower := p.parseExpression()
	dotDot := p.matchToken(lexer.DotDotTokenKind)
	upper := p.parseExpression()
	body := p.parseStatement()
	return &syntax.ForStatement{
		ForKeyword:      forKeyword,
		IdentifierToken: ident,
		InKeyword:       inKeyword,
		LowerBound:      lower,
		DotDotToken:     dotDot,
		UpperBound:      upper,
		Body:            body,
	}
}

func (p *Parser) parseBreakStatement() *syntax.BreakStatement {
	keyword := p.matchToken(lexer.BreakKeywordTokenKind)
	semicolon := p.matchToken(lexer.SemicolonTokenKind)
	return &syntax.BreakStatement{BreakKeyword: keyword, SemicolonToken: semicolon}
}

func (p *Parser) parseContinueStatement() *syntax.ContinueStatement {
	keyword := p.matchToken(lexer.ContinueKeywordTokenKind)
	semicolon := p.matchToken(lexer.SemicolonTokenKind)
	return &syntax.ContinueStatement{ContinueKeyword: keyword, SemicolonToken: semicolon}
}

func (p *Parser) parseReturnStatement() *syntax.ReturnStatement {
	keyword := p.matchToken(lexer.ReturnKeywordTokenKind)
	var expr syntax.Expression
	if p.current().Kind != lexer.SemicolonTokenKind {
		expr = p.parseExpression()
	}
	semicolon := p.matchToken(lexer.SemicolonTokenKind)
	return &syntax.ReturnStatement{ReturnKeyword: keyword, Expr: expr, SemicolonToken: semicolon}
}

func (p *Parser) parseExpressionStatement() *syntax.ExpressionStatement {
	expr := p.parseExpression()
	semicolon := p.matchToken(lexer.SemicolonTokenKind)
	return &syntax.ExpressionStatement{Expr: expr, SemicolonToken: semicolon}
}
