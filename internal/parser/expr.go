package parser

import (
	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

func (p *Parser) parseExpression() syntax.Expression {
	return p.parseAssignmentExpression()
}

// parseAssignmentExpression binds Target and Operator together but leaves
// shape classification (variable vs. field vs. this.field) to the binder
// (§4.4). Assignment is right-associative and sits below every binary
// operator.
func (p *Parser) parseAssignmentExpression() syntax.Expression {
	left := p.parseBinaryExpression(0)
	if syntax.IsAssignmentOperator(p.current().Kind) {
		op := p.nextToken()
		value := p.parseAssignmentExpression()
		return &syntax.AssignmentExpression{Target: left, OperatorToken: op, Value: value}
	}
	return left
}

func unaryPrecedenceFor(kind lexer.TokenKind) int {
	if _, ok := syntax.UnaryOperatorKindFromToken(kind); ok {
		return syntax.UnaryOperatorPrecedence
	}
	return 0
}

// parseBinaryExpression implements Pratt-style precedence climbing: a
// prefix unary operator recurses at its own (fixed) precedence, and the
// trailing loop only consumes a binary operator whose precedence is
// strictly greater than parentPrecedence.
func (p *Parser) parseBinaryExpression(parentPrecedence int) syntax.Expression {
	var left syntax.Expression
	if unaryPrec := unaryPrecedenceFor(p.current().Kind); unaryPrec != 0 && unaryPrec >= parentPrecedence {
		op := p.nextToken()
		operand := p.parseBinaryExpression(unaryPrec)
		left = &syntax.UnaryExpression{OperatorToken: op, Operand: operand}
	} else {
		left = p.parsePostfixExpression(p.parsePrimaryExpression())
	}

	for {
		precedence := syntax.BinaryOperatorPrecedence(p.current().Kind)
		if precedence == 0 || precedence <= parentPrecedence {
			break
		}
		op := p.nextToken()
		right := p.parseBinaryExpression(precedence)
		left = &syntax.BinaryExpression{Left: left, OperatorToken: op, Right: right}
	}
	return left
}

// parsePostfixExpression chains call and member-access suffixes onto expr,
// e.g. `a.b(c).d`.
func (p *Parser) parsePostfixExpression(expr syntax.Expression) syntax.Expression {
	for {
		switch p.current().Kind {
		case lexer.OpenParenTokenKind:
			expr = p.parseCallExpression(expr)
		case lexer.DotTokenKind:
			dot := p.nextToken()
			member := p.matchToken(lexer.IdentifierTokenKind)
			expr = &syntax.MemberAccessExpression{Target: expr, DotToken: dot, MemberToken: member}
		default:
			return expr
		}
	}
}

func (p *Parser) parseCallExpression(callee syntax.Expression) *syntax.CallExpression {
	open := p.matchToken(lexer.OpenParenTokenKind)
	var args syntax.SeparatedList[syntax.Expression]
	for p.current().Kind != lexer.CloseParenTokenKind && !p.atEnd() {
		args.Elements = append(args.Elements, p.parseExpression())
		if p.current().Kind != lexer.CommaTokenKind {
			break
		}
		args.Separators = append(args.Separators, p.nextToken())
	}
	close := p.matchToken(lexer.CloseParenTokenKind)
	return &syntax.CallExpression{Callee: callee, OpenParenToken: open, Arguments: args, CloseParenToken: close}
}

func (p *Parser) parsePrimaryExpression() syntax.Expression {
	switch p.current().Kind {
	case lexer.IntegerLiteralTokenKind, lexer.FloatLiteralTokenKind,
		lexer.StringLiteralTokenKind, lexer.CharLiteralTokenKind,
		lexer.TrueKeywordTokenKind, lexer.FalseKeywordTokenKind:
		tok := p.nextToken()
		return &syntax.LiteralExpression{LiteralToken: tok, Value: tok.Value}
	case lexer.ThisKeywordTokenKind:
		return &syntax.ThisExpression{ThisToken: p.nextToken()}
	case lexer.OpenParenTokenKind:
		open := p.nextToken()
		expr := p.parseExpression()
		close := p.matchToken(lexer.CloseParenTokenKind)
		return &syntax.ParenthesizedExpression{OpenParenToken: open, Expr: expr, CloseParenToken: close}
	case lexer.IdentifierTokenKind:
		return &syntax.NameExpression{IdentifierToken: p.nextToken()}
	}
	if isBuiltinTypeKeyword(p.current().Kind) {
		// A built-in type name used as a bare expression is always the
		// callee of an explicit conversion, e.g. `int32(x)` (§4.4 step 1
		// of call-expression binding).
		return &syntax.NameExpression{IdentifierToken: p.nextToken()}
	}
	return &syntax.NameExpression{IdentifierToken: p.matchToken(lexer.IdentifierTokenKind)}
}
