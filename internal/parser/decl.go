package parser

import (
	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// parseMember dispatches on the current token to a function declaration, a
// class declaration, or a global statement — the three productions legal
// at compilation-unit level.
func (p *Parser) parseMember() syntax.Member {
	switch p.current().Kind {
	case lexer.FunctionKeywordTokenKind:
		return p.parseFunctionDeclaration()
	case lexer.ClassKeywordTokenKind:
		return p.parseClassDeclaration()
	default:
		return &syntax.GlobalStatement{Statement: p.parseStatement()}
	}
}

// parseClassMember dispatches between the two productions legal inside a
// class body: a nested method (FunctionDeclaration) or a field.
func (p *Parser) parseClassMember() syntax.ClassMember {
	if p.current().Kind == lexer.FunctionKeywordTokenKind {
		return p.parseFunctionDeclaration()
	}
	return p.parseFieldDeclaration()
}

func (p *Parser) parseFunctionDeclaration() *syntax.FunctionDeclaration {
	keyword := p.matchToken(lexer.FunctionKeywordTokenKind)
	ident := p.matchToken(lexer.IdentifierTokenKind)
	open := p.matchToken(lexer.OpenParenTokenKind)
	params := p.parseParameterList()
	close := p.matchToken(lexer.CloseParenTokenKind)

	var returnType *syntax.TypeClause
	if p.current().Kind == lexer.ColonTokenKind {
		returnType = p.parseTypeClause()
	}

	body := p.parseBlockStatement()

	return &syntax.FunctionDeclaration{
		FunctionKeyword: keyword,
		IdentifierToken: ident,
		OpenParenToken:  open,
		Parameters:      params,
		CloseParenToken: close,
		ReturnType:      returnType,
		Body:            body,
	}
}

func (p *Parser) parseParameterList() syntax.SeparatedList[*syntax.Parameter] {
	var list syntax.SeparatedList[*syntax.Parameter]
	for p.current().Kind != lexer.CloseParenTokenKind && !p.atEnd() {
		ident := p.matchToken(lexer.IdentifierTokenKind)
		typeClause := p.parseTypeClause()
		list.Elements = append(list.Elements, &syntax.Parameter{IdentifierToken: ident, Type: typeClause})
		if p.current().Kind != lexer.CommaTokenKind {
			break
		}
		list.Separators = append(list.Separators, p.nextToken())
	}
	return list
}

func (p *Parser) parseTypeClause() *syntax.TypeClause {
	colon := p.matchToken(lexer.ColonTokenKind)
	ident := p.parseTypeNameToken()
	return &syntax.TypeClause{ColonToken: colon, IdentifierToken: ident}
}

// parseTypeNameToken accepts either a plain identifier or one of the
// built-in type keywords (object, int32, string, ...) as a type name,
// normalizing it to an IdentifierTokenKind-shaped token so TypeClause
// never has to special-case keyword-typed type names downstream.
func (p *Parser) parseTypeNameToken() lexer.Token {
	cur := p.current()
	if cur.Kind == lexer.IdentifierTokenKind || isBuiltinTypeKeyword(cur.Kind) {
		return p.nextToken()
	}
	return p.matchToken(lexer.IdentifierTokenKind)
}

func isBuiltinTypeKeyword(kind lexer.TokenKind) bool {
	return kind >= lexer.ObjectKeywordTokenKind && kind <= lexer.VoidKeywordTokenKind
}

func (p *Parser) parseClassDeclaration() *syntax.ClassDeclaration {
	keyword := p.matchToken(lexer.ClassKeywordTokenKind)
	ident := p.matchToken(lexer.IdentifierTokenKind)
	open := p.matchToken(lexer.OpenBraceTokenKind)

	var members []syntax.ClassMember
	for p.current().Kind != lexer.CloseBraceTokenKind && !p.atEnd() {
		prevPos := p.pos
		members = append(members, p.parseClassMember())
		if p.pos == prevPos {
			p.skipToken()
		}
	}
	close := p.matchToken(lexer.CloseBraceTokenKind)

	return &syntax.ClassDeclaration{
		ClassKeyword:    keyword,
		IdentifierToken: ident,
		OpenBraceToken:  open,
		Members:         members,
		CloseBraceToken: close,
	}
}

func (p *Parser) parseFieldDeclaration() *syntax.FieldDeclaration {
	var constKeyword *lexer.Token
	if p.current().Kind == lexer.ConstKeywordTokenKind {
		tok := p.nextToken()
		constKeyword = &tok
	}
	ident := p.matchToken(lexer.IdentifierTokenKind)
	typeClause := p.parseTypeClause()

	var equals lexer.Token
	var initializer syntax.Expression
	if p.current().Kind == lexer.EqualsTokenKind {
		equals = p.nextToken()
		initializer = p.parseExpression()
	}
	semicolon := p.matchToken(lexer.SemicolonTokenKind)

	return &syntax.FieldDeclaration{
		ConstKeyword:    constKeyword,
		IdentifierToken: ident,
		Type:            typeClause,
		EqualsToken:     equals,
		Initializer:     initializer,
		SemicolonToken:  semicolon,
	}
}
