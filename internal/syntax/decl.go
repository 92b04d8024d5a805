package syntax

import (
	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/source"
)

// Parameter is `Identifier : Type`.
type Parameter struct {
	IdentifierToken lexer.Token
	Type            *TypeClause
}

func (p *Parameter) Kind() Kind            { return ParameterKind }
func (p *Parameter) Span() source.Span     { return source.EnclosingSpan(p.IdentifierToken.Span, p.Type.Span()) }
func (p *Parameter) Children() []Node      { return []Node{p.Type} }

// FunctionDeclaration is `function Identifier ( Parameters ) (: ReturnType)? Body`.
// It appears either at compilation-unit level (a free function) or nested
// inside a ClassDeclaration's body (an instance method) — the binder, not
// the parser, decides which (§4.4's "receiver" resolution).
type FunctionDeclaration struct {
	FunctionKeyword lexer.Token
	IdentifierToken lexer.Token
	OpenParenToken  lexer.Token
	Parameters      SeparatedList[*Parameter]
	CloseParenToken lexer.Token
	ReturnType      *TypeClause
	Body            *BlockStatement
}

func (d *FunctionDeclaration) Kind() Kind { return FunctionDeclarationKind }
func (d *FunctionDeclaration) Span() source.Span {
	return source.EnclosingSpan(d.FunctionKeyword.Span, d.Body.Span())
}
func (d *FunctionDeclaration) Children() []Node {
	nodes := append([]Node{}, d.Parameters.Nodes()...)
	if d.ReturnType != nil {
		nodes = append(nodes, d.ReturnType)
	}
	nodes = append(nodes, d.Body)
	return nodes
}
func (*FunctionDeclaration) memberNode() {}

// FieldDeclaration is `(const)? Identifier : Type (= Expression)? ;`,
// legal only inside a ClassDeclaration's body.
type FieldDeclaration struct {
	ConstKeyword    *lexer.Token // nil when the field is writable
	IdentifierToken lexer.Token
	Type            *TypeClause
	EqualsToken     lexer.Token
	Initializer     Expression
	SemicolonToken  lexer.Token
}

func (d *FieldDeclaration) Kind() Kind { return FieldDeclarationKind }
func (d *FieldDeclaration) Span() source.Span {
	start := d.IdentifierToken.Span
	if d.ConstKeyword != nil {
		start = d.ConstKeyword.Span
	}
	return source.EnclosingSpan(start, d.SemicolonToken.Span)
}
func (d *FieldDeclaration) Children() []Node {
	nodes := []Node{d.Type}
	if d.Initializer != nil {
		nodes = append(nodes, d.Initializer)
	}
	return nodes
}
func (*FieldDeclaration) memberNode() {}

// IsConst reports whether the field was declared with `const`.
func (d *FieldDeclaration) IsConst() bool {
	return d.ConstKeyword != nil
}

// ClassMember is either a FieldDeclaration or a FunctionDeclaration.
type ClassMember = Member

// ClassDeclaration is `class Identifier { ClassMember* }`.
type ClassDeclaration struct {
	ClassKeyword    lexer.Token
	IdentifierToken lexer.Token
	OpenBraceToken  lexer.Token
	Members         []ClassMember
	CloseBraceToken lexer.Token
}

func (d *ClassDeclaration) Kind() Kind { return ClassDeclarationKind }
func (d *ClassDeclaration) Span() source.Span {
	return source.EnclosingSpan(d.ClassKeyword.Span, d.CloseBraceToken.Span)
}
func (d *ClassDeclaration) Children() []Node {
	nodes := make([]Node, len(d.Members))
	for i, m := range d.Members {
		nodes[i] = m
	}
	return nodes
}
func (*ClassDeclaration) memberNode() {}

// GlobalStatement wraps a top-level Statement as a compilation-unit Member.
// Only one syntax tree in a compilation may contribute global statements
// (§4.4).
type GlobalStatement struct {
	Statement Statement
}

func (g *GlobalStatement) Kind() Kind        { return GlobalStatementKind }
func (g *GlobalStatement) Span() source.Span { return g.Statement.Span() }
func (g *GlobalStatement) Children() []Node  { return []Node{g.Statement} }
func (*GlobalStatement) memberNode()         {}

// CompilationUnit is the root node of a syntax tree: an ordered sequence of
// Members (function declarations, class declarations, global statements).
type CompilationUnit struct {
	Members  []Member
	EOFToken lexer.Token
}

func (u *CompilationUnit) Kind() Kind { return CompilationUnitKind }
func (u *CompilationUnit) Span() source.Span {
	span := u.EOFToken.Span
	for _, m := range u.Members {
		span = source.EnclosingSpan(span, m.Span())
	}
	return span
}
func (u *CompilationUnit) Children() []Node {
	nodes := make([]Node, len(u.Members))
	for i, m := range u.Members {
		nodes[i] = m
	}
	return nodes
}
