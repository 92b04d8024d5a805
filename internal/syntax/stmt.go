package syntax

import (
	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/source"
)

// BlockStatement is `{ Statement* }`. It introduces a child scope during
// binding.
type BlockStatement struct {
	OpenBraceToken  lexer.Token
	Statements      []Statement
	CloseBraceToken lexer.Token
}

func (s *BlockStatement) Kind() Kind { return BlockStatementKind }
func (s *BlockStatement) Span() source.Span {
	return source.EnclosingSpan(s.OpenBraceToken.Span, s.CloseBraceToken.Span)
}
func (s *BlockStatement) Children() []Node {
	nodes := make([]Node, len(s.Statements))
	for i, st := range s.Statements {
		nodes[i] = st
	}
	return nodes
}
func (*BlockStatement) stmtNode() {}

// VariableDeclaration is `(var|const) Identifier (: Type)? (= Expression)? ;`.
// Initializer is nil when the declaration has no `= Expression`; the
// binder synthesizes a default-value expression in that case (§4.4).
type VariableDeclaration struct {
	KeywordToken    lexer.Token // var or const
	IdentifierToken lexer.Token
	TypeClause      *TypeClause
	EqualsToken     lexer.Token
	Initializer     Expression
	SemicolonToken  lexer.Token
}

func (s *VariableDeclaration) Kind() Kind { return VariableDeclarationKind }
func (s *VariableDeclaration) Span() source.Span {
	return source.EnclosingSpan(s.KeywordToken.Span, s.SemicolonToken.Span)
}
func (s *VariableDeclaration) Children() []Node {
	var nodes []Node
	if s.TypeClause != nil {
		nodes = append(nodes, s.TypeClause)
	}
	if s.Initializer != nil {
		nodes = append(nodes, s.Initializer)
	}
	return nodes
}
func (*VariableDeclaration) stmtNode() {}

// IsConst reports whether the declaration used `const` rather than `var`.
func (s *VariableDeclaration) IsConst() bool {
	return s.KeywordToken.Kind == lexer.ConstKeywordTokenKind
}

// ElseClause is the optional `else Statement` tail of an IfStatement.
type ElseClause struct {
	ElseKeyword   lexer.Token
	ElseStatement Statement
}

// IfStatement is `if Condition ThenStatement (else Statement)?`.
type IfStatement struct {
	IfKeyword     lexer.Token
	Condition     Expression
	ThenStatement Statement
	Else          *ElseClause
}

func (s *IfStatement) Kind() Kind { return IfStatementKind }
func (s *IfStatement) Span() source.Span {
	end := s.ThenStatement.Span()
	if s.Else != nil {
		end = s.Else.ElseStatement.Span()
	}
	return source.EnclosingSpan(s.IfKeyword.Span, end)
}
func (s *IfStatement) Children() []Node {
	nodes := []Node{s.Condition, s.ThenStatement}
	if s.Else != nil {
		nodes = append(nodes, s.Else.ElseStatement)
	}
	return nodes
}
func (*IfStatement) stmtNode() {}

// WhileStatement is `while Condition Body`.
type WhileStatement struct {
	WhileKeyword lexer.Token
	Condition    Expression
	Body         Statement
}

func (s *WhileStatement) Kind() Kind { return WhileStatementKind }
func (s *WhileStatement) Span() source.Span {
	return source.EnclosingSpan(s.WhileKeyword.Span, s.Body.Span())
}
func (s *WhileStatement) Children() []Node { return []Node{s.Condition, s.Body} }
func (*WhileStatement) stmtNode()          {}

// DoWhileStatement is `do Body while Condition ;`.
type DoWhileStatement struct {
	DoKeyword      lexer.Token
	Body           Statement
	WhileKeyword   lexer.Token
	Condition      Expression
	SemicolonToken lexer.Token
}

func (s *DoWhileStatement) Kind() Kind { return DoWhileStatementKind }
func (s *DoWhileStatement) Span() source.Span {
	return source.EnclosingSpan(s.DoKeyword.Span, s.SemicolonToken.Span)
}
func (s *DoWhileStatement) Children() []Node { return []Node{s.Body, s.Condition} }
func (*DoWhileStatement) stmtNode()          {}

// ForStatement is `for Identifier in LowerBound .. UpperBound Body`.
type ForStatement struct {
	ForKeyword      lexer.Token
	IdentifierToken lexer.Token
	InKeyword       lexer.Token
	LowerBound      Expression
	DotDotToken     lexer.Token
	UpperBound      Expression
	Body            Statement
}

func (s *ForStatement) Kind() Kind { return ForStatementKind }
func (s *ForStatement) Span() source.Span {
	return source.EnclosingSpan(s.ForKeyword.Span, s.Body.Span())
}
func (s *ForStatement) Children() []Node { return []Node{s.LowerBound, s.UpperBound, s.Body} }
func (*ForStatement) stmtNode()          {}

// BreakStatement is `break ;`.
type BreakStatement struct {
	BreakKeyword   lexer.Token
	SemicolonToken lexer.Token
}

func (s *BreakStatement) Kind() Kind { return BreakStatementKind }
func (s *BreakStatement) Span() source.Span {
	return source.EnclosingSpan(s.BreakKeyword.Span, s.SemicolonToken.Span)
}
func (s *BreakStatement) Children() []Node { return nil }
func (*BreakStatement) stmtNode()          {}

// ContinueStatement is `continue ;`.
type ContinueStatement struct {
	ContinueKeyword lexer.Token
	SemicolonToken  lexer.Token
}

func (s *ContinueStatement) Kind() Kind { return ContinueStatementKind }
func (s *ContinueStatement) Span() source.Span {
	return source.EnclosingSpan(s.ContinueKeyword.Span, s.SemicolonToken.Span)
}
func (s *ContinueStatement) Children() []Node { return nil }
func (*ContinueStatement) stmtNode()          {}

// ReturnStatement is `return Expression? ;`. Expr is nil for a bare return.
type ReturnStatement struct {
	ReturnKeyword  lexer.Token
	Expr           Expression
	SemicolonToken lexer.Token
}

func (s *ReturnStatement) Kind() Kind { return ReturnStatementKind }
func (s *ReturnStatement) Span() source.Span {
	return source.EnclosingSpan(s.ReturnKeyword.Span, s.SemicolonToken.Span)
}
func (s *ReturnStatement) Children() []Node {
	if s.Expr == nil {
		return nil
	}
	return []Node{s.Expr}
}
func (*ReturnStatement) stmtNode() {}

// ExpressionStatement is `Expression ;`. The binder restricts which
// expression shapes are legal here (§4.4).
type ExpressionStatement struct {
	Expr           Expression
	SemicolonToken lexer.Token
}

func (s *ExpressionStatement) Kind() Kind { return ExpressionStatementKind }
func (s *ExpressionStatement) Span() source.Span {
	return source.EnclosingSpan(s.Expr.Span(), s.SemicolonToken.Span)
}
func (s *ExpressionStatement) Children() []Node { return []Node{s.Expr} }
func (*ExpressionStatement) stmtNode()          {}
