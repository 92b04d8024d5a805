package syntax

import (
	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/source"
)

// LiteralExpression is an integer, float, string, char or boolean literal.
type LiteralExpression struct {
	LiteralToken lexer.Token
	Value        interface{}
}

func (e *LiteralExpression) Kind() Kind            { return LiteralExpressionKind }
func (e *LiteralExpression) Span() source.Span     { return e.LiteralToken.Span }
func (e *LiteralExpression) Children() []Node      { return nil }
func (*LiteralExpression) exprNode()               {}

// NameExpression is a bare identifier reference (a variable, function, or
// a built-in type name used as an explicit-conversion callee).
type NameExpression struct {
	IdentifierToken lexer.Token
}

func (e *NameExpression) Kind() Kind        { return NameExpressionKind }
func (e *NameExpression) Span() source.Span { return e.IdentifierToken.Span }
func (e *NameExpression) Children() []Node  { return nil }
func (*NameExpression) exprNode()           {}

// ThisExpression is the `this` receiver reference inside an instance method.
type ThisExpression struct {
	ThisToken lexer.Token
}

func (e *ThisExpression) Kind() Kind        { return ThisExpressionKind }
func (e *ThisExpression) Span() source.Span { return e.ThisToken.Span }
func (e *ThisExpression) Children() []Node  { return nil }
func (*ThisExpression) exprNode()           {}

// ParenthesizedExpression is `( Expression )`.
type ParenthesizedExpression struct {
	OpenParenToken  lexer.Token
	Expr            Expression
	CloseParenToken lexer.Token
}

func (e *ParenthesizedExpression) Kind() Kind { return ParenthesizedExpressionKind }
func (e *ParenthesizedExpression) Span() source.Span {
	return source.EnclosingSpan(e.OpenParenToken.Span, e.CloseParenToken.Span)
}
func (e *ParenthesizedExpression) Children() []Node { return []Node{e.Expr} }
func (*ParenthesizedExpression) exprNode()          {}

// UnaryExpression is a prefix `+ - ! ~` operator applied to an operand.
type UnaryExpression struct {
	OperatorToken lexer.Token
	Operand       Expression
}

func (e *UnaryExpression) Kind() Kind { return UnaryExpressionKind }
func (e *UnaryExpression) Span() source.Span {
	return source.EnclosingSpan(e.OperatorToken.Span, e.Operand.Span())
}
func (e *UnaryExpression) Children() []Node { return []Node{e.Operand} }
func (*UnaryExpression) exprNode()          {}

// BinaryExpression is `Left Operator Right`.
type BinaryExpression struct {
	Left          Expression
	OperatorToken lexer.Token
	Right         Expression
}

func (e *BinaryExpression) Kind() Kind { return BinaryExpressionKind }
func (e *BinaryExpression) Span() source.Span {
	return source.EnclosingSpan(e.Left.Span(), e.Right.Span())
}
func (e *BinaryExpression) Children() []Node { return []Node{e.Left, e.Right} }
func (*BinaryExpression) exprNode()          {}

// AssignmentExpression is `Target Operator Value`, where Operator is `=` or
// one of the compound forms (`+=`, `-=`, ...). The binder — not the parser —
// classifies Target's shape into a variable, field, or `this.field` write
// (§4.4: "Assignment splits on LHS shape").
type AssignmentExpression struct {
	Target        Expression
	OperatorToken lexer.Token
	Value         Expression
}

func (e *AssignmentExpression) Kind() Kind { return AssignmentExpressionKind }
func (e *AssignmentExpression) Span() source.Span {
	return source.EnclosingSpan(e.Target.Span(), e.Value.Span())
}
func (e *AssignmentExpression) Children() []Node { return []Node{e.Target, e.Value} }
func (*AssignmentExpression) exprNode()          {}

// IsCompound reports whether Operator is a compound-assignment operator.
func (e *AssignmentExpression) IsCompound() bool {
	return e.OperatorToken.Kind != lexer.EqualsTokenKind
}

// CallExpression is `Callee ( Arguments )`. Callee is either a
// NameExpression (free function or explicit-conversion callee) or a
// MemberAccessExpression (method call).
type CallExpression struct {
	Callee          Expression
	OpenParenToken  lexer.Token
	Arguments       SeparatedList[Expression]
	CloseParenToken lexer.Token
}

func (e *CallExpression) Kind() Kind { return CallExpressionKind }
func (e *CallExpression) Span() source.Span {
	return source.EnclosingSpan(e.Callee.Span(), e.CloseParenToken.Span)
}
func (e *CallExpression) Children() []Node {
	nodes := []Node{e.Callee}
	return append(nodes, e.Arguments.Nodes()...)
}
func (*CallExpression) exprNode() {}

// MemberAccessExpression is `Target . Member`.
type MemberAccessExpression struct {
	Target      Expression
	DotToken    lexer.Token
	MemberToken lexer.Token
}

func (e *MemberAccessExpression) Kind() Kind { return MemberAccessExpressionKind }
func (e *MemberAccessExpression) Span() source.Span {
	return source.EnclosingSpan(e.Target.Span(), e.MemberToken.Span)
}
func (e *MemberAccessExpression) Children() []Node { return []Node{e.Target} }
func (*MemberAccessExpression) exprNode()          {}

// TypeClause is `: TypeName`, used by parameters, fields, variable
// declarations and function return types.
type TypeClause struct {
	ColonToken    lexer.Token
	IdentifierToken lexer.Token
}

func (t *TypeClause) Kind() Kind { return TypeClauseKind }
func (t *TypeClause) Span() source.Span {
	return source.EnclosingSpan(t.ColonToken.Span, t.IdentifierToken.Span)
}
func (t *TypeClause) Children() []Node { return nil }

// TypeName returns the type's textual name.
func (t *TypeClause) TypeName() string {
	return t.IdentifierToken.Text
}
