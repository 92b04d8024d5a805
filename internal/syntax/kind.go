// Package syntax defines the syntax tree produced by the parser: node
// kinds, the keyword/operator precedence facts shared with the binder, and
// the tagged node hierarchy itself.
package syntax

// Kind tags every syntax node. The hierarchy is a flat tagged union rather
// than a class hierarchy (§9 design note): each concrete node type also
// satisfies the relevant marker interface (Expression, Statement, Member).
type Kind int

const (
	CompilationUnitKind Kind = iota

	// Members.
	FunctionDeclarationKind
	ClassDeclarationKind
	FieldDeclarationKind
	GlobalStatementKind
	ParameterKind

	// Statements.
	BlockStatementKind
	VariableDeclarationKind
	IfStatementKind
	WhileStatementKind
	DoWhileStatementKind
	ForStatementKind
	BreakStatementKind
	ContinueStatementKind
	ReturnStatementKind
	ExpressionStatementKind

	// Expressions.
	LiteralExpressionKind
	NameExpressionKind
	ThisExpressionKind
	ParenthesizedExpressionKind
	UnaryExpressionKind
	BinaryExpressionKind
	AssignmentExpressionKind
	CallExpressionKind
	MemberAccessExpressionKind

	// Type clause.
	TypeClauseKind
)

func (k Kind) String() string {
	switch k {
	case CompilationUnitKind:
		return "CompilationUnit"
	case FunctionDeclarationKind:
		return "FunctionDeclaration"
	case ClassDeclarationKind:
		return "ClassDeclaration"
	case FieldDeclarationKind:
		return "FieldDeclaration"
	case GlobalStatementKind:
		return "GlobalStatement"
	case ParameterKind:
		return "Parameter"
	case BlockStatementKind:
		return "BlockStatement"
	case VariableDeclarationKind:
		return "VariableDeclaration"
	case IfStatementKind:
		return "IfStatement"
	case WhileStatementKind:
		return "WhileStatement"
	case DoWhileStatementKind:
		return "DoWhileStatement"
	case ForStatementKind:
		return "ForStatement"
	case BreakStatementKind:
		return "BreakStatement"
	case ContinueStatementKind:
		return "ContinueStatement"
	case ReturnStatementKind:
		return "ReturnStatement"
	case ExpressionStatementKind:
		return "ExpressionStatement"
	case LiteralExpressionKind:
		return "LiteralExpression"
	case NameExpressionKind:
		return "NameExpression"
	case ThisExpressionKind:
		return "ThisExpression"
	case ParenthesizedExpressionKind:
		return "ParenthesizedExpression"
	case UnaryExpressionKind:
		return "UnaryExpression"
	case BinaryExpressionKind:
		return "BinaryExpression"
	case AssignmentExpressionKind:
		return "AssignmentExpression"
	case CallExpressionKind:
		return "CallExpression"
	case MemberAccessExpressionKind:
		return "MemberAccessExpression"
	case TypeClauseKind:
		return "TypeClause"
	default:
		return "Unknown"
	}
}
