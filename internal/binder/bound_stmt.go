package binder

import (
	"github.com/lumen-lang/lumenc/internal/source"
	"github.com/lumen-lang/lumenc/internal/symbols"
)

// BoundBlockStatement is an ordered sequence of bound statements; binding a
// syntax.BlockStatement always produces exactly one of these, even when its
// body is empty (§4.4 phase 3's statement-binding rules).
type BoundBlockStatement struct {
	Statements []BoundStatement
}

func (*BoundBlockStatement) Kind() BoundKind { return BoundBlockStatementKind }
func (*BoundBlockStatement) boundStmtNode()  {}

// BoundVariableDeclaration binds `var`/`const`. Initializer is never nil:
// a declaration with no syntax initializer gets the type's DefaultValue
// folded in as a BoundLiteralExpression (§4.4's default-value synthesis).
type BoundVariableDeclaration struct {
	Variable    *symbols.VariableSymbol
	Initializer BoundExpression
}

func (*BoundVariableDeclaration) Kind() BoundKind { return BoundVariableDeclarationKind }
func (*BoundVariableDeclaration) boundStmtNode()  {}

// BoundIfStatement. Else is nil when the syntax form had no else clause.
type BoundIfStatement struct {
	Condition BoundExpression
	Then      BoundStatement
	Else      BoundStatement
}

func (*BoundIfStatement) Kind() BoundKind { return BoundIfStatementKind }
func (*BoundIfStatement) boundStmtNode()  {}

// BoundWhileStatement. BreakLabel/ContinueLabel are allocated at bind time
// so that break/continue statements in the body can resolve against them
// before the lowerer ever runs.
type BoundWhileStatement struct {
	Condition     BoundExpression
	Body          BoundStatement
	BreakLabel    *BoundLabel
	ContinueLabel *BoundLabel
}

func (*BoundWhileStatement) Kind() BoundKind { return BoundWhileStatementKind }
func (*BoundWhileStatement) boundStmtNode()  {}

// BoundDoWhileStatement.
type BoundDoWhileStatement struct {
	Body          BoundStatement
	Condition     BoundExpression
	BreakLabel    *BoundLabel
	ContinueLabel *BoundLabel
}

func (*BoundDoWhileStatement) Kind() BoundKind { return BoundDoWhileStatementKind }
func (*BoundDoWhileStatement) boundStmtNode()  {}

// BoundForStatement binds the `for i in lo .. hi` shape down to its three
// load-bearing parts: the freshly introduced int32 loop Variable, its
// LowerBound/UpperBound, and the Body. The increment and the inclusive
// `i <= hi` comparison are implicit in the node rather than spelled out,
// same as the syntax form restricts them (§4.2's ForStatement grammar).
type BoundForStatement struct {
	Variable      *symbols.VariableSymbol
	LowerBound    BoundExpression
	UpperBound    BoundExpression
	Body          BoundStatement
	BreakLabel    *BoundLabel
	ContinueLabel *BoundLabel
}

func (*BoundForStatement) Kind() BoundKind { return BoundForStatementKind }
func (*BoundForStatement) boundStmtNode()  {}

// BoundBreakStatement jumps to the label of the nearest enclosing loop.
type BoundBreakStatement struct {
	Label *BoundLabel
}

func (*BoundBreakStatement) Kind() BoundKind { return BoundBreakStatementKind }
func (*BoundBreakStatement) boundStmtNode()  {}

// BoundContinueStatement jumps to the nearest enclosing loop's continue
// target.
type BoundContinueStatement struct {
	Label *BoundLabel
}

func (*BoundContinueStatement) Kind() BoundKind { return BoundContinueStatementKind }
func (*BoundContinueStatement) boundStmtNode()  {}

// BoundReturnStatement. Expr is nil for a bare `return;` inside a void
// function.
type BoundReturnStatement struct {
	Expr BoundExpression
}

func (*BoundReturnStatement) Kind() BoundKind { return BoundReturnStatementKind }
func (*BoundReturnStatement) boundStmtNode()  {}

// BoundExpressionStatement wraps a bound expression used for its side
// effect — a call or an assignment, per §4.4's restricted expression-
// statement shapes.
type BoundExpressionStatement struct {
	Expr BoundExpression
}

func (*BoundExpressionStatement) Kind() BoundKind { return BoundExpressionStatementKind }
func (*BoundExpressionStatement) boundStmtNode()  {}

// BoundLabelStatement marks a jump target. Introduced only by the lowerer.
type BoundLabelStatement struct {
	Label *BoundLabel
}

func (*BoundLabelStatement) Kind() BoundKind { return BoundLabelStatementKind }
func (*BoundLabelStatement) boundStmtNode()  {}

// BoundGotoStatement is an unconditional jump. Introduced only by the
// lowerer.
type BoundGotoStatement struct {
	Label *BoundLabel
}

func (*BoundGotoStatement) Kind() BoundKind { return BoundGotoStatementKind }
func (*BoundGotoStatement) boundStmtNode()  {}

// BoundConditionalGotoStatement jumps to Label when Condition evaluates to
// JumpIfTrue. Introduced only by the lowerer.
type BoundConditionalGotoStatement struct {
	Label      *BoundLabel
	Condition  BoundExpression
	JumpIfTrue bool
}

func (*BoundConditionalGotoStatement) Kind() BoundKind { return BoundConditionalGotoStatementKind }
func (*BoundConditionalGotoStatement) boundStmtNode()  {}

// BoundNopStatement is a statement that does nothing; the lowerer and CFG
// builder both treat it as a harmless placeholder rather than special-
// casing empty blocks.
type BoundNopStatement struct{}

func (*BoundNopStatement) Kind() BoundKind { return BoundNopStatementKind }
func (*BoundNopStatement) boundStmtNode()  {}

// BoundSequencePointStatement marks a statement boundary surviving lowering
// for diagnostics/debugging purposes; it carries no control-flow meaning of
// its own. The binder wraps every direct statement of a block with one of
// these, recording where that statement came from; the lowerer carries the
// Location forward onto whichever lowered statement ends up first in its
// place, so internal/cfg can still point an UnreachableCode diagnostic at
// real source even after desugaring has rewritten the statement itself away.
type BoundSequencePointStatement struct {
	Statement BoundStatement
	Location  source.Location
}

func (*BoundSequencePointStatement) Kind() BoundKind { return BoundSequencePointStatementKind }
func (*BoundSequencePointStatement) boundStmtNode()  {}
