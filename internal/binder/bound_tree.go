// Package binder implements the semantic analyzer: it turns a parsed
// syntax.Tree into a typed bound tree, resolving names against a
// parent-chained BoundScope, classifying conversions, folding constants,
// and accumulating diagnostics without ever aborting a binding pass.
package binder

import "github.com/lumen-lang/lumenc/internal/symbols"

// BoundKind tags every bound tree node. Like the syntax tree, the bound
// tree is a flat tagged union rather than a class hierarchy (§9's
// "tagged unions + shared accessor" design note): the lowerer and the CFG
// builder both switch on this rather than dispatching virtually.
type BoundKind int

const (
	BoundBlockStatementKind BoundKind = iota
	BoundVariableDeclarationKind
	BoundIfStatementKind
	BoundWhileStatementKind
	BoundDoWhileStatementKind
	BoundForStatementKind
	BoundBreakStatementKind
	BoundContinueStatementKind
	BoundReturnStatementKind
	BoundExpressionStatementKind
	BoundLabelStatementKind
	BoundGotoStatementKind
	BoundConditionalGotoStatementKind
	BoundNopStatementKind
	BoundSequencePointStatementKind

	BoundLiteralExpressionKind
	BoundVariableExpressionKind
	BoundAssignmentExpressionKind
	BoundCompoundAssignmentExpressionKind
	BoundFieldAccessExpressionKind
	BoundFieldAssignmentExpressionKind
	BoundCompoundFieldAssignmentExpressionKind
	BoundThisExpressionKind
	BoundCallExpressionKind
	BoundConversionExpressionKind
	BoundUnaryExpressionKind
	BoundBinaryExpressionKind
	BoundConcatExpressionKind
	BoundErrorExpressionKind
)

// BoundNode is any bound tree node.
type BoundNode interface {
	Kind() BoundKind
}

// BoundStatement is a bound node that appears in a block.
type BoundStatement interface {
	BoundNode
	boundStmtNode()
}

// BoundExpression is a bound node that produces a typed value. Constant
// returns nil when the expression is not a compile-time constant; §3's
// "BoundConstant... IsZero is a first-class predicate" invariant lives on
// the BoundConstant this returns.
type BoundExpression interface {
	BoundNode
	Type() *symbols.TypeSymbol
	Constant() *BoundConstant
	boundExprNode()
}

// BoundConstant wraps a folded compile-time value. Once constructed it is
// never mutated (§3's "constant values, once computed, are immutable").
type BoundConstant struct {
	Value interface{}
}

// NewBoundConstant wraps value as a BoundConstant.
func NewBoundConstant(value interface{}) *BoundConstant {
	return &BoundConstant{Value: value}
}

// IsZero reports whether the constant holds the numeric/boolean zero value
// for its underlying Go type — the predicate the binder's compile-time
// DivideByZero check is built on.
func (c *BoundConstant) IsZero() bool {
	if c == nil {
		return false
	}
	switch v := c.Value.(type) {
	case int8:
		return v == 0
	case int16:
		return v == 0
	case int32:
		return v == 0
	case int64:
		return v == 0
	case uint8:
		return v == 0
	case uint16:
		return v == 0
	case uint32:
		return v == 0
	case uint64:
		return v == 0
	case float32:
		return v == 0
	case float64:
		return v == 0
	case bool:
		return !v
	default:
		return false
	}
}

// BoundLabel is a lowering-time jump target. It carries a name for
// diagnostics/debugging but, per §4.5, compares by identity (pointer
// equality), not by name — two labels named "L1" in different functions
// are never the same label.
type BoundLabel struct {
	Name string
}

// NewBoundLabel creates a fresh label. Callers (the lowerer's per-function
// monotonic counter) are responsible for giving it a unique, readable name.
func NewBoundLabel(name string) *BoundLabel {
	return &BoundLabel{Name: name}
}
