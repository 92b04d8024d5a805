package binder

import (
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// BoundLiteralExpression is a literal value whose type is known outright —
// produced both directly from syntax.LiteralExpression and as the result
// of constant folding (§4.4's folding rule replaces a foldable subtree
// with one of these rather than carrying the original shape forward).
type BoundLiteralExpression struct {
	ValueType  *symbols.TypeSymbol
	ValueValue interface{}
}

func (*BoundLiteralExpression) Kind() BoundKind                { return BoundLiteralExpressionKind }
func (e *BoundLiteralExpression) Type() *symbols.TypeSymbol     { return e.ValueType }
func (e *BoundLiteralExpression) Constant() *BoundConstant      { return NewBoundConstant(e.ValueValue) }
func (*BoundLiteralExpression) boundExprNode()                 {}

// BoundVariableExpression reads a variable, local, parameter, or global.
type BoundVariableExpression struct {
	Variable *symbols.VariableSymbol
}

func (*BoundVariableExpression) Kind() BoundKind            { return BoundVariableExpressionKind }
func (e *BoundVariableExpression) Type() *symbols.TypeSymbol { return e.Variable.Type }
func (e *BoundVariableExpression) Constant() *BoundConstant {
	if !e.Variable.IsConstant() {
		return nil
	}
	return NewBoundConstant(e.Variable.ConstantValue)
}
func (*BoundVariableExpression) boundExprNode() {}

// BoundAssignmentExpression assigns Value to Variable and evaluates to the
// assigned value (§4.4's assignment-shape dispatch, variable case).
type BoundAssignmentExpression struct {
	Variable *symbols.VariableSymbol
	Value    BoundExpression
}

func (*BoundAssignmentExpression) Kind() BoundKind            { return BoundAssignmentExpressionKind }
func (e *BoundAssignmentExpression) Type() *symbols.TypeSymbol { return e.Variable.Type }
func (*BoundAssignmentExpression) Constant() *BoundConstant   { return nil }
func (*BoundAssignmentExpression) boundExprNode()             {}

// BoundCompoundAssignmentExpression is `x += value` and friends, still in
// compound form; the lowerer desugars it to a plain BoundAssignmentExpression
// over a BoundBinaryExpression before the CFG builder ever sees it.
type BoundCompoundAssignmentExpression struct {
	Variable *symbols.VariableSymbol
	Op       syntax.BinaryOperatorKind
	Value    BoundExpression
}

func (*BoundCompoundAssignmentExpression) Kind() BoundKind { return BoundCompoundAssignmentExpressionKind }
func (e *BoundCompoundAssignmentExpression) Type() *symbols.TypeSymbol {
	return e.Variable.Type
}
func (*BoundCompoundAssignmentExpression) Constant() *BoundConstant { return nil }
func (*BoundCompoundAssignmentExpression) boundExprNode()           {}

// BoundFieldAccessExpression reads Field off Instance — the bound form of
// both `name.field` and `this.field` (§4.4's member-access resolution).
type BoundFieldAccessExpression struct {
	Instance BoundExpression
	Field    *symbols.FieldSymbol
}

func (*BoundFieldAccessExpression) Kind() BoundKind            { return BoundFieldAccessExpressionKind }
func (e *BoundFieldAccessExpression) Type() *symbols.TypeSymbol { return e.Field.Type }
func (e *BoundFieldAccessExpression) Constant() *BoundConstant {
	if !e.Field.Const || e.Field.ConstantValue == nil {
		return nil
	}
	return NewBoundConstant(e.Field.ConstantValue)
}
func (*BoundFieldAccessExpression) boundExprNode() {}

// BoundFieldAssignmentExpression assigns Value to Field on Instance.
type BoundFieldAssignmentExpression struct {
	Instance BoundExpression
	Field    *symbols.FieldSymbol
	Value    BoundExpression
}

func (*BoundFieldAssignmentExpression) Kind() BoundKind            { return BoundFieldAssignmentExpressionKind }
func (e *BoundFieldAssignmentExpression) Type() *symbols.TypeSymbol { return e.Field.Type }
func (*BoundFieldAssignmentExpression) Constant() *BoundConstant   { return nil }
func (*BoundFieldAssignmentExpression) boundExprNode()             {}

// BoundCompoundFieldAssignmentExpression is `instance.field += value`,
// still in compound form until the lowerer desugars it.
type BoundCompoundFieldAssignmentExpression struct {
	Instance BoundExpression
	Field    *symbols.FieldSymbol
	Op       syntax.BinaryOperatorKind
	Value    BoundExpression
}

func (*BoundCompoundFieldAssignmentExpression) Kind() BoundKind {
	return BoundCompoundFieldAssignmentExpressionKind
}
func (e *BoundCompoundFieldAssignmentExpression) Type() *symbols.TypeSymbol { return e.Field.Type }
func (*BoundCompoundFieldAssignmentExpression) Constant() *BoundConstant   { return nil }
func (*BoundCompoundFieldAssignmentExpression) boundExprNode()             {}

// BoundThisExpression resolves `this` inside an instance method body.
type BoundThisExpression struct {
	ClassType *symbols.TypeSymbol
}

func (*BoundThisExpression) Kind() BoundKind            { return BoundThisExpressionKind }
func (e *BoundThisExpression) Type() *symbols.TypeSymbol { return e.ClassType }
func (*BoundThisExpression) Constant() *BoundConstant    { return nil }
func (*BoundThisExpression) boundExprNode()              {}

// BoundCallExpression is a resolved call: Function already picked by
// overload resolution, Instance set for an instance-method call (nil for a
// free function or a synthesized constructor call), Arguments already
// converted to each parameter's type.
type BoundCallExpression struct {
	Function  *symbols.FunctionSymbol
	Instance  BoundExpression
	Arguments []BoundExpression
}

func (*BoundCallExpression) Kind() BoundKind            { return BoundCallExpressionKind }
func (e *BoundCallExpression) Type() *symbols.TypeSymbol { return e.Function.ReturnType }
func (*BoundCallExpression) Constant() *BoundConstant    { return nil }
func (*BoundCallExpression) boundExprNode()              {}

// BoundConversionExpression is an explicit or implicit runtime conversion
// that the binder could not fold to a constant. TargetType is the result
// type; ConversionKind records which lattice rule justified inserting it
// (Implicit conversions are inserted silently, Explicit ones only appear
// where the source used a conversion-call syntax, §4.4).
type BoundConversionExpression struct {
	TargetType     *symbols.TypeSymbol
	Expr           BoundExpression
	ConversionKind ConversionKind
}

func (*BoundConversionExpression) Kind() BoundKind            { return BoundConversionExpressionKind }
func (e *BoundConversionExpression) Type() *symbols.TypeSymbol { return e.TargetType }
func (*BoundConversionExpression) Constant() *BoundConstant   { return nil }
func (*BoundConversionExpression) boundExprNode()             {}

// BoundUnaryExpression.
type BoundUnaryExpression struct {
	Op         syntax.UnaryOperatorKind
	Operand    BoundExpression
	ResultType *symbols.TypeSymbol
}

func (*BoundUnaryExpression) Kind() BoundKind            { return BoundUnaryExpressionKind }
func (e *BoundUnaryExpression) Type() *symbols.TypeSymbol { return e.ResultType }
func (*BoundUnaryExpression) Constant() *BoundConstant    { return nil }
func (*BoundUnaryExpression) boundExprNode()              {}

// BoundBinaryExpression. Left and Right have already been promoted to a
// common operand type by the binder's implicit-conversion-on-operands
// rule; ResultType is the (possibly different, e.g. comparisons yielding
// bool) result of Op.
type BoundBinaryExpression struct {
	Op         syntax.BinaryOperatorKind
	Left       BoundExpression
	Right      BoundExpression
	ResultType *symbols.TypeSymbol
}

func (*BoundBinaryExpression) Kind() BoundKind            { return BoundBinaryExpressionKind }
func (e *BoundBinaryExpression) Type() *symbols.TypeSymbol { return e.ResultType }
func (*BoundBinaryExpression) Constant() *BoundConstant    { return nil }
func (*BoundBinaryExpression) boundExprNode()              {}

// BoundConcatExpression is a lowering-time node: the flattened n-ary form
// of a chain of `+` over strings, with adjacent constant parts already
// folded into one (§4.5's string-concatenation optimization). The binder
// never produces this node — only the lowerer does, rewriting a nested
// BoundBinaryExpression chain into it.
type BoundConcatExpression struct {
	Parts []BoundExpression
}

func (*BoundConcatExpression) Kind() BoundKind            { return BoundConcatExpressionKind }
func (*BoundConcatExpression) Type() *symbols.TypeSymbol   { return symbols.String }
func (*BoundConcatExpression) Constant() *BoundConstant    { return nil }
func (*BoundConcatExpression) boundExprNode()              {}

// BoundErrorExpression stands in for an expression the binder could not
// make sense of (unresolved name, malformed call, ...). Its type is
// symbols.Error, which the conversion lattice treats as identity-
// convertible to anything so one bad expression never cascades into a
// pile of unrelated type-mismatch diagnostics (§4.4's error-suppression
// rule).
type BoundErrorExpression struct{}

func (*BoundErrorExpression) Kind() BoundKind            { return BoundErrorExpressionKind }
func (*BoundErrorExpression) Type() *symbols.TypeSymbol   { return symbols.Error }
func (*BoundErrorExpression) Constant() *BoundConstant    { return nil }
func (*BoundErrorExpression) boundExprNode()              {}
