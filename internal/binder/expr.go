package binder

import (
	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// bindExpression dispatches on the syntax expression's concrete type.
// Every branch returns a usable BoundExpression — unresolved names, bad
// operators and the like fall back to a BoundErrorExpression rather than
// nil, propagating the error sentinel instead of aborting (§7).
func (b *Binder) bindExpression(expr syntax.Expression) BoundExpression {
	switch e := expr.(type) {
	case *syntax.LiteralExpression:
		return b.bindLiteral(e)
	case *syntax.NameExpression:
		return b.bindName(e)
	case *syntax.ThisExpression:
		return b.bindThis(e)
	case *syntax.ParenthesizedExpression:
		return b.bindExpression(e.Expr)
	case *syntax.UnaryExpression:
		return b.bindUnary(e)
	case *syntax.BinaryExpression:
		return b.bindBinary(e)
	case *syntax.AssignmentExpression:
		return b.bindAssignment(e)
	case *syntax.CallExpression:
		return b.bindCall(e)
	case *syntax.MemberAccessExpression:
		return b.bindMemberAccess(e)
	default:
		return &BoundErrorExpression{}
	}
}

func (b *Binder) bindLiteral(e *syntax.LiteralExpression) BoundExpression {
	switch e.LiteralToken.Kind {
	case lexer.CharLiteralTokenKind:
		return &BoundLiteralExpression{ValueType: symbols.Char, ValueValue: e.Value}
	case lexer.StringLiteralTokenKind:
		return &BoundLiteralExpression{ValueType: symbols.String, ValueValue: e.Value}
	case lexer.TrueKeywordTokenKind, lexer.FalseKeywordTokenKind:
		return &BoundLiteralExpression{ValueType: symbols.Bool, ValueValue: e.Value}
	default:
		return &BoundLiteralExpression{ValueType: literalNumericTypeOf(e.Value), ValueValue: e.Value}
	}
}

func literalNumericTypeOf(v interface{}) *symbols.TypeSymbol {
	switch v.(type) {
	case int32:
		return symbols.Int32
	case uint32:
		return symbols.UInt32
	case int64:
		return symbols.Int64
	case uint64:
		return symbols.UInt64
	case float32:
		return symbols.Float32
	case float64:
		return symbols.Float64
	default:
		return symbols.Error
	}
}

func (b *Binder) bindName(e *syntax.NameExpression) BoundExpression {
	name := e.IdentifierToken.Text
	if v, ok := b.scope.TryLookupVariable(name); ok {
		return &BoundVariableExpression{Variable: v}
	}
	if _, ok := b.scope.TryLookupFunction(name); ok {
		b.error(e, diag.NotAVariable, "%q is a function; call it instead of using it as a value", name)
		return &BoundErrorExpression{}
	}
	if _, ok := b.scope.TryLookupClass(name); ok {
		b.error(e, diag.NotAVariable, "%q is a class; construct it with a call instead of using it as a value", name)
		return &BoundErrorExpression{}
	}
	b.error(e, diag.UndefinedVariable, "undefined variable %q", name)
	return &BoundErrorExpression{}
}

func (b *Binder) bindThis(e *syntax.ThisExpression) BoundExpression {
	if b.class == nil {
		b.error(e, diag.CannotUseThisOutsideOfReceiver, "this is only valid inside an instance method")
		return &BoundErrorExpression{}
	}
	return &BoundThisExpression{ClassType: b.class.Type}
}

func (b *Binder) bindUnary(e *syntax.UnaryExpression) BoundExpression {
	operand := b.bindExpression(e.Operand)
	op, ok := syntax.UnaryOperatorKindFromToken(e.OperatorToken.Kind)
	if !ok {
		return &BoundErrorExpression{}
	}
	if operand.Type() == symbols.Error {
		return &BoundErrorExpression{}
	}

	resultType, defined := unaryResultType(op, operand.Type())
	if !defined {
		b.error(e, diag.UndefinedUnaryOperator, "operator %s is not defined for type %s", op, operand.Type())
		return &BoundErrorExpression{}
	}

	if c := operand.Constant(); c != nil {
		if folded, ok := FoldUnary(op, c, operand.Type(), resultType); ok {
			return &BoundLiteralExpression{ValueType: resultType, ValueValue: folded.Value}
		}
	}
	return &BoundUnaryExpression{Op: op, Operand: operand, ResultType: resultType}
}

func unaryResultType(op syntax.UnaryOperatorKind, t *symbols.TypeSymbol) (*symbols.TypeSymbol, bool) {
	switch op {
	case syntax.UnaryIdentity, syntax.UnaryNegation:
		if t.IsNumeric() {
			return t, true
		}
	case syntax.UnaryLogicalNegation:
		if t == symbols.Bool {
			return symbols.Bool, true
		}
	case syntax.UnaryBitwiseComplement:
		if t.IsNumeric() && !t.IsFloat() {
			return t, true
		}
	}
	return nil, false
}

func (b *Binder) bindBinary(e *syntax.BinaryExpression) BoundExpression {
	left := b.bindExpression(e.Left)
	right := b.bindExpression(e.Right)
	op, ok := syntax.BinaryOperatorKindFromToken(e.OperatorToken.Kind)
	if !ok {
		return &BoundErrorExpression{}
	}
	if left.Type() == symbols.Error || right.Type() == symbols.Error {
		return &BoundErrorExpression{}
	}

	if left.Type() != right.Type() {
		leftToRight := Classify(left.Type(), right.Type())
		rightToLeft := Classify(right.Type(), left.Type())
		switch {
		case leftToRight == ConversionImplicit && rightToLeft != ConversionImplicit:
			left = b.convertTo(e.Left, left, right.Type(), false)
		case rightToLeft == ConversionImplicit && leftToRight != ConversionImplicit:
			right = b.convertTo(e.Right, right, left.Type(), false)
		}
	}

	operandType, resultType, defined := binaryResultType(op, left.Type(), right.Type())
	if !defined {
		b.error(e, diag.UndefinedBinaryOperator, "operator %s is not defined for %s and %s", op, left.Type(), right.Type())
		return &BoundErrorExpression{}
	}

	if op == syntax.BinaryDivide || op == syntax.BinaryModulo {
		if rc := right.Constant(); rc != nil && rc.IsZero() {
			b.error(e.Right, diag.DivideByZero, "division by a compile-time zero constant")
			return &BoundErrorExpression{}
		}
	}

	if lc, rc := left.Constant(), right.Constant(); lc != nil && rc != nil {
		if folded, ok := FoldBinary(op, lc, rc, operandType, resultType); ok {
			return &BoundLiteralExpression{ValueType: resultType, ValueValue: folded.Value}
		}
	}

	return &BoundBinaryExpression{Op: op, Left: left, Right: right, ResultType: resultType}
}

// binaryResultType defines which (operand type, result type) pair op
// produces for two already-promoted operands of the same type, or reports
// the operator as undefined for that type. Heterogeneous operand types
// (after promotion failed to unify them) are always undefined.
func binaryResultType(op syntax.BinaryOperatorKind, left, right *symbols.TypeSymbol) (operandType, resultType *symbols.TypeSymbol, ok bool) {
	if left != right {
		return nil, nil, false
	}
	t := left
	switch op {
	case syntax.BinaryAdd:
		if t.IsNumeric() || t == symbols.String {
			return t, t, true
		}
	case syntax.BinarySubtract, syntax.BinaryMultiply, syntax.BinaryDivide:
		if t.IsNumeric() {
			return t, t, true
		}
	case syntax.BinaryModulo, syntax.BinaryBitwiseAnd, syntax.BinaryBitwiseOr, syntax.BinaryBitwiseXor:
		if t.IsNumeric() && !t.IsFloat() {
			return t, t, true
		}
	case syntax.BinaryLogicalAnd, syntax.BinaryLogicalOr:
		if t == symbols.Bool {
			return t, t, true
		}
	case syntax.BinaryEquals, syntax.BinaryNotEquals:
		if t.IsNumeric() || t == symbols.Bool || t == symbols.String || t == symbols.Char || t.IsClass() {
			return t, symbols.Bool, true
		}
	case syntax.BinaryLess, syntax.BinaryLessOrEquals, syntax.BinaryGreater, syntax.BinaryGreaterOrEquals:
		if t.IsNumeric() || t == symbols.Char {
			return t, symbols.Bool, true
		}
	}
	return nil, nil, false
}

// convertTo converts expr (already bound) to target, folding a constant
// operand directly and otherwise inserting a BoundConversionExpression.
// explicitContext permits an Explicit-lattice conversion (a cast-call
// syntax); outside of one, an Explicit-only conversion reports
// CannotConvertImplicitly instead of being applied.
func (b *Binder) convertTo(node syntax.Node, expr BoundExpression, target *symbols.TypeSymbol, explicitContext bool) BoundExpression {
	kind := Classify(expr.Type(), target)
	switch kind {
	case ConversionIdentity:
		return expr
	case ConversionImplicit:
		if c := expr.Constant(); c != nil && expr.Type().IsNumeric() && target.IsNumeric() {
			return &BoundLiteralExpression{ValueType: target, ValueValue: AdjustType(c.Value, target)}
		}
		return &BoundConversionExpression{TargetType: target, Expr: expr, ConversionKind: kind}
	case ConversionExplicit:
		if !explicitContext {
			b.error(node, diag.CannotConvertImplicitly, "cannot implicitly convert %s to %s; an explicit conversion exists", expr.Type(), target)
			return &BoundErrorExpression{}
		}
		if c := expr.Constant(); c != nil && expr.Type().IsNumeric() && target.IsNumeric() {
			return &BoundLiteralExpression{ValueType: target, ValueValue: AdjustType(c.Value, target)}
		}
		return &BoundConversionExpression{TargetType: target, Expr: expr, ConversionKind: kind}
	default:
		if expr.Type() != symbols.Error {
			b.error(node, diag.CannotConvert, "cannot convert %s to %s", expr.Type(), target)
		}
		return &BoundErrorExpression{}
	}
}

func (b *Binder) bindAssignment(e *syntax.AssignmentExpression) BoundExpression {
	switch target := e.Target.(type) {
	case *syntax.NameExpression:
		return b.bindVariableAssignment(e, target)
	case *syntax.MemberAccessExpression:
		return b.bindFieldAssignment(e, target)
	default:
		b.error(e.Target, diag.CannotAssign, "invalid assignment target")
		b.bindExpression(e.Value)
		return &BoundErrorExpression{}
	}
}

func (b *Binder) bindVariableAssignment(e *syntax.AssignmentExpression, target *syntax.NameExpression) BoundExpression {
	name := target.IdentifierToken.Text
	v, ok := b.scope.TryLookupVariable(name)
	if !ok {
		b.error(target, diag.UndefinedVariable, "undefined variable %q", name)
		b.bindExpression(e.Value)
		return &BoundErrorExpression{}
	}
	if v.ReadOnly {
		b.errorAtSpan(e.OperatorToken.Span, diag.CannotAssign, "%q is read-only and cannot be assigned to", name)
	}

	value := b.bindExpression(e.Value)
	if e.IsCompound() {
		op, _ := syntax.CompoundAssignmentOperator(e.OperatorToken.Kind)
		converted := b.convertTo(e.Value, value, v.Type, false)
		return &BoundCompoundAssignmentExpression{Variable: v, Op: op, Value: converted}
	}
	converted := b.convertTo(e.Value, value, v.Type, false)
	return &BoundAssignmentExpression{Variable: v, Value: converted}
}

func (b *Binder) bindFieldAssignment(e *syntax.AssignmentExpression, target *syntax.MemberAccessExpression) BoundExpression {
	instance, field, ok := b.resolveFieldTarget(target)
	if !ok {
		b.bindExpression(e.Value)
		return &BoundErrorExpression{}
	}
	if field.Const {
		b.errorAtSpan(e.OperatorToken.Span, diag.CannotAssign, "%q is read-only and cannot be assigned to", field.Name)
	}

	value := b.bindExpression(e.Value)
	if e.IsCompound() {
		op, _ := syntax.CompoundAssignmentOperator(e.OperatorToken.Kind)
		converted := b.convertTo(e.Value, value, field.Type, false)
		return &BoundCompoundFieldAssignmentExpression{Instance: instance, Field: field, Op: op, Value: converted}
	}
	converted := b.convertTo(e.Value, value, field.Type, false)
	return &BoundFieldAssignmentExpression{Instance: instance, Field: field, Value: converted}
}

// bindInstanceTarget binds a member-access target expression and reports
// its type — the shared entry point for both field access and method-call
// receiver resolution (§4.4's "name.m / ma.m / this.m" rules).
func (b *Binder) bindInstanceTarget(target syntax.Expression) (BoundExpression, *symbols.TypeSymbol) {
	switch t := target.(type) {
	case *syntax.ThisExpression, *syntax.NameExpression:
		instance := b.bindExpression(t)
		return instance, instance.Type()
	case *syntax.MemberAccessExpression:
		instance := b.bindMemberAccess(t)
		return instance, instance.Type()
	default:
		b.error(target, diag.NotAClass, "expected a class instance")
		return &BoundErrorExpression{}, symbols.Error
	}
}

func (b *Binder) resolveFieldTarget(target *syntax.MemberAccessExpression) (BoundExpression, *symbols.FieldSymbol, bool) {
	instance, classType := b.bindInstanceTarget(target.Target)
	if classType == symbols.Error {
		return instance, nil, false
	}
	if !classType.IsClass() {
		b.error(target.Target, diag.NotAClass, "%s is not a class type", classType)
		return instance, nil, false
	}
	field, ok := classType.Class.FindField(target.MemberToken.Text)
	if !ok {
		b.error(target, diag.UndefinedClassField, "undefined field %q on %s", target.MemberToken.Text, classType)
		return instance, nil, false
	}
	return instance, field, true
}

// bindMemberAccess binds `target.member` in a value context (not as a
// call callee, which bindCall handles directly so it can keep the
// instance and method symbol separate rather than wrapping them here).
func (b *Binder) bindMemberAccess(e *syntax.MemberAccessExpression) BoundExpression {
	instance, classType := b.bindInstanceTarget(e.Target)
	if classType == symbols.Error {
		return &BoundErrorExpression{}
	}
	if !classType.IsClass() {
		b.error(e.Target, diag.NotAClass, "%s is not a class type", classType)
		return &BoundErrorExpression{}
	}
	name := e.MemberToken.Text
	if field, ok := classType.Class.FindField(name); ok {
		return &BoundFieldAccessExpression{Instance: instance, Field: field}
	}
	if _, ok := classType.Class.FindMethod(name); ok {
		b.error(e, diag.ExpressionMustHaveValue, "%q is a method; call it instead of using it as a value", name)
		return &BoundErrorExpression{}
	}
	b.error(e, diag.UndefinedClassField, "undefined field %q on %s", name, classType)
	return &BoundErrorExpression{}
}

func (b *Binder) bindCall(e *syntax.CallExpression) BoundExpression {
	if name, ok := e.Callee.(*syntax.NameExpression); ok {
		if target, isType := b.resolveTypeName(name.IdentifierToken.Text); isType {
			if _, isClass := b.scope.TryLookupClass(name.IdentifierToken.Text); !isClass && e.Arguments.Count() == 1 {
				arg := e.Arguments.Elements[0]
				return b.convertTo(arg, b.bindExpression(arg), target, true)
			}
		}
	}

	switch callee := e.Callee.(type) {
	case *syntax.NameExpression:
		return b.bindFreeOrCtorCall(e, callee)
	case *syntax.MemberAccessExpression:
		return b.bindMethodCall(e, callee)
	default:
		b.error(e.Callee, diag.NotAFunction, "expression is not callable")
		for _, a := range e.Arguments.Elements {
			b.bindExpression(a)
		}
		return &BoundErrorExpression{}
	}
}

func (b *Binder) bindFreeOrCtorCall(e *syntax.CallExpression, callee *syntax.NameExpression) BoundExpression {
	name := callee.IdentifierToken.Text
	if class, ok := b.scope.TryLookupClass(name); ok {
		return b.resolveOverloadAndBindCall(e, class.Ctor, nil)
	}
	fn, ok := b.scope.TryLookupFunction(name)
	if !ok {
		if _, isVar := b.scope.TryLookupVariable(name); isVar {
			b.error(callee, diag.NotAFunction, "%q is a variable, not a function", name)
		} else {
			b.error(callee, diag.UndefinedFunction, "undefined function %q", name)
		}
		for _, a := range e.Arguments.Elements {
			b.bindExpression(a)
		}
		return &BoundErrorExpression{}
	}
	return b.resolveOverloadAndBindCall(e, fn, nil)
}

func (b *Binder) bindMethodCall(e *syntax.CallExpression, callee *syntax.MemberAccessExpression) BoundExpression {
	instance, classType := b.bindInstanceTarget(callee.Target)
	if classType == symbols.Error {
		for _, a := range e.Arguments.Elements {
			b.bindExpression(a)
		}
		return &BoundErrorExpression{}
	}
	if !classType.IsClass() {
		b.error(callee.Target, diag.NotAClass, "%s is not a class type", classType)
		for _, a := range e.Arguments.Elements {
			b.bindExpression(a)
		}
		return &BoundErrorExpression{}
	}
	method, ok := classType.Class.FindMethod(callee.MemberToken.Text)
	if !ok {
		b.error(callee, diag.UndefinedFunction, "undefined method %q on %s", callee.MemberToken.Text, classType)
		for _, a := range e.Arguments.Elements {
			b.bindExpression(a)
		}
		return &BoundErrorExpression{}
	}
	return b.resolveOverloadAndBindCall(e, method, instance)
}

// resolveOverloadAndBindCall implements §4.4's entire overload-resolution
// algorithm: walk head's overload chain and take the first candidate whose
// arity matches and whose parameters each admit a conversion from the
// corresponding argument. No ranking, no ambiguity detection.
func (b *Binder) resolveOverloadAndBindCall(e *syntax.CallExpression, head *symbols.FunctionSymbol, instance BoundExpression) BoundExpression {
	args := make([]BoundExpression, e.Arguments.Count())
	for i, a := range e.Arguments.Elements {
		args[i] = b.bindExpression(a)
	}

	var match *symbols.FunctionSymbol
	for _, cand := range head.Overloads() {
		if len(cand.Parameters) != len(args) {
			continue
		}
		ok := true
		for i, p := range cand.Parameters {
			kind := Classify(args[i].Type(), p.Type)
			if kind != ConversionIdentity && kind != ConversionImplicit {
				ok = false
				break
			}
		}
		if ok {
			match = cand
			break
		}
	}
	if match == nil {
		b.error(e, diag.UndefinedFunction, "no overload of %q matches the given arguments", head.Name)
		return &BoundErrorExpression{}
	}

	converted := make([]BoundExpression, len(args))
	for i, p := range match.Parameters {
		converted[i] = b.convertTo(e.Arguments.Elements[i], args[i], p.Type, false)
	}
	return &BoundCallExpression{Function: match, Instance: instance, Arguments: converted}
}
