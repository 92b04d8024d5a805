package binder

import (
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// AdjustType coerces value, a Go-native representation of a constant, down
// (or up) to target's native Go representation. Per SPEC_FULL.md's decision
// on widening/narrowing, this is implemented with Go's own numeric
// conversions rather than a bignum/decimal library: Lumen's numeric tower
// tops out at 64-bit integers and 64-bit floats (Float128 is carried as a
// distinct named type but represented as float64), so native conversions
// never lose precision beyond what the target width already implies.
func AdjustType(value interface{}, target *symbols.TypeSymbol) interface{} {
	if !target.IsNumeric() {
		return value
	}
	if target.IsFloat() {
		f := toFloat64(value)
		if target == symbols.Float32 {
			return float32(f)
		}
		return f
	}
	if target.IsSigned() {
		i := toInt64(value)
		switch target {
		case symbols.Int8:
			return int8(i)
		case symbols.Int16:
			return int16(i)
		case symbols.Int32:
			return int32(i)
		default:
			return i
		}
	}
	u := toUint64(value)
	switch target {
	case symbols.UInt8:
		return uint8(u)
	case symbols.UInt16:
		return uint16(u)
	case symbols.UInt32:
		return uint32(u)
	default:
		return u
	}
}

func toFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return 0
	}
}

func toInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	case float32:
		return int64(n)
	case float64:
		return int64(n)
	default:
		return 0
	}
}

func toUint64(v interface{}) uint64 {
	switch n := v.(type) {
	case int8:
		return uint64(n)
	case int16:
		return uint64(n)
	case int32:
		return uint64(n)
	case int64:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	case float32:
		return uint64(n)
	case float64:
		return uint64(n)
	default:
		return 0
	}
}

// FoldUnary computes the compile-time result of applying op to a constant
// operand, if op is defined for operandType. The boolean result reports
// whether folding succeeded; callers fall back to a runtime
// BoundUnaryExpression when it doesn't (e.g. logical negation is only
// defined for bool).
func FoldUnary(op syntax.UnaryOperatorKind, operand *BoundConstant, operandType, resultType *symbols.TypeSymbol) (*BoundConstant, bool) {
	if operand == nil {
		return nil, false
	}
	switch op {
	case syntax.UnaryIdentity:
		return NewBoundConstant(AdjustType(operand.Value, resultType)), true
	case syntax.UnaryNegation:
		if !operandType.IsNumeric() {
			return nil, false
		}
		if operandType.IsFloat() {
			return NewBoundConstant(AdjustType(-toFloat64(operand.Value), resultType)), true
		}
		return NewBoundConstant(AdjustType(-toInt64(operand.Value), resultType)), true
	case syntax.UnaryLogicalNegation:
		b, ok := operand.Value.(bool)
		if !ok {
			return nil, false
		}
		return NewBoundConstant(!b), true
	case syntax.UnaryBitwiseComplement:
		if !operandType.IsNumeric() || operandType.IsFloat() {
			return nil, false
		}
		if operandType.IsSigned() {
			return NewBoundConstant(AdjustType(^toInt64(operand.Value), resultType)), true
		}
		return NewBoundConstant(AdjustType(^toUint64(operand.Value), resultType)), true
	default:
		return nil, false
	}
}

// FoldBinary computes the compile-time result of applying op to two
// already-promoted constant operands of operandType. resultType is the
// expression's result type (the operand type for arithmetic/bitwise ops,
// bool for comparisons and logical ops). Division and modulo by a
// compile-time zero are rejected by the caller before folding is ever
// attempted (§4.4's DivideByZero rule) — FoldBinary itself never panics on
// a zero divisor, it simply isn't called for one.
func FoldBinary(op syntax.BinaryOperatorKind, left, right *BoundConstant, operandType, resultType *symbols.TypeSymbol) (*BoundConstant, bool) {
	if left == nil || right == nil {
		return nil, false
	}

	if operandType == symbols.Bool {
		a, aok := left.Value.(bool)
		b, bok := right.Value.(bool)
		if !aok || !bok {
			return nil, false
		}
		switch op {
		case syntax.BinaryLogicalAnd:
			return NewBoundConstant(a && b), true
		case syntax.BinaryLogicalOr:
			return NewBoundConstant(a || b), true
		case syntax.BinaryEquals:
			return NewBoundConstant(a == b), true
		case syntax.BinaryNotEquals:
			return NewBoundConstant(a != b), true
		default:
			return nil, false
		}
	}

	if operandType == symbols.String {
		a, aok := left.Value.(string)
		b, bok := right.Value.(string)
		if !aok || !bok {
			return nil, false
		}
		switch op {
		case syntax.BinaryAdd:
			return NewBoundConstant(a + b), true
		case syntax.BinaryEquals:
			return NewBoundConstant(a == b), true
		case syntax.BinaryNotEquals:
			return NewBoundConstant(a != b), true
		default:
			return nil, false
		}
	}

	if !operandType.IsNumeric() {
		return nil, false
	}

	if operandType.IsFloat() {
		a, b := toFloat64(left.Value), toFloat64(right.Value)
		switch op {
		case syntax.BinaryAdd:
			return NewBoundConstant(AdjustType(a+b, resultType)), true
		case syntax.BinarySubtract:
			return NewBoundConstant(AdjustType(a-b, resultType)), true
		case syntax.BinaryMultiply:
			return NewBoundConstant(AdjustType(a*b, resultType)), true
		case syntax.BinaryDivide:
			return NewBoundConstant(AdjustType(a/b, resultType)), true
		case syntax.BinaryEquals:
			return NewBoundConstant(a == b), true
		case syntax.BinaryNotEquals:
			return NewBoundConstant(a != b), true
		case syntax.BinaryLess:
			return NewBoundConstant(a < b), true
		case syntax.BinaryLessOrEquals:
			return NewBoundConstant(a <= b), true
		case syntax.BinaryGreater:
			return NewBoundConstant(a > b), true
		case syntax.BinaryGreaterOrEquals:
			return NewBoundConstant(a >= b), true
		default:
			return nil, false
		}
	}

	if operandType.IsSigned() {
		a, b := toInt64(left.Value), toInt64(right.Value)
		switch op {
		case syntax.BinaryAdd:
			return NewBoundConstant(AdjustType(a+b, resultType)), true
		case syntax.BinarySubtract:
			return NewBoundConstant(AdjustType(a-b, resultType)), true
		case syntax.BinaryMultiply:
			return NewBoundConstant(AdjustType(a*b, resultType)), true
		case syntax.BinaryDivide:
			return NewBoundConstant(AdjustType(a/b, resultType)), true
		case syntax.BinaryModulo:
			return NewBoundConstant(AdjustType(a%b, resultType)), true
		case syntax.BinaryBitwiseAnd:
			return NewBoundConstant(AdjustType(a&b, resultType)), true
		case syntax.BinaryBitwiseOr:
			return NewBoundConstant(AdjustType(a|b, resultType)), true
		case syntax.BinaryBitwiseXor:
			return NewBoundConstant(AdjustType(a^b, resultType)), true
		case syntax.BinaryEquals:
			return NewBoundConstant(a == b), true
		case syntax.BinaryNotEquals:
			return NewBoundConstant(a != b), true
		case syntax.BinaryLess:
			return NewBoundConstant(a < b), true
		case syntax.BinaryLessOrEquals:
			return NewBoundConstant(a <= b), true
		case syntax.BinaryGreater:
			return NewBoundConstant(a > b), true
		case syntax.BinaryGreaterOrEquals:
			return NewBoundConstant(a >= b), true
		default:
			return nil, false
		}
	}

	a, b := toUint64(left.Value), toUint64(right.Value)
	switch op {
	case syntax.BinaryAdd:
		return NewBoundConstant(AdjustType(a+b, resultType)), true
	case syntax.BinarySubtract:
		return NewBoundConstant(AdjustType(a-b, resultType)), true
	case syntax.BinaryMultiply:
		return NewBoundConstant(AdjustType(a*b, resultType)), true
	case syntax.BinaryDivide:
		return NewBoundConstant(AdjustType(a/b, resultType)), true
	case syntax.BinaryModulo:
		return NewBoundConstant(AdjustType(a%b, resultType)), true
	case syntax.BinaryBitwiseAnd:
		return NewBoundConstant(AdjustType(a&b, resultType)), true
	case syntax.BinaryBitwiseOr:
		return NewBoundConstant(AdjustType(a|b, resultType)), true
	case syntax.BinaryBitwiseXor:
		return NewBoundConstant(AdjustType(a^b, resultType)), true
	case syntax.BinaryEquals:
		return NewBoundConstant(a == b), true
	case syntax.BinaryNotEquals:
		return NewBoundConstant(a != b), true
	case syntax.BinaryLess:
		return NewBoundConstant(a < b), true
	case syntax.BinaryLessOrEquals:
		return NewBoundConstant(a <= b), true
	case syntax.BinaryGreater:
		return NewBoundConstant(a > b), true
	case syntax.BinaryGreaterOrEquals:
		return NewBoundConstant(a >= b), true
	default:
		return nil, false
	}
}
