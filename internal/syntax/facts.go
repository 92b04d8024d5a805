package syntax

import "github.com/lumen-lang/lumenc/internal/lexer"

// UnaryOperatorKind tags a prefix unary operator.
type UnaryOperatorKind int

const (
	UnaryIdentity UnaryOperatorKind = iota // +x
	UnaryNegation                          // -x
	UnaryLogicalNegation                   // !x
	UnaryBitwiseComplement                 // ~x
)

// BinaryOperatorKind tags a binary operator.
type BinaryOperatorKind int

const (
	BinaryAdd BinaryOperatorKind = iota
	BinarySubtract
	BinaryMultiply
	BinaryDivide
	BinaryModulo
	BinaryLogicalAnd
	BinaryLogicalOr
	BinaryBitwiseAnd
	BinaryBitwiseOr
	BinaryBitwiseXor
	BinaryEquals
	BinaryNotEquals
	BinaryLess
	BinaryLessOrEquals
	BinaryGreater
	BinaryGreaterOrEquals
)

// UnaryOperatorKindFromToken classifies a prefix unary operator token.
func UnaryOperatorKindFromToken(kind lexer.TokenKind) (UnaryOperatorKind, bool) {
	switch kind {
	case lexer.PlusTokenKind:
		return UnaryIdentity, true
	case lexer.MinusTokenKind:
		return UnaryNegation, true
	case lexer.BangTokenKind:
		return UnaryLogicalNegation, true
	case lexer.TildeTokenKind:
		return UnaryBitwiseComplement, true
	default:
		return 0, false
	}
}

// BinaryOperatorKindFromToken classifies a binary operator token.
func BinaryOperatorKindFromToken(kind lexer.TokenKind) (BinaryOperatorKind, bool) {
	switch kind {
	case lexer.PlusTokenKind:
		return BinaryAdd, true
	case lexer.MinusTokenKind:
		return BinarySubtract, true
	case lexer.StarTokenKind:
		return BinaryMultiply, true
	case lexer.SlashTokenKind:
		return BinaryDivide, true
	case lexer.PercentTokenKind:
		return BinaryModulo, true
	case lexer.AmpersandAmpersandTokenKind:
		return BinaryLogicalAnd, true
	case lexer.PipePipeTokenKind:
		return BinaryLogicalOr, true
	case lexer.AmpersandTokenKind:
		return BinaryBitwiseAnd, true
	case lexer.PipeTokenKind:
		return BinaryBitwiseOr, true
	case lexer.CaretTokenKind:
		return BinaryBitwiseXor, true
	case lexer.EqualsEqualsTokenKind:
		return BinaryEquals, true
	case lexer.BangEqualsTokenKind:
		return BinaryNotEquals, true
	case lexer.LessTokenKind:
		return BinaryLess, true
	case lexer.LessOrEqualsTokenKind:
		return BinaryLessOrEquals, true
	case lexer.GreaterTokenKind:
		return BinaryGreater, true
	case lexer.GreaterOrEqualsTokenKind:
		return BinaryGreaterOrEquals, true
	default:
		return 0, false
	}
}

// binaryPrecedence implements §4.2's table, low to high:
// logical-or < logical-and < bitwise-or < bitwise-xor < bitwise-and <
// equality < relational < additive < multiplicative. Assignment sits below
// all of these and is handled separately by the parser (it is right-assoc
// and its left side must be an assignable shape, not just "lowest
// precedence binary operator").
func binaryPrecedence(kind BinaryOperatorKind) int {
	switch kind {
	case BinaryLogicalOr:
		return 1
	case BinaryLogicalAnd:
		return 2
	case BinaryBitwiseOr:
		return 3
	case BinaryBitwiseXor:
		return 4
	case BinaryBitwiseAnd:
		return 5
	case BinaryEquals, BinaryNotEquals:
		return 6
	case BinaryLess, BinaryLessOrEquals, BinaryGreater, BinaryGreaterOrEquals:
		return 7
	case BinaryAdd, BinarySubtract:
		return 8
	case BinaryMultiply, BinaryDivide, BinaryModulo:
		return 9
	default:
		return 0
	}
}

// BinaryOperatorPrecedence returns the binding power of tok as a binary
// operator, or 0 if tok is not a binary operator.
func BinaryOperatorPrecedence(tok lexer.TokenKind) int {
	kind, ok := BinaryOperatorKindFromToken(tok)
	if !ok {
		return 0
	}
	return binaryPrecedence(kind)
}

// UnaryOperatorPrecedence is the fixed binding power of every prefix unary
// operator — one level above multiplicative, per §4.2's table.
const UnaryOperatorPrecedence = 10

// IsAssignmentOperator reports whether tok is `=` or a compound-assignment
// operator.
func IsAssignmentOperator(tok lexer.TokenKind) bool {
	_, ok := compoundAssignmentOperators[tok]
	return tok == lexer.EqualsTokenKind || ok
}

// compoundAssignmentOperators maps a compound-assignment token to the
// binary operator it recovers, per §4.4's "fixed assignment-op -> binary-op
// table".
var compoundAssignmentOperators = map[lexer.TokenKind]BinaryOperatorKind{
	lexer.PlusEqualsTokenKind:      BinaryAdd,
	lexer.MinusEqualsTokenKind:     BinarySubtract,
	lexer.StarEqualsTokenKind:      BinaryMultiply,
	lexer.SlashEqualsTokenKind:     BinaryDivide,
	lexer.PercentEqualsTokenKind:   BinaryModulo,
	lexer.AmpersandEqualsTokenKind: BinaryBitwiseAnd,
	lexer.PipeEqualsTokenKind:      BinaryBitwiseOr,
	lexer.CaretEqualsTokenKind:     BinaryBitwiseXor,
}

// CompoundAssignmentOperator recovers the underlying binary operator for a
// compound-assignment token.
func CompoundAssignmentOperator(tok lexer.TokenKind) (BinaryOperatorKind, bool) {
	kind, ok := compoundAssignmentOperators[tok]
	return kind, ok
}

func (k UnaryOperatorKind) String() string {
	switch k {
	case UnaryIdentity:
		return "+"
	case UnaryNegation:
		return "-"
	case UnaryLogicalNegation:
		return "!"
	case UnaryBitwiseComplement:
		return "~"
	default:
		return "?"
	}
}

func (k BinaryOperatorKind) String() string {
	switch k {
	case BinaryAdd:
		return "+"
	case BinarySubtract:
		return "-"
	case BinaryMultiply:
		return "*"
	case BinaryDivide:
		return "/"
	case BinaryModulo:
		return "%"
	case BinaryLogicalAnd:
		return "&&"
	case BinaryLogicalOr:
		return "||"
	case BinaryBitwiseAnd:
		return "&"
	case BinaryBitwiseOr:
		return "|"
	case BinaryBitwiseXor:
		return "^"
	case BinaryEquals:
		return "=="
	case BinaryNotEquals:
		return "!="
	case BinaryLess:
		return "<"
	case BinaryLessOrEquals:
		return "<="
	case BinaryGreater:
		return ">"
	case BinaryGreaterOrEquals:
		return ">="
	default:
		return "?"
	}
}
