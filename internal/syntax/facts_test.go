package syntax

import (
	"testing"

	"github.com/lumen-lang/lumenc/internal/lexer"
)

func TestBinaryOperatorPrecedenceOrdering(t *testing.T) {
	cases := []struct {
		lower, higher lexer.TokenKind
	}{
		{lexer.PipePipeTokenKind, lexer.AmpersandAmpersandTokenKind},
		{lexer.AmpersandAmpersandTokenKind, lexer.PipeTokenKind},
		{lexer.PipeTokenKind, lexer.CaretTokenKind},
		{lexer.CaretTokenKind, lexer.AmpersandTokenKind},
		{lexer.AmpersandTokenKind, lexer.EqualsEqualsTokenKind},
		{lexer.EqualsEqualsTokenKind, lexer.LessTokenKind},
		{lexer.LessTokenKind, lexer.PlusTokenKind},
		{lexer.PlusTokenKind, lexer.StarTokenKind},
	}
	for _, c := range cases {
		lower := BinaryOperatorPrecedence(c.lower)
		higher := BinaryOperatorPrecedence(c.higher)
		if lower >= higher {
			t.Errorf("expected %s (%d) < %s (%d)", c.lower, lower, c.higher, higher)
		}
	}
}

func TestUnaryOperatorPrecedenceBindsTighterThanAnyBinary(t *testing.T) {
	for tok := lexer.PlusTokenKind; tok <= lexer.GreaterOrEqualsTokenKind; tok++ {
		if p := BinaryOperatorPrecedence(tok); p >= UnaryOperatorPrecedence {
			t.Errorf("binary operator %s has precedence %d, want < %d", tok, p, UnaryOperatorPrecedence)
		}
	}
}

func TestIsAssignmentOperator(t *testing.T) {
	for _, tok := range []lexer.TokenKind{
		lexer.EqualsTokenKind, lexer.PlusEqualsTokenKind, lexer.MinusEqualsTokenKind,
		lexer.StarEqualsTokenKind, lexer.SlashEqualsTokenKind, lexer.AmpersandEqualsTokenKind,
		lexer.PipeEqualsTokenKind, lexer.CaretEqualsTokenKind,
	} {
		if !IsAssignmentOperator(tok) {
			t.Errorf("expected %s to be an assignment operator", tok)
		}
	}
	if IsAssignmentOperator(lexer.PlusTokenKind) {
		t.Errorf("+ is not an assignment operator")
	}
}

func TestCompoundAssignmentOperatorRecoversBinaryKind(t *testing.T) {
	kind, ok := CompoundAssignmentOperator(lexer.PlusEqualsTokenKind)
	if !ok || kind != BinaryAdd {
		t.Fatalf("got (%v, %v), want (BinaryAdd, true)", kind, ok)
	}
	if _, ok := CompoundAssignmentOperator(lexer.EqualsTokenKind); ok {
		t.Fatalf("plain = should not recover a binary operator")
	}
}

func TestUnaryOperatorKindFromToken(t *testing.T) {
	if kind, ok := UnaryOperatorKindFromToken(lexer.MinusTokenKind); !ok || kind != UnaryNegation {
		t.Fatalf("got (%v, %v), want (UnaryNegation, true)", kind, ok)
	}
	if _, ok := UnaryOperatorKindFromToken(lexer.StarTokenKind); ok {
		t.Fatalf("* is not a prefix unary operator")
	}
}
