package syntax

import (
	"testing"

	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/source"
)

func identToken(text string) lexer.Token {
	return lexer.Token{Kind: lexer.IdentifierTokenKind, Span: source.NewSpan(0, len(text)), Text: text}
}

func TestWalkVisitsEveryDescendantInPreOrder(t *testing.T) {
	left := &NameExpression{IdentifierToken: identToken("a")}
	right := &NameExpression{IdentifierToken: identToken("b")}
	bin := &BinaryExpression{Left: left, OperatorToken: lexer.Token{Kind: lexer.PlusTokenKind}, Right: right}
	paren := &ParenthesizedExpression{Expr: bin}

	var visited []Kind
	Walk(paren, func(n Node) bool {
		visited = append(visited, n.Kind())
		return true
	})

	want := []Kind{ParenthesizedExpressionKind, BinaryExpressionKind, NameExpressionKind, NameExpressionKind}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited[%d] = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestWalkStopsDescendingWhenFnReturnsFalse(t *testing.T) {
	name := &NameExpression{IdentifierToken: identToken("x")}
	paren := &ParenthesizedExpression{Expr: name}

	calls := 0
	Walk(paren, func(n Node) bool {
		calls++
		return n.Kind() != ParenthesizedExpressionKind
	})

	if calls != 1 {
		t.Fatalf("expected Walk to stop after the root, got %d calls", calls)
	}
}

func TestFindReturnsFirstMatch(t *testing.T) {
	a := &NameExpression{IdentifierToken: identToken("a")}
	b := &NameExpression{IdentifierToken: identToken("b")}
	bin := &BinaryExpression{Left: a, OperatorToken: lexer.Token{Kind: lexer.PlusTokenKind}, Right: b}

	found := Find(bin, func(n Node) bool {
		name, ok := n.(*NameExpression)
		return ok && name.IdentifierToken.Text == "b"
	})

	if found != b {
		t.Fatalf("Find returned %v, want the %q name node", found, "b")
	}
}
