package syntax

import (
	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/source"
)

// Node is any syntax tree node: it knows its Kind and its full text span,
// derived from its children's spans (§3's "syntax nodes" invariant).
type Node interface {
	Kind() Kind
	Span() source.Span
	Children() []Node
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	exprNode()
}

// Statement is a node that appears in a block or as a global statement.
type Statement interface {
	Node
	stmtNode()
}

// Member is a top-level or class-level declaration.
type Member interface {
	Node
	memberNode()
}

// TokenSpan returns the token's core span (not including trivia) — the
// span convention used throughout the tree, so that leading/trailing
// trivia never widens a node's reported location.
func TokenSpan(t lexer.Token) source.Span {
	return t.Span
}

// spanOfChildren derives a parent span as the enclosing span of its
// non-nil children, falling back to fallback when there are none (e.g. an
// entirely-missing production).
func spanOfChildren(fallback source.Span, children ...Node) source.Span {
	has := false
	var span source.Span
	for _, c := range children {
		if c == nil {
			continue
		}
		if !has {
			span = c.Span()
			has = true
			continue
		}
		span = source.EnclosingSpan(span, c.Span())
	}
	if !has {
		return fallback
	}
	return span
}
