package syntax

import (
	"github.com/lumen-lang/lumenc/internal/lexer"
	"github.com/lumen-lang/lumenc/internal/source"
)

// SeparatedList holds a comma-separated syntax list together with the
// separator tokens between elements, so later diagnostics (e.g. "missing
// argument after trailing comma") can still point at the right comma.
type SeparatedList[T Node] struct {
	Elements   []T
	Separators []lexer.Token
}

// Count returns the number of elements.
func (l SeparatedList[T]) Count() int {
	return len(l.Elements)
}

// Span encloses every element and separator.
func (l SeparatedList[T]) Span() source.Span {
	var span source.Span
	has := false
	touch := func(s source.Span) {
		if !has {
			span, has = s, true
			return
		}
		span = source.EnclosingSpan(span, s)
	}
	for _, e := range l.Elements {
		touch(e.Span())
	}
	for _, s := range l.Separators {
		touch(s.Span)
	}
	return span
}

// Nodes returns the elements as Nodes in source order, used by generic
// Children() implementations. Separators are tokens, not nodes, and are
// not included.
func (l SeparatedList[T]) Nodes() []Node {
	nodes := make([]Node, 0, len(l.Elements))
	for _, e := range l.Elements {
		nodes = append(nodes, e)
	}
	return nodes
}
