package lexer

import "github.com/lumen-lang/lumenc/internal/source"

// TriviaKind classifies a piece of trivia attached to a token.
type TriviaKind int

const (
	WhitespaceTrivia TriviaKind = iota
	LineBreakTrivia
	SingleLineCommentTrivia
	MultiLineCommentTrivia
	SkippedTextTrivia // a run of unrecognized bytes, reported as BadCharacter
)

// Trivia is whitespace or a comment attached to a token. Trivia never
// participates in grammar matching, but round-trip fidelity (§8) depends on
// every byte of the source showing up in exactly one token's trivia lists.
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// Token is a single lexical token: a kind, the span/text/value it covers,
// and the trivia attached on either side of it.
type Token struct {
	Kind    TokenKind
	Span    source.Span
	Text    string
	Value   interface{} // literal payload: int32/uint32/int64/uint64/float32/float64/string/rune
	Leading []Trivia
	Trailing []Trivia

	// Missing is true for tokens fabricated by the parser during error
	// recovery. Missing tokens have zero length and share position with
	// the next real token (§8 parse-stability property).
	Missing bool
}

// LeadingText concatenates the leading trivia text, in order.
func (t Token) LeadingText() string {
	s := ""
	for _, tr := range t.Leading {
		s += tr.Text
	}
	return s
}

// TrailingText concatenates the trailing trivia text, in order.
func (t Token) TrailingText() string {
	s := ""
	for _, tr := range t.Trailing {
		s += tr.Text
	}
	return s
}

// FullText reconstructs exactly the source bytes this token covers,
// including its attached trivia — used by the round-trip property test.
func (t Token) FullText() string {
	return t.LeadingText() + t.Text + t.TrailingText()
}

// FullSpan is the span covering the leading trivia through the trailing
// trivia.
func (t Token) FullSpan() source.Span {
	start := t.Span.Start
	if len(t.Leading) > 0 {
		start = t.Leading[0].Span.Start
	}
	end := t.Span.End()
	if len(t.Trailing) > 0 {
		end = t.Trailing[len(t.Trailing)-1].Span.End()
	}
	return source.SpanFromBounds(start, end)
}
