package source

import "fmt"

// Span is a half-open byte range [Start, Start+Length) into a Text.
type Span struct {
	Start  int
	Length int
}

// NewSpan builds a span from a start offset and a length.
func NewSpan(start, length int) Span {
	return Span{Start: start, Length: length}
}

// SpanFromBounds builds a span from a start and (exclusive) end offset.
func SpanFromBounds(start, end int) Span {
	return Span{Start: start, Length: end - start}
}

// End returns the exclusive end offset of the span.
func (s Span) End() int {
	return s.Start + s.Length
}

// IsEmpty reports whether the span covers zero bytes, as a missing token does.
func (s Span) IsEmpty() bool {
	return s.Length == 0
}

// Overlaps reports whether s and other share at least one byte.
func (s Span) Overlaps(other Span) bool {
	return s.Start < other.End() && other.Start < s.End()
}

// Contains reports whether position falls within the span.
func (s Span) Contains(position int) bool {
	return position >= s.Start && position < s.End()
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End())
}

// EnclosingSpan returns the smallest span that contains both a and b.
func EnclosingSpan(a, b Span) Span {
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	end := a.End()
	if b.End() > end {
		end = b.End()
	}
	return SpanFromBounds(start, end)
}

// Location pairs a span with the Text it was taken from, for diagnostics.
type Location struct {
	Text *Text
	Span Span
}

// NewLocation builds a location for span within text.
func NewLocation(text *Text, span Span) Location {
	return Location{Text: text, Span: span}
}

// FileName returns the owning text's file name, or "" if the location is detached.
func (l Location) FileName() string {
	if l.Text == nil {
		return ""
	}
	return l.Text.FileName()
}

// StartLine returns the 1-based line the span starts on.
func (l Location) StartLine() int {
	if l.Text == nil {
		return 0
	}
	line, _ := l.Text.LineColumn(l.Span.Start)
	return line
}

// StartColumn returns the 1-based column the span starts on.
func (l Location) StartColumn() int {
	if l.Text == nil {
		return 0
	}
	_, col := l.Text.LineColumn(l.Span.Start)
	return col
}

// EndLine returns the 1-based line the span ends on.
func (l Location) EndLine() int {
	if l.Text == nil {
		return 0
	}
	end := l.Span.End()
	if end > 0 {
		end--
	}
	line, _ := l.Text.LineColumn(end)
	return line
}

// SourceText returns the source text covered by the span.
func (l Location) SourceText() string {
	if l.Text == nil {
		return ""
	}
	return l.Text.Substring(l.Span)
}
