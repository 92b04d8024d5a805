package source

import (
	"os"
	"sort"

	"github.com/oklog/ulid/v2"
)

// Text is immutable source text with a precomputed line map, the front door
// to every later stage: tokens, syntax nodes and diagnostics all carry a
// Span into one of these rather than copying substrings around.
type Text struct {
	id         ulid.ULID
	fileName   string
	content    string
	lineStarts []int
}

// New builds a Text over content, attributing it to fileName for
// diagnostics (fileName may be empty for anonymous/in-memory snippets, such
// as a REPL line chained onto a previous Compilation).
func New(fileName, content string) *Text {
	return &Text{
		id:         ulid.Make(),
		fileName:   fileName,
		content:    content,
		lineStarts: computeLineStarts(content),
	}
}

// FromFile reads path and wraps its contents as a Text attributed to path.
func FromFile(path string) (*Text, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return New(path, string(data)), nil
}

func computeLineStarts(content string) []int {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\r':
			// A \r\n pair counts as one line break; the \n is skipped below.
			if i+1 < len(content) && content[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		case '\n':
			starts = append(starts, i+1)
		}
	}
	return starts
}

// ID returns a process-unique identifier for this text, stable for the
// lifetime of the process (used to distinguish chained "previous" script
// compilation units from one another in diagnostics and tests).
func (t *Text) ID() string {
	return t.id.String()
}

// FileName returns the name this text was attributed to, or "" if anonymous.
func (t *Text) FileName() string {
	return t.fileName
}

// Length returns the number of bytes in the text.
func (t *Text) Length() int {
	return len(t.content)
}

// String returns the full text content.
func (t *Text) String() string {
	return t.content
}

// At returns the byte at position.
func (t *Text) At(position int) byte {
	return t.content[position]
}

// Substring extracts the text covered by span.
func (t *Text) Substring(span Span) string {
	return t.content[span.Start:span.End()]
}

// LineCount returns the number of lines in the text.
func (t *Text) LineCount() int {
	return len(t.lineStarts)
}

// LineIndex returns the 0-based index of the line containing position.
func (t *Text) LineIndex(position int) int {
	idx := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > position
	})
	return idx - 1
}

// LineColumn returns the 1-based (line, column) of position.
func (t *Text) LineColumn(position int) (line, column int) {
	idx := t.LineIndex(position)
	if idx < 0 {
		idx = 0
	}
	return idx + 1, position - t.lineStarts[idx] + 1
}
