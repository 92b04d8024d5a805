package source

import "testing"

func TestLineColumn(t *testing.T) {
	text := New("a.lm", "var x = 1\nvar y = 2\n")

	tests := []struct {
		position   int
		wantLine   int
		wantColumn int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{9, 1, 10}, // the newline itself is still on line 1
		{10, 2, 1},
		{14, 2, 5},
	}

	for i, tt := range tests {
		line, col := text.LineColumn(tt.position)
		if line != tt.wantLine || col != tt.wantColumn {
			t.Fatalf("tests[%d] - wrong position. expected=(%d,%d), got=(%d,%d)",
				i, tt.wantLine, tt.wantColumn, line, col)
		}
	}
}

func TestSubstring(t *testing.T) {
	text := New("", "hello world")
	got := text.Substring(NewSpan(6, 5))
	if got != "world" {
		t.Fatalf("expected %q, got %q", "world", got)
	}
}

func TestLineCount(t *testing.T) {
	text := New("", "a\nb\nc")
	if text.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", text.LineCount())
	}
}

func TestSpanEnclosing(t *testing.T) {
	a := NewSpan(2, 3) // 2..5
	b := NewSpan(10, 2) // 10..12
	enc := EnclosingSpan(a, b)
	if enc.Start != 2 || enc.End() != 12 {
		t.Fatalf("expected 2..12, got %s", enc)
	}
}
