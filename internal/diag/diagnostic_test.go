package diag

import (
	"strings"
	"testing"

	"github.com/lumen-lang/lumenc/internal/source"
)

func TestDiagnosticStringDisambiguatesAnonymousTextsByID(t *testing.T) {
	first := source.New("", "var k = 1")
	second := source.New("", "var k = 2")

	d1 := Diagnostic{Stage: StageBinder, Severity: SeverityError, Code: CannotAssign, Message: "m1", Location: source.NewLocation(first, source.NewSpan(0, 1))}
	d2 := Diagnostic{Stage: StageBinder, Severity: SeverityError, Code: CannotAssign, Message: "m2", Location: source.NewLocation(second, source.NewSpan(0, 1))}

	s1, s2 := d1.String(), d2.String()
	if s1 == s2 {
		t.Fatalf("expected distinct anonymous-text diagnostics to render differently, got %q twice", s1)
	}
	if !strings.Contains(s1, first.ID()) {
		t.Fatalf("expected %q to contain the source text's id %q", s1, first.ID())
	}
	if !strings.Contains(s2, second.ID()) {
		t.Fatalf("expected %q to contain the source text's id %q", s2, second.ID())
	}
}
