package diag

import (
	"testing"

	"github.com/lumen-lang/lumenc/internal/source"
)

func TestBagAccumulatesInOrder(t *testing.T) {
	text := source.New("a.lm", "var k = 1")
	bag := NewBag()
	loc1 := source.NewLocation(text, source.NewSpan(0, 3))
	loc2 := source.NewLocation(text, source.NewSpan(4, 1))

	bag.Error(StageBinder, CannotAssign, loc1, "cannot assign to read-only variable %q", "k")
	bag.Warning(StageCFG, UnreachableCode, loc2, "unreachable statement")

	if bag.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", bag.Len())
	}
	if !bag.HasErrors() {
		t.Fatalf("expected HasErrors to be true")
	}
	if bag.Diagnostics()[0].Code != CannotAssign {
		t.Fatalf("expected first diagnostic to be CannotAssign, got %s", bag.Diagnostics()[0].Code)
	}
}

func TestBagAppendPreservesOrder(t *testing.T) {
	text := source.New("", "x")
	loc := source.NewLocation(text, source.NewSpan(0, 1))

	previous := NewBag()
	previous.Error(StageBinder, UndefinedVariable, loc, "undefined variable")

	current := NewBag()
	current.Error(StageBinder, CannotAssign, loc, "cannot assign")
	current.Append(previous)

	if current.Len() != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", current.Len())
	}
	if current.Diagnostics()[1].Code != UndefinedVariable {
		t.Fatalf("expected previous diagnostic appended last, got %s", current.Diagnostics()[1].Code)
	}
}

func TestBagSortedGroupsByStage(t *testing.T) {
	text := source.New("", "aaaa")
	bag := NewBag()
	bag.Error(StageCFG, AllPathsMustReturn, source.NewLocation(text, source.NewSpan(3, 1)), "m1")
	bag.Error(StageLexer, BadCharacter, source.NewLocation(text, source.NewSpan(1, 1)), "m2")

	sorted := bag.Sorted()
	if sorted[0].Stage != StageLexer || sorted[1].Stage != StageCFG {
		t.Fatalf("expected lexer diagnostics before cfg diagnostics, got %+v", sorted)
	}
}
