package lexer

import (
	"testing"

	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/source"
)

func TestLexBasicTokens(t *testing.T) {
	input := `var x = 1 + 2;`
	text := source.New("", input)
	bag := diag.NewBag()

	tests := []struct {
		expectedKind TokenKind
		expectedText string
	}{
		{VarKeywordTokenKind, "var"},
		{IdentifierTokenKind, "x"},
		{EqualsTokenKind, "="},
		{IntegerLiteralTokenKind, "1"},
		{PlusTokenKind, "+"},
		{IntegerLiteralTokenKind, "2"},
		{SemicolonTokenKind, ";"},
		{EOFTokenKind, ""},
	}

	lx := New(text, bag)
	for i, tt := range tests {
		tok := lx.Lex()
		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%v, got=%v", i, tt.expectedKind, tok.Kind)
		}
		if tok.Text != tt.expectedText {
			t.Fatalf("tests[%d] - text wrong. expected=%q, got=%q", i, tt.expectedText, tok.Text)
		}
	}
	if bag.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", bag.Diagnostics())
	}
}

func TestLexTwoCharacterOperators(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"==", EqualsEqualsTokenKind},
		{"!=", BangEqualsTokenKind},
		{"<=", LessOrEqualsTokenKind},
		{">=", GreaterOrEqualsTokenKind},
		{"+=", PlusEqualsTokenKind},
		{"-=", MinusEqualsTokenKind},
		{"*=", StarEqualsTokenKind},
		{"/=", SlashEqualsTokenKind},
		{"%=", PercentEqualsTokenKind},
		{"^=", CaretEqualsTokenKind},
		{"&=", AmpersandEqualsTokenKind},
		{"|=", PipeEqualsTokenKind},
		{"&&", AmpersandAmpersandTokenKind},
		{"||", PipePipeTokenKind},
		{"=>", FatArrowTokenKind},
	}
	for i, tt := range tests {
		bag := diag.NewBag()
		lx := New(source.New("", tt.input), bag)
		tok := lx.Lex()
		if tok.Kind != tt.kind {
			t.Fatalf("tests[%d] - expected %v for %q, got %v", i, tt.kind, tt.input, tok.Kind)
		}
		if tok.Text != tt.input {
			t.Fatalf("tests[%d] - expected text %q, got %q", i, tt.input, tok.Text)
		}
	}
}

func TestLexNumericPromotion(t *testing.T) {
	tests := []struct {
		input string
		want  interface{}
	}{
		{"42", int32(42)},
		{"2147483648", uint32(2147483648)},
		{"4294967296", int64(4294967296)},
		{"18446744073709551615", uint64(18446744073709551615)},
		{"1_000_000", int32(1000000)},
	}
	for i, tt := range tests {
		bag := diag.NewBag()
		lx := New(source.New("", tt.input), bag)
		tok := lx.Lex()
		if tok.Value != tt.want {
			t.Fatalf("tests[%d] - expected value %v (%T), got %v (%T)", i, tt.want, tt.want, tok.Value, tok.Value)
		}
		if bag.HasErrors() {
			t.Fatalf("tests[%d] - unexpected diagnostics: %v", i, bag.Diagnostics())
		}
	}
}

func TestLexUnderscoreMustFlankDigits(t *testing.T) {
	bag := diag.NewBag()
	lx := New(source.New("", "1__2"), bag)
	lx.Lex()
	if !bag.HasErrors() {
		t.Fatalf("expected InvalidNumber diagnostic for 1__2")
	}
	if bag.Diagnostics()[0].Code != diag.InvalidNumber {
		t.Fatalf("expected InvalidNumber, got %s", bag.Diagnostics()[0].Code)
	}
}

func TestLexFloatFitsFloat32(t *testing.T) {
	bag := diag.NewBag()
	lx := New(source.New("", "1.5"), bag)
	tok := lx.Lex()
	if _, ok := tok.Value.(float32); !ok {
		t.Fatalf("expected float32 value, got %T", tok.Value)
	}
}

func TestLexStringDoubledQuoteEscape(t *testing.T) {
	bag := diag.NewBag()
	lx := New(source.New("", `"say ""hi"""`), bag)
	tok := lx.Lex()
	if tok.Kind != StringLiteralTokenKind {
		t.Fatalf("expected string literal, got %v", tok.Kind)
	}
	if tok.Value != `say "hi"` {
		t.Fatalf("expected unescaped value %q, got %q", `say "hi"`, tok.Value)
	}
	if bag.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", bag.Diagnostics())
	}
}

func TestLexUnterminatedString(t *testing.T) {
	bag := diag.NewBag()
	lx := New(source.New("", `"unterminated`), bag)
	lx.Lex()
	if !bag.HasErrors() || bag.Diagnostics()[0].Code != diag.UnterminatedString {
		t.Fatalf("expected UnterminatedString diagnostic, got %v", bag.Diagnostics())
	}
}

func TestLexCharLiteralWrongLength(t *testing.T) {
	bag := diag.NewBag()
	lx := New(source.New("", `'ab'`), bag)
	lx.Lex()
	if !bag.HasErrors() || bag.Diagnostics()[0].Code != diag.InvalidCharacterLiteral {
		t.Fatalf("expected InvalidCharacterLiteral diagnostic, got %v", bag.Diagnostics())
	}
}

func TestLexBadCharacterAdvancesOneByte(t *testing.T) {
	bag := diag.NewBag()
	lx := New(source.New("", "@1"), bag)
	tok := lx.Lex()
	if tok.Kind != BadTokenKind {
		t.Fatalf("expected bad token, got %v", tok.Kind)
	}
	if tok.Span.Length != 1 {
		t.Fatalf("expected bad token to advance one byte, got length %d", tok.Span.Length)
	}
	next := lx.Lex()
	if next.Kind != IntegerLiteralTokenKind {
		t.Fatalf("expected lexing to resume after bad token, got %v", next.Kind)
	}
}

func TestLexRoundTrip(t *testing.T) {
	inputs := []string{
		"var x = 1 + 2; // trailing comment\nfunction f(a: int32): int32 { return a; }",
		"  /* leading */ class C { x: int32; }  \r\n\tvar y: object = C(1);",
		"",
		"   \t\n\n",
	}
	for i, input := range inputs {
		bag := diag.NewBag()
		tokens := Tokenize(source.New("", input), bag)
		var rebuilt string
		for _, tok := range tokens {
			rebuilt += tok.FullText()
		}
		if rebuilt != input {
			t.Fatalf("tests[%d] - round trip failed.\nwant=%q\ngot=%q", i, input, rebuilt)
		}
	}
}

func TestLexCommentTrivia(t *testing.T) {
	bag := diag.NewBag()
	lx := New(source.New("", "x // comment\ny"), bag)
	first := lx.Lex()
	if len(first.Trailing) == 0 {
		t.Fatalf("expected trailing trivia on first token")
	}
	found := false
	for _, tr := range first.Trailing {
		if tr.Kind == SingleLineCommentTrivia {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected single line comment in trailing trivia, got %+v", first.Trailing)
	}
}

func TestLexUnterminatedMultiLineComment(t *testing.T) {
	bag := diag.NewBag()
	lx := New(source.New("", "/* never closed"), bag)
	lx.Lex()
	if !bag.HasErrors() || bag.Diagnostics()[0].Code != diag.UnterminatedComment {
		t.Fatalf("expected UnterminatedComment diagnostic, got %v", bag.Diagnostics())
	}
}
