package lexer

// TokenKind tags every token produced by the lexer, including keywords,
// punctuation/operators, literals and the synthetic Bad/EOF kinds.
type TokenKind int

const (
	BadTokenKind TokenKind = iota
	EOFTokenKind

	// Literals.
	IntegerLiteralTokenKind
	FloatLiteralTokenKind
	StringLiteralTokenKind
	CharLiteralTokenKind
	IdentifierTokenKind

	// Punctuation / operators.
	PlusTokenKind
	MinusTokenKind
	StarTokenKind
	SlashTokenKind
	PercentTokenKind
	BangTokenKind
	TildeTokenKind
	AmpersandTokenKind
	AmpersandAmpersandTokenKind
	PipeTokenKind
	PipePipeTokenKind
	CaretTokenKind
	EqualsTokenKind
	EqualsEqualsTokenKind
	BangEqualsTokenKind
	LessTokenKind
	LessOrEqualsTokenKind
	GreaterTokenKind
	GreaterOrEqualsTokenKind
	PlusEqualsTokenKind
	MinusEqualsTokenKind
	StarEqualsTokenKind
	SlashEqualsTokenKind
	PercentEqualsTokenKind
	AmpersandEqualsTokenKind
	PipeEqualsTokenKind
	CaretEqualsTokenKind
	FatArrowTokenKind
	OpenParenTokenKind
	CloseParenTokenKind
	OpenBraceTokenKind
	CloseBraceTokenKind
	CommaTokenKind
	DotTokenKind
	ColonTokenKind
	SemicolonTokenKind
	DotDotTokenKind

	// Keywords.
	VarKeywordTokenKind
	ConstKeywordTokenKind
	IfKeywordTokenKind
	ElseKeywordTokenKind
	WhileKeywordTokenKind
	DoKeywordTokenKind
	ForKeywordTokenKind
	InKeywordTokenKind
	BreakKeywordTokenKind
	ContinueKeywordTokenKind
	ReturnKeywordTokenKind
	FunctionKeywordTokenKind
	ClassKeywordTokenKind
	ThisKeywordTokenKind
	DefaultKeywordTokenKind
	TrueKeywordTokenKind
	FalseKeywordTokenKind

	// Built-in type keywords.
	ObjectKeywordTokenKind
	BoolKeywordTokenKind
	Int8KeywordTokenKind
	Int16KeywordTokenKind
	Int32KeywordTokenKind
	Int64KeywordTokenKind
	UInt8KeywordTokenKind
	UInt16KeywordTokenKind
	UInt32KeywordTokenKind
	UInt64KeywordTokenKind
	Float32KeywordTokenKind
	Float64KeywordTokenKind
	Float128KeywordTokenKind
	CharKeywordTokenKind
	StringKeywordTokenKind
	VoidKeywordTokenKind

	CompilationUnitTokenKind // synthetic EOF text
)

var tokenKindText = map[TokenKind]string{
	PlusTokenKind:              "+",
	MinusTokenKind:             "-",
	StarTokenKind:              "*",
	SlashTokenKind:             "/",
	PercentTokenKind:           "%",
	BangTokenKind:              "!",
	TildeTokenKind:             "~",
	AmpersandTokenKind:         "&",
	AmpersandAmpersandTokenKind: "&&",
	PipeTokenKind:              "|",
	PipePipeTokenKind:          "||",
	CaretTokenKind:             "^",
	EqualsTokenKind:            "=",
	EqualsEqualsTokenKind:      "==",
	BangEqualsTokenKind:        "!=",
	LessTokenKind:              "<",
	LessOrEqualsTokenKind:      "<=",
	GreaterTokenKind:           ">",
	GreaterOrEqualsTokenKind:   ">=",
	PlusEqualsTokenKind:        "+=",
	MinusEqualsTokenKind:       "-=",
	StarEqualsTokenKind:        "*=",
	SlashEqualsTokenKind:       "/=",
	PercentEqualsTokenKind:     "%=",
	AmpersandEqualsTokenKind:   "&=",
	PipeEqualsTokenKind:        "|=",
	CaretEqualsTokenKind:       "^=",
	FatArrowTokenKind:          "=>",
	OpenParenTokenKind:         "(",
	CloseParenTokenKind:        ")",
	OpenBraceTokenKind:         "{",
	CloseBraceTokenKind:        "}",
	CommaTokenKind:             ",",
	DotTokenKind:               ".",
	ColonTokenKind:             ":",
	SemicolonTokenKind:         ";",
	DotDotTokenKind:            "..",

	VarKeywordTokenKind:      "var",
	ConstKeywordTokenKind:    "const",
	IfKeywordTokenKind:       "if",
	ElseKeywordTokenKind:     "else",
	WhileKeywordTokenKind:    "while",
	DoKeywordTokenKind:       "do",
	ForKeywordTokenKind:      "for",
	InKeywordTokenKind:       "in",
	BreakKeywordTokenKind:    "break",
	ContinueKeywordTokenKind: "continue",
	ReturnKeywordTokenKind:   "return",
	FunctionKeywordTokenKind: "function",
	ClassKeywordTokenKind:    "class",
	ThisKeywordTokenKind:     "this",
	DefaultKeywordTokenKind:  "default",
	TrueKeywordTokenKind:     "true",
	FalseKeywordTokenKind:    "false",

	ObjectKeywordTokenKind:   "object",
	BoolKeywordTokenKind:     "bool",
	Int8KeywordTokenKind:     "int8",
	Int16KeywordTokenKind:    "int16",
	Int32KeywordTokenKind:    "int32",
	Int64KeywordTokenKind:    "int64",
	UInt8KeywordTokenKind:    "uint8",
	UInt16KeywordTokenKind:   "uint16",
	UInt32KeywordTokenKind:   "uint32",
	UInt64KeywordTokenKind:   "uint64",
	Float32KeywordTokenKind:  "float32",
	Float64KeywordTokenKind:  "float64",
	Float128KeywordTokenKind: "float128",
	CharKeywordTokenKind:     "char",
	StringKeywordTokenKind:   "string",
	VoidKeywordTokenKind:     "void",

	EOFTokenKind: "<eof>",
}

// keywords maps identifier text to its keyword TokenKind; it is a literal
// table that repeats tokenKindText's keyword/type entries.
var keywords = map[string]TokenKind{
	"var": VarKeywordTokenKind, "const": ConstKeywordTokenKind,
	"if": IfKeywordTokenKind, "else": ElseKeywordTokenKind,
	"while": WhileKeywordTokenKind, "do": DoKeywordTokenKind,
	"for": ForKeywordTokenKind, "in": InKeywordTokenKind,
	"break": BreakKeywordTokenKind, "continue": ContinueKeywordTokenKind,
	"return": ReturnKeywordTokenKind, "function": FunctionKeywordTokenKind,
	"class": ClassKeywordTokenKind, "this": ThisKeywordTokenKind,
	"default": DefaultKeywordTokenKind, "true": TrueKeywordTokenKind,
	"false": FalseKeywordTokenKind,

	"object": ObjectKeywordTokenKind, "bool": BoolKeywordTokenKind,
	"int8": Int8KeywordTokenKind, "int16": Int16KeywordTokenKind,
	"int32": Int32KeywordTokenKind, "int64": Int64KeywordTokenKind,
	"uint8": UInt8KeywordTokenKind, "uint16": UInt16KeywordTokenKind,
	"uint32": UInt32KeywordTokenKind, "uint64": UInt64KeywordTokenKind,
	"float32": Float32KeywordTokenKind, "float64": Float64KeywordTokenKind,
	"float128": Float128KeywordTokenKind,
	"char":     CharKeywordTokenKind, "string": StringKeywordTokenKind,
	"void": VoidKeywordTokenKind,
}

// LookupKeyword classifies text as a keyword TokenKind, or returns
// IdentifierTokenKind if it is not one.
func LookupKeyword(text string) TokenKind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return IdentifierTokenKind
}

// IsKeyword reports whether kind denotes a reserved word (including the
// built-in type names).
func IsKeyword(kind TokenKind) bool {
	return kind >= VarKeywordTokenKind && kind <= VoidKeywordTokenKind
}

// String renders the fixed text of a fixed-text token kind (operators,
// punctuation, keywords), or a placeholder for variable-text kinds.
func (k TokenKind) String() string {
	if text, ok := tokenKindText[k]; ok {
		return text
	}
	switch k {
	case BadTokenKind:
		return "<bad>"
	case IntegerLiteralTokenKind:
		return "<integer literal>"
	case FloatLiteralTokenKind:
		return "<float literal>"
	case StringLiteralTokenKind:
		return "<string literal>"
	case CharLiteralTokenKind:
		return "<char literal>"
	case IdentifierTokenKind:
		return "<identifier>"
	default:
		return "<unknown token>"
	}
}
