// Package diag implements the diagnostics-as-data model used by every
// pipeline stage: user-visible errors are always Diagnostic values
// accumulated in a Bag, never Go errors or panics.
package diag

import (
	"fmt"

	"github.com/lumen-lang/lumenc/internal/source"
)

// Stage identifies which compiler phase produced a diagnostic.
type Stage string

const (
	StageLexer   Stage = "lexer"
	StageParser  Stage = "parser"
	StageBinder  Stage = "binder"
	StageLowerer Stage = "lowerer"
	StageCFG     Stage = "cfg"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Code is a stable identifier for a diagnostic kind.
type Code string

// The representative, not-exhaustive code list from the specification.
const (
	BadCharacter                        Code = "BadCharacter"
	UnterminatedString                  Code = "UnterminatedString"
	UnterminatedComment                 Code = "UnterminatedComment"
	InvalidNumber                       Code = "InvalidNumber"
	InvalidCharacterLiteral             Code = "InvalidCharacterLiteral"
	UnexpectedToken                     Code = "UnexpectedToken"
	UndefinedType                       Code = "UndefinedType"
	UndefinedVariable                   Code = "UndefinedVariable"
	UndefinedFunction                   Code = "UndefinedFunction"
	NotAFunction                        Code = "NotAFunction"
	NotAVariable                        Code = "NotAVariable"
	NotAClass                           Code = "NotAClass"
	SymbolAlreadyDeclared               Code = "SymbolAlreadyDeclared"
	ParameterAlreadyDeclared            Code = "ParameterAlreadyDeclared"
	CannotAssign                        Code = "CannotAssign"
	CannotConvert                       Code = "CannotConvert"
	CannotConvertImplicitly             Code = "CannotConvertImplicitly"
	UndefinedUnaryOperator              Code = "UndefinedUnaryOperator"
	UndefinedBinaryOperator             Code = "UndefinedBinaryOperator"
	ExpressionMustHaveValue             Code = "ExpressionMustHaveValue"
	InvalidBreakOrContinue              Code = "InvalidBreakOrContinue"
	InvalidReturnExpression             Code = "InvalidReturnExpression"
	MissingReturnExpression             Code = "MissingReturnExpression"
	AllPathsMustReturn                  Code = "AllPathsMustReturn"
	InvalidExpressionStatement          Code = "InvalidExpressionStatement"
	DivideByZero                        Code = "DivideByZero"
	UnreachableCode                     Code = "UnreachableCode"
	CannotMixMainAndGlobalStatements    Code = "CannotMixMainAndGlobalStatements"
	MainMustHaveCorrectSignature        Code = "MainMustHaveCorrectSignature"
	OnlyOneFileCanHaveGlobalStatements  Code = "OnlyOneFileCanHaveGlobalStatements"
	CannotUseThisOutsideOfReceiver      Code = "CannotUseThisOutsideOfReceiver"
	UndefinedClassField                 Code = "UndefinedClassField"
	InvalidReference                    Code = "InvalidReference"
	RequiredTypeNotFound                Code = "RequiredTypeNotFound"
	RequiredTypeAmbiguous               Code = "RequiredTypeAmbiguous"
	RequiredMethodNotFound              Code = "RequiredMethodNotFound"
)

// Diagnostic is a single user-visible error or warning, carrying enough
// context to render a pretty message without re-walking the tree.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Location source.Location
}

func (d Diagnostic) String() string {
	file := d.Location.FileName()
	if file == "" {
		// An anonymous Text (a REPL line with no backing file) still has a
		// unique ulid-stamped ID, so two chained "previous" scopes that are
		// both anonymous don't render as indistinguishable "<unknown>"s.
		if d.Location.Text != nil {
			file = "<anonymous:" + d.Location.Text.ID() + ">"
		} else {
			file = "<unknown>"
		}
	}
	return fmt.Sprintf("%s:%d:%d: %s[%s]: %s", file, d.Location.StartLine(), d.Location.StartColumn(), d.Severity, d.Code, d.Message)
}

// IsError reports whether the diagnostic is an error (as opposed to a warning).
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}
