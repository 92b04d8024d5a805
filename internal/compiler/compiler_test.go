package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumenc/internal/compiler"
	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/parser"
	"github.com/lumen-lang/lumenc/internal/source"
	"github.com/lumen-lang/lumenc/internal/symbols"
)

func compile(t *testing.T, src string) *compiler.Result {
	t.Helper()
	tree := parser.Parse(source.New("test.lumen", src))
	require.False(t, tree.Diags.HasErrors(), "parser reported errors: %v", tree.Diags.Sorted())
	return compiler.New(tree).Compile()
}

func codes(result *compiler.Result) []diag.Code {
	var out []diag.Code
	for _, d := range result.Diagnostics.Sorted() {
		out = append(out, d.Code)
	}
	return out
}

func TestIntegerWideningConstantFoldsWithNoDiagnostics(t *testing.T) {
	result := compile(t, `
function main(): void {
	var x: int64 = 1 + 2;
}
`)
	assert.Empty(t, codes(result))
}

func TestAssigningToAConstYieldsCannotAssign(t *testing.T) {
	result := compile(t, `
function main(): void {
	const k: int32 = 1;
	k = 2;
}
`)
	require.Len(t, codes(result), 1)
	assert.Equal(t, diag.CannotAssign, codes(result)[0])
	assert.True(t, result.Diagnostics.HasErrors())

	loc := result.Diagnostics.Sorted()[0].Location
	assert.Equal(t, "=", loc.SourceText(), "CannotAssign must anchor at the = token, not the assignment target")
}

func TestDivideByZeroIsCaughtAtBindTimeAndLeavesNoSurvivingDivision(t *testing.T) {
	result := compile(t, `
function main(): void {
	var x: int32 = 10 / 0;
}
`)
	require.Len(t, codes(result), 1)
	assert.Equal(t, diag.DivideByZero, codes(result)[0])
}

func TestConstantFalseIfElseReportsUnreachableThenBranch(t *testing.T) {
	result := compile(t, `
function main(): void {
	if false {
		writeLine("a");
	} else {
		writeLine("b");
	}
}
`)
	require.Len(t, codes(result), 1)
	assert.Equal(t, diag.UnreachableCode, codes(result)[0])
	assert.False(t, result.Diagnostics.HasErrors(), "UnreachableCode is a warning, not an error")

	loc := result.Diagnostics.Sorted()[0].Location
	text := loc.SourceText()
	assert.Contains(t, text, "writeLine(\"a\")")
}

func TestClassConstructorSynthesisProducesTwoCtors(t *testing.T) {
	result := compile(t, `
class P {
	x: int32;
	const tag: string = "p";
}
function main(): void {
}
`)
	assert.Empty(t, codes(result))

	class := findClass(t, result, "P")
	assert.NotNil(t, class.ZeroCtor)
	assert.NotNil(t, class.Ctor)
	assert.NotSame(t, class.ZeroCtor, class.Ctor, "a writable field still needs a distinct parameterized .ctor")

	zeroBody, ok := result.Bodies[class.ZeroCtor]
	require.True(t, ok, "the zero-arg ctor must have its own entry in result.Bodies")
	require.Len(t, zeroBody.Statements, 1, "zero-arg ctor assigns only the const default, not the field param")

	ctorBody, ok := result.Bodies[class.Ctor]
	require.True(t, ok, "the parameterized ctor must have its own entry in result.Bodies")
	require.Len(t, ctorBody.Statements, 2, "parameterized ctor assigns the field param then the const default")
}

func TestMissingReturnOnSomePathReportsAllPathsMustReturnAtFunctionIdentifier(t *testing.T) {
	result := compile(t, `
function f(): int32 {
	if true {
		return 1;
	}
}
`)
	require.Len(t, codes(result), 1)
	assert.Equal(t, diag.AllPathsMustReturn, codes(result)[0])
	assert.True(t, result.Diagnostics.HasErrors())

	loc := result.Diagnostics.Sorted()[0].Location
	assert.Equal(t, "f", loc.SourceText())
}

func findClass(t *testing.T, result *compiler.Result, name string) *symbols.ClassSymbol {
	t.Helper()
	for fn := range result.Bodies {
		if fn.Receiver != nil && fn.Receiver.Name == name {
			return fn.Receiver
		}
	}
	t.Fatalf("no class %q among result.Bodies' receivers", name)
	return nil
}
