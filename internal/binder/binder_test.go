package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumenc/internal/binder"
	"github.com/lumen-lang/lumenc/internal/parser"
	"github.com/lumen-lang/lumenc/internal/source"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// firstStatement unwraps the BoundSequencePointStatement every direct block
// statement is bound into, returning the statement that sat inside it.
func firstStatement(body *binder.BoundBlockStatement) binder.BoundStatement {
	sp := body.Statements[0].(*binder.BoundSequencePointStatement)
	return sp.Statement
}

func bindSource(t *testing.T, src string) (*binder.BoundGlobalScope, *binder.BoundProgram) {
	t.Helper()
	tree := parser.Parse(source.New("test.lumen", src))
	require.False(t, tree.Diags.HasErrors(), "parser reported errors: %v", tree.Diags.Sorted())

	globalScope := binder.BindGlobalScope(nil, []*syntax.Tree{tree})
	program := binder.BindProgram(nil, globalScope)
	return globalScope, program
}

func TestIntegerWideningConstantFolds(t *testing.T) {
	globalScope, program := bindSource(t, `
function main(): void {
	var x: int64 = 1 + 2;
}
`)
	require.False(t, program.Diagnostics.HasErrors())

	fn := globalScope.Functions[0]
	require.Equal(t, "main", fn.Name)
}

func TestIntegerWideningConstantFoldsInsideBody(t *testing.T) {
	_, program := bindSource(t, `
function main(): void {
	var x: int64 = 1 + 2;
}
`)
	require.Len(t, program.Functions, 1)
	for _, body := range program.Functions {
		decl, ok := firstStatement(body).(*binder.BoundVariableDeclaration)
		require.True(t, ok)
		lit, ok := decl.Initializer.(*binder.BoundLiteralExpression)
		require.True(t, ok, "expected the constant to fold to a literal, got %T", decl.Initializer)
		assert.Equal(t, symbols.Int64, lit.ValueType)
		assert.Equal(t, int64(3), lit.ValueValue)
	}
}

func TestDivideByZeroConstantIsDiagnosed(t *testing.T) {
	tree := parser.Parse(source.New("test.lumen", `
function main(): void {
	var x: int32 = 1 / 0;
}
`))
	require.False(t, tree.Diags.HasErrors())

	globalScope := binder.BindGlobalScope(nil, []*syntax.Tree{tree})
	program := binder.BindProgram(nil, globalScope)
	assert.True(t, program.Diagnostics.HasErrors())
}

func TestUndefinedVariableIsDiagnosed(t *testing.T) {
	tree := parser.Parse(source.New("test.lumen", `
function main(): void {
	writeLine(y);
}
`))
	require.False(t, tree.Diags.HasErrors())

	globalScope := binder.BindGlobalScope(nil, []*syntax.Tree{tree})
	program := binder.BindProgram(nil, globalScope)
	assert.True(t, program.Diagnostics.HasErrors())
	assert.Empty(t, program.Functions, "a program with binding errors must report no lowerable function bodies")
}

func TestClassCtorSynthesizesFieldAssignments(t *testing.T) {
	globalScope, program := bindSource(t, `
class Point {
	x: int32;
	y: int32;
}

function main(): void {
	var p: Point = Point(1, 2);
}
`)
	require.False(t, program.Diagnostics.HasErrors())
	require.Len(t, globalScope.Classes, 1)

	point := globalScope.Classes[0]
	require.NotNil(t, point.Ctor)
	require.Len(t, point.CtorParameters, 2)
	assert.Equal(t, "x", point.CtorParameters[0].Name)
	assert.Equal(t, "y", point.CtorParameters[1].Name)

	ctorBody, ok := program.Functions[point.Ctor]
	require.True(t, ok)
	require.Len(t, ctorBody.Statements, 2)
	for _, s := range ctorBody.Statements {
		stmt, ok := s.(*binder.BoundExpressionStatement)
		require.True(t, ok)
		assign, ok := stmt.Expr.(*binder.BoundFieldAssignmentExpression)
		require.True(t, ok)
		_, ok = assign.Instance.(*binder.BoundThisExpression)
		require.True(t, ok)
	}

	zeroBody, ok := program.Functions[point.ZeroCtor]
	require.True(t, ok)
	assert.Empty(t, zeroBody.Statements, "Point has no const fields, so the zero-arg ctor assigns nothing")
}

func TestZeroAndParameterizedCtorsHaveDistinctBodiesWhenClassMixesFieldKinds(t *testing.T) {
	globalScope, program := bindSource(t, `
class Tagged {
	const kind: string = "tagged";
	value: int32;
}

function main(): void {
	var a: Tagged = Tagged();
	var b: Tagged = Tagged(1);
}
`)
	require.False(t, program.Diagnostics.HasErrors())
	require.Len(t, globalScope.Classes, 1)
	tagged := globalScope.Classes[0]
	require.NotSame(t, tagged.ZeroCtor, tagged.Ctor)

	zeroBody, ok := program.Functions[tagged.ZeroCtor]
	require.True(t, ok)
	require.Len(t, zeroBody.Statements, 1, "the zero-arg ctor assigns only the const default, never the param")

	ctorBody, ok := program.Functions[tagged.Ctor]
	require.True(t, ok)
	require.Len(t, ctorBody.Statements, 2, "the parameterized ctor assigns the param then the const default")

	stmt, ok := ctorBody.Statements[0].(*binder.BoundExpressionStatement)
	require.True(t, ok)
	assign, ok := stmt.Expr.(*binder.BoundFieldAssignmentExpression)
	require.True(t, ok)
	assert.Equal(t, "value", assign.Field.Name)
	_, ok = assign.Value.(*binder.BoundVariableExpression)
	require.True(t, ok, "the parameterized ctor's first assignment must come from its own parameter")
}

func TestZeroArgCtorWhenNoNonConstFields(t *testing.T) {
	globalScope, program := bindSource(t, `
class Origin {
	const label: string = "origin";
}

function main(): void {
	var o: Origin = Origin();
}
`)
	require.False(t, program.Diagnostics.HasErrors())
	origin := globalScope.Classes[0]
	assert.Same(t, origin.ZeroCtor, origin.Ctor)
	assert.Empty(t, origin.CtorParameters)

	body, ok := program.Functions[origin.ZeroCtor]
	require.True(t, ok)
	require.Len(t, body.Statements, 1, "the shared ctor still assigns the const field's default")
}

func TestOverloadResolutionFirstMatchWins(t *testing.T) {
	_, program := bindSource(t, `
function describe(value: int32): void {
	writeLine("int");
}

function describe(value: float64): void {
	writeLine("float");
}

function main(): void {
	describe(1);
}
`)
	require.False(t, program.Diagnostics.HasErrors())

	var mainBody *binder.BoundBlockStatement
	for fn, body := range program.Functions {
		if fn.Name == "main" {
			mainBody = body
		}
	}
	require.NotNil(t, mainBody)
	stmt, ok := firstStatement(mainBody).(*binder.BoundExpressionStatement)
	require.True(t, ok)
	call, ok := stmt.Expr.(*binder.BoundCallExpression)
	require.True(t, ok)
	assert.Equal(t, symbols.Int32, call.Function.Parameters[0].Type)
}

func TestBreakOutsideLoopIsDiagnosed(t *testing.T) {
	tree := parser.Parse(source.New("test.lumen", `
function main(): void {
	break;
}
`))
	globalScope := binder.BindGlobalScope(nil, []*syntax.Tree{tree})
	program := binder.BindProgram(nil, globalScope)
	assert.True(t, program.Diagnostics.HasErrors())
}

func TestForLoopRangeVariableIsInt32(t *testing.T) {
	_, program := bindSource(t, `
function main(): void {
	for i in 0..10 {
		writeLine(i);
	}
}
`)
	for _, body := range program.Functions {
		forStmt, ok := firstStatement(body).(*binder.BoundForStatement)
		require.True(t, ok)
		assert.Equal(t, symbols.Int32, forStmt.Variable.Type)
	}
}

func TestConversionLatticeClassification(t *testing.T) {
	assert.Equal(t, binder.ConversionIdentity, binder.Classify(symbols.Int32, symbols.Int32))
	assert.Equal(t, binder.ConversionImplicit, binder.Classify(symbols.Int32, symbols.Int64))
	assert.Equal(t, binder.ConversionExplicit, binder.Classify(symbols.Int64, symbols.Int32))
	assert.Equal(t, binder.ConversionNone, binder.Classify(symbols.Bool, symbols.Int32))
	assert.Equal(t, binder.ConversionExplicit, binder.Classify(symbols.Float64, symbols.Int32))
	assert.Equal(t, binder.ConversionImplicit, binder.Classify(symbols.Int32, symbols.Object))
}
