package cfg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-lang/lumenc/internal/binder"
	"github.com/lumen-lang/lumenc/internal/cfg"
	"github.com/lumen-lang/lumenc/internal/lowerer"
	"github.com/lumen-lang/lumenc/internal/parser"
	"github.com/lumen-lang/lumenc/internal/source"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

func buildGraph(t *testing.T, src string) *cfg.Graph {
	t.Helper()
	tree := parser.Parse(source.New("test.lumen", src))
	require.False(t, tree.Diags.HasErrors(), "parser reported errors: %v", tree.Diags.Sorted())

	globalScope := binder.BindGlobalScope(nil, []*syntax.Tree{tree})
	program := binder.BindProgram(nil, globalScope)
	require.False(t, program.Diagnostics.HasErrors(), "binder reported errors: %v", program.Diagnostics.Sorted())

	var body *binder.BoundBlockStatement
	for fn, b := range program.Functions {
		if fn.Name == "main" || fn.Name == "f" {
			body = b
		}
	}
	require.NotNil(t, body)
	return cfg.Build(lowerer.Lower(body))
}

func TestAllPathsReturnTrueWhenEveryBranchReturns(t *testing.T) {
	g := buildGraph(t, `
function f(): int32 {
	if true {
		return 1;
	} else {
		return 2;
	}
}
`)
	assert.True(t, g.AllPathsReturn())
}

func TestAllPathsReturnFalseOnMissingElseReturn(t *testing.T) {
	g := buildGraph(t, `
function f(): int32 {
	if true {
		return 1;
	}
}
`)
	assert.False(t, g.AllPathsReturn())
}

func TestAllPathsReturnFalseOnEmptyBody(t *testing.T) {
	g := buildGraph(t, `
function main(): void {
}
`)
	// A void function has nothing forcing a Return; Start falls straight
	// through to End without passing through one.
	assert.False(t, g.AllPathsReturn())
}

func TestUnreachableStatementAfterReturn(t *testing.T) {
	g := buildGraph(t, `
function main(): void {
	return;
	writeLine("dead");
}
`)
	unreachable := g.UnreachableStatements()
	require.NotEmpty(t, unreachable)
}

func TestConstantFalseConditionMakesThenBranchUnreachable(t *testing.T) {
	g := buildGraph(t, `
function main(): void {
	if false {
		writeLine("a");
	} else {
		writeLine("b");
	}
}
`)
	unreachable := g.UnreachableStatements()
	require.NotEmpty(t, unreachable)

	var sawLocation bool
	for _, s := range unreachable {
		if _, ok := cfg.StatementLocation(s); ok {
			sawLocation = true
		}
	}
	assert.True(t, sawLocation, "expected at least one unreachable statement to carry a source location")
}

func TestReachableFindsEveryRealBlockInAStraightLineFunction(t *testing.T) {
	g := buildGraph(t, `
function main(): void {
	var x: int32 = 1;
	writeLine(x);
}
`)
	reachable := g.Reachable()
	assert.Equal(t, len(g.Blocks), len(reachable))
}
