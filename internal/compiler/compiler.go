// Package compiler ties the pipeline together: parse -> bind -> lower ->
// analyze, chained across REPL-style incremental compilations the way
// BoundGlobalScope/BoundProgram's Previous links already anticipate (§4.3,
// §4.6).
package compiler

import (
	"github.com/lumen-lang/lumenc/internal/binder"
	"github.com/lumen-lang/lumenc/internal/cfg"
	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/lowerer"
	"github.com/lumen-lang/lumenc/internal/source"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// Compilation is one lex/parse/bind/lower/analyze run, optionally chained
// onto a Previous one so a later run's global scope can see the earlier
// run's classes, functions and globals (the incremental/REPL case; a
// one-shot file build just passes Previous = nil).
type Compilation struct {
	Previous *Compilation
	trees    []*syntax.Tree

	globalScope *binder.BoundGlobalScope // memoized by GlobalScope
}

// New starts a compilation chain from trees with no earlier compilation.
func New(trees ...*syntax.Tree) *Compilation {
	return &Compilation{trees: trees}
}

// ContinueWith starts a new compilation over trees, chained onto c as its
// Previous — the shape a REPL uses to feed each new line back in with every
// earlier line's declarations still in scope (§4.3).
func (c *Compilation) ContinueWith(trees ...*syntax.Tree) *Compilation {
	return &Compilation{Previous: c, trees: trees}
}

// GlobalScope runs (and memoizes) binder.BindGlobalScope for this
// compilation, chained onto Previous's global scope.
func (c *Compilation) GlobalScope() *binder.BoundGlobalScope {
	if c.globalScope == nil {
		var previous *binder.BoundGlobalScope
		if c.Previous != nil {
			previous = c.Previous.GlobalScope()
		}
		c.globalScope = binder.BindGlobalScope(previous, c.trees)
	}
	return c.globalScope
}

// Result is everything a driver needs after a Compile call: the fully
// bound-and-lowered program plus the final diagnostics bag (declaration
// errors, body-binding errors, and any UnreachableCode/AllPathsMustReturn
// findings from the CFG analysis pass).
type Result struct {
	Program *binder.BoundProgram

	// Bodies holds each function's lowered, goto-form statement list —
	// what a downstream emitter would actually walk, keyed by
	// FunctionSymbol. A class's .zeroCtor and .ctor are ordinary keys here
	// too, each holding its own synthesized constructor body (§6). Empty
	// when Diagnostics.HasErrors() (§7's emission-gating rule).
	Bodies map[*symbols.FunctionSymbol]*binder.BoundBlockStatement

	Diagnostics *diag.Bag
}

// Compile runs the full pipeline: bind every declaration and body, then for
// every resulting function body, lower it to goto-form and run the CFG
// analyzer over the result, feeding UnreachableCode and AllPathsMustReturn
// findings back into the diagnostics bag (§4.5, §4.6). It never panics on
// malformed input — every failure becomes a Diagnostic in the result.
func (c *Compilation) Compile() *Result {
	globalScope := c.GlobalScope()

	var previousProgram *binder.BoundProgram
	if c.Previous != nil {
		previousProgram = c.Previous.Compile().Program
	}
	program := binder.BindProgram(previousProgram, globalScope)

	bag := diag.NewBag()
	bag.Append(program.Diagnostics)

	bodies := make(map[*symbols.FunctionSymbol]*binder.BoundBlockStatement, len(program.Functions))
	for fn, body := range program.Functions {
		lowered := lowerer.Lower(body)
		bodies[fn] = lowered
		analyzeFunction(bag, fn, lowered, globalScope.FunctionTexts[fn])
	}

	if bag.HasErrors() {
		bodies = map[*symbols.FunctionSymbol]*binder.BoundBlockStatement{}
	}

	return &Result{Program: program, Bodies: bodies, Diagnostics: bag}
}

// analyzeFunction builds fn's control-flow graph and reports the two
// diagnostics the CFG stage owns: a warning per statement the forward
// reachability pass never visits, and (for a non-void, user-written
// function only) an error when some path never reaches a Return (§4.6).
// Synthesized functions (Main from global statements, .ctor/.zeroCtor)
// have no declaration to point a diagnostic at and are skipped by the
// return check; the unreachable-code check runs for every function.
func analyzeFunction(bag *diag.Bag, fn *symbols.FunctionSymbol, body *binder.BoundBlockStatement, text *source.Text) {
	graph := cfg.Build(body)

	for _, stmt := range graph.UnreachableStatements() {
		loc, ok := cfg.StatementLocation(stmt)
		if !ok {
			continue
		}
		bag.Warning(diag.StageCFG, diag.UnreachableCode, loc, "unreachable code")
	}

	if fn.ReturnType == symbols.Void || fn.IsSynthesized() {
		return
	}
	if !graph.AllPathsReturn() {
		loc := source.NewLocation(text, fn.Declaration.IdentifierToken.Span)
		bag.Error(diag.StageCFG, diag.AllPathsMustReturn, loc, "not all code paths return a value in %q", fn.Name)
	}
}
