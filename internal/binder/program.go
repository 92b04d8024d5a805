package binder

import (
	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/source"
	"github.com/lumen-lang/lumenc/internal/symbols"
)

// BoundGlobalScope is the result of binding a compilation's declaration
// surface: every class, function, and global variable it (and, through
// Previous, every earlier REPL-chained compilation) declares, plus the
// bound global statements and the resolved entry point (§4.3, §6).
type BoundGlobalScope struct {
	Previous    *BoundGlobalScope
	Diagnostics *diag.Bag

	Classes    []*symbols.ClassSymbol
	Functions  []*symbols.FunctionSymbol
	Variables  []*symbols.VariableSymbol
	Statements []BoundStatement

	MainFunction   *symbols.FunctionSymbol
	ScriptFunction *symbols.FunctionSymbol // always nil; see DESIGN.md's Open Question 1 decision

	// ClassTexts/FunctionTexts recover which source Text a class or
	// function came from, so BindProgram can attribute body-binding
	// diagnostics to the right file without re-deriving it from the
	// syntax tree each time.
	ClassTexts    map[*symbols.ClassSymbol]*source.Text
	FunctionTexts map[*symbols.FunctionSymbol]*source.Text
}

// BoundProgram is the fully bound, not-yet-lowered form the lowerer and CFG
// analyzer consume: every function's body, including each class's
// synthesized .zeroCtor/.ctor under their own FunctionSymbol keys (§6).
type BoundProgram struct {
	Previous    *BoundProgram
	Diagnostics *diag.Bag

	MainFunction   *symbols.FunctionSymbol
	ScriptFunction *symbols.FunctionSymbol

	Functions map[*symbols.FunctionSymbol]*BoundBlockStatement
}

// createParentScope rebuilds the BoundScope chain a new compilation binds
// against: the fixed root of built-ins, followed by one scope per earlier
// compilation in the Previous chain (oldest first), each replaying that
// compilation's declared classes, then functions, then variables (§4.3's
// "previous global scope chained under root" rule — classes first so a
// later compilation's functions can reference an earlier compilation's
// class types).
func createParentScope(previous *BoundGlobalScope) *BoundScope {
	var chain []*BoundGlobalScope
	for gs := previous; gs != nil; gs = gs.Previous {
		chain = append(chain, gs)
	}

	parent := NewRootScope()
	for i := len(chain) - 1; i >= 0; i-- {
		gs := chain[i]
		scope := NewBoundScope(parent)
		for _, c := range gs.Classes {
			scope.TryDeclareClass(c)
		}
		for _, f := range gs.Functions {
			scope.TryDeclareFunction(f)
		}
		for _, v := range gs.Variables {
			scope.TryDeclareVariable(v)
		}
		parent = scope
	}
	return parent
}
