package binder

import (
	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/source"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// Binder binds one syntax tree's worth of declarations and statements
// against a BoundScope, accumulating diagnostics as it goes. It never
// aborts on an error: every bind* method always returns a usable bound
// node, substituting symbols.Error / BoundErrorExpression where resolution
// failed, so sibling diagnostics keep accumulating (§7's propagation
// policy).
type Binder struct {
	scope *BoundScope
	bag   *diag.Bag
	text  *source.Text // the Text backing the tree currently being bound, for diagnostic locations

	function *symbols.FunctionSymbol // enclosing function/method body, nil at global-statement scope
	class    *symbols.ClassSymbol    // enclosing class receiver, nil outside an instance method

	loops []loopFrame
}

type loopFrame struct {
	breakLabel    *BoundLabel
	continueLabel *BoundLabel
}

func newBinder(scope *BoundScope, bag *diag.Bag) *Binder {
	return &Binder{scope: scope, bag: bag}
}

func (b *Binder) loc(n syntax.Node) source.Location {
	return source.NewLocation(b.text, n.Span())
}

func (b *Binder) error(n syntax.Node, code diag.Code, format string, args ...interface{}) {
	b.bag.Error(diag.StageBinder, code, b.loc(n), format, args...)
}

// errorAtSpan reports at span directly, for the rarer diagnostic that
// anchors on a specific token (an operator, say) rather than a whole node.
func (b *Binder) errorAtSpan(span source.Span, code diag.Code, format string, args ...interface{}) {
	b.bag.Error(diag.StageBinder, code, source.NewLocation(b.text, span), format, args...)
}

func (b *Binder) pushScope() {
	b.scope = NewBoundScope(b.scope)
}

func (b *Binder) popScope() {
	b.scope = b.scope.Parent()
}

// currentLoop returns the innermost enclosing loop's labels, or false if
// break/continue would be illegal here.
func (b *Binder) currentLoop() (loopFrame, bool) {
	if len(b.loops) == 0 {
		return loopFrame{}, false
	}
	return b.loops[len(b.loops)-1], true
}

func (b *Binder) pushLoop(f loopFrame) {
	b.loops = append(b.loops, f)
}

func (b *Binder) popLoop() {
	b.loops = b.loops[:len(b.loops)-1]
}

// resolveTypeClause resolves a `: Name` clause to a TypeSymbol, checking
// primitives first and the binder's own scope's declared classes second.
// An unresolved name reports UndefinedType and yields the error sentinel.
func (b *Binder) resolveTypeClause(tc *syntax.TypeClause) *symbols.TypeSymbol {
	name := tc.TypeName()
	if t, ok := symbols.LookupPrimitive(name); ok {
		return t
	}
	if c, ok := b.scope.TryLookupClass(name); ok {
		return c.Type
	}
	b.error(tc, diag.UndefinedType, "undefined type %q", name)
	return symbols.Error
}

// resolveTypeName is resolveTypeClause's counterpart for a bare identifier
// token used as a conversion-call callee (`int32(x)`) rather than a
// TypeClause node.
func (b *Binder) resolveTypeName(name string) (*symbols.TypeSymbol, bool) {
	if t, ok := symbols.LookupPrimitive(name); ok {
		return t, true
	}
	if c, ok := b.scope.TryLookupClass(name); ok {
		return c.Type, true
	}
	return nil, false
}

// BindGlobalScope is the first of the binder's two public entry points. It
// declares every class and function across trees (phases 1 and 2), then
// binds whichever single tree contributes global statements (phase 3),
// synthesizing Main when appropriate (§4.3, §4.4).
func BindGlobalScope(previous *BoundGlobalScope, trees []*syntax.Tree) *BoundGlobalScope {
	parent := createParentScope(previous)
	bag := diag.NewBag()
	b := newBinder(NewBoundScope(parent), bag)

	classTexts := make(map[*symbols.ClassSymbol]*source.Text)
	functionTexts := make(map[*symbols.FunctionSymbol]*source.Text)

	type classEntry struct {
		tree  *syntax.Tree
		class *symbols.ClassSymbol
		decl  *syntax.ClassDeclaration
	}
	var classEntries []classEntry

	// Phase 1a: declare every class's name up front so field types and
	// method signatures can reference any class regardless of declaration
	// order, across trees.
	for _, tree := range trees {
		for _, decl := range tree.ClassDeclarations() {
			class := symbols.NewClassSymbol(decl.IdentifierToken.Text, decl)
			if !b.scope.TryDeclareClass(class) {
				b.text = tree.Text
				b.error(decl, diag.SymbolAlreadyDeclared, "a class named %q is already declared", class.Name)
				continue
			}
			classEntries = append(classEntries, classEntry{tree: tree, class: class, decl: decl})
			classTexts[class] = tree.Text
		}
	}

	// Phase 1b: bind each class's fields and methods now that every class
	// name in the compilation is visible, and synthesize its .ctor pair.
	var classes []*symbols.ClassSymbol
	for _, ce := range classEntries {
		b.text = ce.tree.Text
		b.bindClassBody(ce.class, ce.decl)
		classes = append(classes, ce.class)
		for _, m := range ce.class.Methods {
			functionTexts[m] = ce.tree.Text
		}
	}

	// Phase 2: declare every free function's signature.
	var functions []*symbols.FunctionSymbol
	var userMain *symbols.FunctionSymbol
	for _, tree := range trees {
		b.text = tree.Text
		for _, decl := range tree.FunctionDeclarations() {
			fn := b.bindFunctionSignature(decl, nil)
			b.declareFunction(fn)
			functions = append(functions, fn)
			functionTexts[fn] = tree.Text
			if fn.Name == "Main" {
				userMain = fn
				if len(fn.Parameters) != 0 || fn.ReturnType != symbols.Void {
					b.error(decl, diag.MainMustHaveCorrectSignature, "Main must take no parameters and return void")
				}
			}
		}
	}

	// Phase 3: bind the global statements of whichever single tree has
	// them.
	var globalStatementsTree *syntax.Tree
	var globalStatements []syntax.Statement
	for _, tree := range trees {
		stmts := tree.GlobalStatements()
		if len(stmts) == 0 {
			continue
		}
		if globalStatementsTree != nil {
			b.text = tree.Text
			b.error(stmts[0].Statement, diag.OnlyOneFileCanHaveGlobalStatements, "only one file may contain global statements")
			continue
		}
		globalStatementsTree = tree
		for _, gs := range stmts {
			globalStatements = append(globalStatements, gs.Statement)
		}
	}

	var boundStatements []BoundStatement
	var globals []*symbols.VariableSymbol
	var mainFunction *symbols.FunctionSymbol

	if len(globalStatements) > 0 {
		if userMain != nil {
			b.text = globalStatementsTree.Text
			b.error(globalStatements[0], diag.CannotMixMainAndGlobalStatements, "a file cannot mix a Main function with global statements")
		}

		placeholder := &symbols.FunctionSymbol{Name: "Main", ReturnType: symbols.Void}
		gb := newBinder(b.scope, bag)
		gb.text = globalStatementsTree.Text
		gb.function = placeholder

		for _, stmt := range globalStatements {
			if decl, ok := stmt.(*syntax.VariableDeclaration); ok {
				boundDecl, v := gb.bindGlobalVariableDeclaration(decl)
				boundStatements = append(boundStatements, boundDecl)
				globals = append(globals, v)
				continue
			}
			boundStatements = append(boundStatements, gb.bindStatement(stmt))
		}

		if userMain == nil {
			mainFunction = placeholder
		}
	} else if userMain != nil {
		mainFunction = userMain
	}

	return &BoundGlobalScope{
		Previous:       previous,
		Diagnostics:    bag,
		Classes:        classes,
		Functions:      functions,
		Variables:      globals,
		Statements:     boundStatements,
		MainFunction:   mainFunction,
		ScriptFunction: nil,
		ClassTexts:     classTexts,
		FunctionTexts:  functionTexts,
	}
}

// declareFunction installs fn into the binder's scope, linking it onto an
// existing overload chain when the name already resolves to a function
// (§4.4 phase 2's "duplicate names collide unless part of an overload
// chain" rule: any two declarations sharing a name are treated as
// overloads of one another — arity/type ambiguity is left to call-site
// resolution, per the first-match-wins policy).
func (b *Binder) declareFunction(fn *symbols.FunctionSymbol) {
	if existing, ok := b.scope.TryLookupFunction(fn.Name); ok {
		fn.OverloadFor = existing
	}
	b.scope.TryDeclareFunction(fn)
}

// BindProgram is the binder's second public entry point: it binds every
// function and method body, plus every class's synthesized constructor
// body, against globalScope's declarations (§4.4 phase 4, §6).
func BindProgram(previous *BoundProgram, globalScope *BoundGlobalScope) *BoundProgram {
	parent := createParentScope(globalScope.Previous)
	scope := NewBoundScope(parent)
	for _, c := range globalScope.Classes {
		scope.TryDeclareClass(c)
	}
	for _, f := range globalScope.Functions {
		scope.TryDeclareFunction(f)
	}
	for _, v := range globalScope.Variables {
		scope.TryDeclareVariable(v)
	}

	bag := diag.NewBag()
	bag.Append(globalScope.Diagnostics)

	functions := make(map[*symbols.FunctionSymbol]*BoundBlockStatement)

	for _, class := range globalScope.Classes {
		for _, method := range class.Methods {
			functions[method] = bindFunctionBody(scope, bag, method, class, globalScope.FunctionTexts[method])
		}
		// The loop above already gave ZeroCtor/Ctor an empty body (both
		// have Declaration == nil); overwrite with their real synthesized
		// bodies so Functions[class.ZeroCtor] and Functions[class.Ctor]
		// each hold their own constructor's logic, not a shared slot.
		zeroBody, ctorBody := bindCtorBodies(class)
		functions[class.ZeroCtor] = zeroBody
		functions[class.Ctor] = ctorBody
	}

	for _, fn := range globalScope.Functions {
		functions[fn] = bindFunctionBody(scope, bag, fn, nil, globalScope.FunctionTexts[fn])
	}

	if globalScope.MainFunction != nil {
		if globalScope.MainFunction.IsSynthesized() {
			functions[globalScope.MainFunction] = &BoundBlockStatement{Statements: globalScope.Statements}
		} else {
			functions[globalScope.MainFunction] = bindFunctionBody(scope, bag, globalScope.MainFunction, nil, globalScope.FunctionTexts[globalScope.MainFunction])
		}
	}

	if bag.HasErrors() {
		functions = map[*symbols.FunctionSymbol]*BoundBlockStatement{}
	}

	return &BoundProgram{
		Previous:       previous,
		Diagnostics:    bag,
		MainFunction:   globalScope.MainFunction,
		ScriptFunction: globalScope.ScriptFunction,
		Functions:      functions,
	}
}

// bindFunctionBody binds decl's Body block in a fresh child scope seeded
// with its parameters (and `this`, for an instance method). A synthesized
// function (fn.Declaration == nil: a class's .ctor pair, reached through
// class.Methods) has no body to bind and gets an empty block.
func bindFunctionBody(parent *BoundScope, bag *diag.Bag, fn *symbols.FunctionSymbol, class *symbols.ClassSymbol, text *source.Text) *BoundBlockStatement {
	if fn.Declaration == nil {
		return &BoundBlockStatement{}
	}
	b := newBinder(NewBoundScope(parent), bag)
	b.text = text
	b.function = fn
	b.class = class
	for _, p := range fn.Parameters {
		b.scope.TryDeclareVariable(p)
	}
	return b.bindBlockStatement(fn.Declaration.Body)
}
