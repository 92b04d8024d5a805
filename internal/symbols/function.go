package symbols

import "github.com/lumen-lang/lumenc/internal/syntax"

// FunctionSymbol is a free function, an instance method (Receiver != nil),
// or a synthesized constructor (Declaration == nil, Name == ".ctor").
// OverloadFor links this symbol to the next candidate in its overload
// chain; the chain is singly linked and terminates at nil (§3, §9's "DAG,
// not a cycle" note).
type FunctionSymbol struct {
	Name        string
	Parameters  []*VariableSymbol // each has Kind == ParameterVariable
	ReturnType  *TypeSymbol
	Declaration *syntax.FunctionDeclaration // nil for a synthesized function (Main, .ctor)
	Receiver    *ClassSymbol                // nil for a free function
	OverloadFor *FunctionSymbol
}

// IsInstanceMethod reports whether this function has a class receiver.
func (f *FunctionSymbol) IsInstanceMethod() bool {
	return f.Receiver != nil
}

// IsSynthesized reports whether the function has no user-written syntax
// (Main synthesized from global statements, or a class's .ctor pair).
func (f *FunctionSymbol) IsSynthesized() bool {
	return f.Declaration == nil
}

// Overloads walks the overloadFor chain starting at f (f included, in
// chain order) and returns every candidate. Used by call-expression
// binding's first-match-wins resolution (§4.4 step 4).
func (f *FunctionSymbol) Overloads() []*FunctionSymbol {
	var chain []*FunctionSymbol
	for cur := f; cur != nil; cur = cur.OverloadFor {
		chain = append(chain, cur)
	}
	return chain
}
