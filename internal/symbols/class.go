package symbols

import "github.com/lumen-lang/lumenc/internal/syntax"

// FieldSymbol is one instance field of a class. Const fields are excluded
// from the synthesized constructor's parameter list (§4.4 phase 1).
type FieldSymbol struct {
	Name          string
	Type          *TypeSymbol
	Const         bool
	ConstantValue interface{} // set by the binder when the field's initializer folds to a constant
}

// ClassSymbol is a reference type: an ordered field list, an ordered
// method list, and the synthesized zero-arg/parameterized constructor
// pair derived from its writable fields. Type wraps this ClassSymbol as
// the TypeSymbol other symbols refer to.
type ClassSymbol struct {
	Name        string
	Type        *TypeSymbol
	Declaration *syntax.ClassDeclaration

	Fields  []*FieldSymbol    // every field, in declaration order
	Methods []*FunctionSymbol // every instance method, in declaration order

	// CtorParameters is the writable-field subsequence of Fields, in
	// order — the parameter list of the parameterized .ctor.
	CtorParameters []*FieldSymbol

	ZeroCtor *FunctionSymbol // the synthesized no-arg .ctor
	Ctor     *FunctionSymbol // the synthesized parameterized .ctor, linked to ZeroCtor via OverloadFor
}

// NewClassSymbol declares a new class and its wrapping TypeSymbol. The
// caller populates Fields/Methods/CtorParameters/ZeroCtor/Ctor as binding
// proceeds (§4.4 phase 1 runs before phase 2, so a class's own fields are
// fully known before any function forward-declaration consults it).
func NewClassSymbol(name string, decl *syntax.ClassDeclaration) *ClassSymbol {
	c := &ClassSymbol{Name: name, Declaration: decl}
	c.Type = NewClassType(c)
	return c
}

// FindField looks up a field by name, declaration order being irrelevant
// to lookup.
func (c *ClassSymbol) FindField(name string) (*FieldSymbol, bool) {
	for _, f := range c.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}

// FindMethod looks up a method by name. It returns the most recently
// declared FunctionSymbol with that name, which is the head of that name's
// overload chain (each later overload links to the earlier one through
// OverloadFor); overload resolution on the returned symbol's chain is the
// caller's responsibility.
func (c *ClassSymbol) FindMethod(name string) (*FunctionSymbol, bool) {
	for i := len(c.Methods) - 1; i >= 0; i-- {
		if m := c.Methods[i]; m.Name == name {
			return m, true
		}
	}
	return nil, false
}
