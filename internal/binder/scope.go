package binder

import "github.com/lumen-lang/lumenc/internal/symbols"

// BoundScope is a parent-chained lexical scope. Each syntax BlockStatement
// binds into a fresh child scope (§4.4); the function/class/global scopes
// further up the chain are plain BoundScopes too, distinguished only by who
// created them, not by a separate type.
type BoundScope struct {
	parent  *BoundScope
	vars    map[string]*symbols.VariableSymbol
	funcs   map[string]*symbols.FunctionSymbol // head of the name's overload chain
	classes map[string]*symbols.ClassSymbol
}

// NewBoundScope creates a scope nested under parent (nil for a root scope).
func NewBoundScope(parent *BoundScope) *BoundScope {
	return &BoundScope{parent: parent}
}

// Parent returns the enclosing scope, or nil for the root.
func (s *BoundScope) Parent() *BoundScope { return s.parent }

// TryDeclareVariable declares name in this scope. It fails if the name is
// already taken in this exact scope (shadowing an outer scope's name is
// allowed; colliding within the same scope is not).
func (s *BoundScope) TryDeclareVariable(v *symbols.VariableSymbol) bool {
	if s.vars == nil {
		s.vars = make(map[string]*symbols.VariableSymbol)
	}
	if _, exists := s.vars[v.Name]; exists {
		return false
	}
	s.vars[v.Name] = v
	return true
}

// TryLookupVariable searches this scope, then its ancestors.
func (s *BoundScope) TryLookupVariable(name string) (*symbols.VariableSymbol, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// TryDeclareFunction installs f as the (new head of the) overload chain
// for its name in this scope, unconditionally — the Binder's
// declareFunction (binder.go) links f onto any existing chain via
// OverloadFor before calling this, and no name collision is rejected here.
func (s *BoundScope) TryDeclareFunction(f *symbols.FunctionSymbol) {
	if s.funcs == nil {
		s.funcs = make(map[string]*symbols.FunctionSymbol)
	}
	s.funcs[f.Name] = f
}

// TryLookupFunction returns the head of name's overload chain in this
// scope or an ancestor.
func (s *BoundScope) TryLookupFunction(name string) (*symbols.FunctionSymbol, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if f, ok := cur.funcs[name]; ok {
			return f, true
		}
	}
	return nil, false
}

// TryDeclareClass declares a class name in this scope. Fails on collision
// within the same scope.
func (s *BoundScope) TryDeclareClass(c *symbols.ClassSymbol) bool {
	if s.classes == nil {
		s.classes = make(map[string]*symbols.ClassSymbol)
	}
	if _, exists := s.classes[c.Name]; exists {
		return false
	}
	s.classes[c.Name] = c
	return true
}

// TryLookupClass searches this scope, then its ancestors.
func (s *BoundScope) TryLookupClass(name string) (*symbols.ClassSymbol, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if c, ok := cur.classes[name]; ok {
			return c, true
		}
	}
	return nil, false
}

// DeclaredVariables returns every variable declared directly in this scope
// (not its ancestors), in no particular order.
func (s *BoundScope) DeclaredVariables() []*symbols.VariableSymbol {
	out := make([]*symbols.VariableSymbol, 0, len(s.vars))
	for _, v := range s.vars {
		out = append(out, v)
	}
	return out
}

// DeclaredFunctions returns the head of every overload chain declared
// directly in this scope.
func (s *BoundScope) DeclaredFunctions() []*symbols.FunctionSymbol {
	out := make([]*symbols.FunctionSymbol, 0, len(s.funcs))
	for _, f := range s.funcs {
		out = append(out, f)
	}
	return out
}

// DeclaredClasses returns every class declared directly in this scope.
func (s *BoundScope) DeclaredClasses() []*symbols.ClassSymbol {
	out := make([]*symbols.ClassSymbol, 0, len(s.classes))
	for _, c := range s.classes {
		out = append(out, c)
	}
	return out
}

// builtinFunctions are the fixed set of free functions every compilation's
// root scope starts with: console and file I/O plus a random source,
// standing in for a standard library this language doesn't otherwise have.
func builtinFunctions() []*symbols.FunctionSymbol {
	return []*symbols.FunctionSymbol{
		{Name: "write", Parameters: []*symbols.VariableSymbol{symbols.NewParameter("value", symbols.Object, 0)}, ReturnType: symbols.Void},
		{Name: "writeLine", Parameters: []*symbols.VariableSymbol{symbols.NewParameter("value", symbols.Object, 0)}, ReturnType: symbols.Void},
		{Name: "readLine", ReturnType: symbols.String},
		{Name: "readKey", ReturnType: symbols.Char},
		{Name: "readAllText", Parameters: []*symbols.VariableSymbol{symbols.NewParameter("path", symbols.String, 0)}, ReturnType: symbols.String},
		{Name: "writeAllText", Parameters: []*symbols.VariableSymbol{
			symbols.NewParameter("path", symbols.String, 0),
			symbols.NewParameter("content", symbols.String, 1),
		}, ReturnType: symbols.Void},
		{Name: "rnd", Parameters: []*symbols.VariableSymbol{symbols.NewParameter("max", symbols.Int32, 0)}, ReturnType: symbols.Int32},
	}
}

// NewRootScope builds the scope every compilation chain bottoms out at: no
// parent, pre-populated with the built-in function set.
func NewRootScope() *BoundScope {
	root := NewBoundScope(nil)
	for _, f := range builtinFunctions() {
		root.TryDeclareFunction(f)
	}
	return root
}
