package syntax

import (
	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/source"
)

// Tree bundles a parsed CompilationUnit with the source text it was parsed
// from and the diagnostics raised while lexing and parsing it. A
// compilation may span several Trees (§4.4: "only one tree may contribute
// global statements").
type Tree struct {
	Text  *source.Text
	Root  *CompilationUnit
	Diags *diag.Bag
}

// NewTree wraps an already-parsed root with its source text and
// diagnostics. Parsing itself lives in the parser package, which imports
// syntax; Tree stays here so both parser and binder can depend on it
// without a cycle.
func NewTree(text *source.Text, root *CompilationUnit, diags *diag.Bag) *Tree {
	return &Tree{Text: text, Root: root, Diags: diags}
}

// GlobalStatements returns every GlobalStatement member at the top level
// of the tree, in source order.
func (t *Tree) GlobalStatements() []*GlobalStatement {
	var result []*GlobalStatement
	for _, m := range t.Root.Members {
		if g, ok := m.(*GlobalStatement); ok {
			result = append(result, g)
		}
	}
	return result
}

// FunctionDeclarations returns every top-level FunctionDeclaration member
// (free functions, not class methods).
func (t *Tree) FunctionDeclarations() []*FunctionDeclaration {
	var result []*FunctionDeclaration
	for _, m := range t.Root.Members {
		if f, ok := m.(*FunctionDeclaration); ok {
			result = append(result, f)
		}
	}
	return result
}

// ClassDeclarations returns every top-level ClassDeclaration member.
func (t *Tree) ClassDeclarations() []*ClassDeclaration {
	var result []*ClassDeclaration
	for _, m := range t.Root.Members {
		if c, ok := m.(*ClassDeclaration); ok {
			result = append(result, c)
		}
	}
	return result
}
