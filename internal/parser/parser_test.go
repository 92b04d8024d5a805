package parser_test

import (
	"testing"
	"time"

	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/parser"
	"github.com/lumen-lang/lumenc/internal/source"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

func parseUnit(t *testing.T, src string) (*syntax.CompilationUnit, []diag.Diagnostic) {
	t.Helper()
	tree := parser.Parse(source.New("test.lumen", src))
	return tree.Root, tree.Diags.Diagnostics()
}

func assertNoDiagnostics(t *testing.T, diags []diag.Diagnostic) {
	t.Helper()
	if len(diags) == 0 {
		return
	}
	for _, d := range diags {
		t.Errorf("unexpected diagnostic: %s", d)
	}
	t.Fatalf("parser reported %d diagnostic(s)", len(diags))
}

func TestParseFunctionDeclaration(t *testing.T) {
	const src = `
function add(a: int32, b: int32): int32 {
	return a + b;
}
`
	unit, diags := parseUnit(t, src)
	assertNoDiagnostics(t, diags)

	if len(unit.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(unit.Members))
	}
	fn, ok := unit.Members[0].(*syntax.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected FunctionDeclaration, got %T", unit.Members[0])
	}
	if fn.IdentifierToken.Text != "add" {
		t.Fatalf("expected name %q, got %q", "add", fn.IdentifierToken.Text)
	}
	if fn.Parameters.Count() != 2 {
		t.Fatalf("expected 2 parameters, got %d", fn.Parameters.Count())
	}
	if fn.ReturnType == nil || fn.ReturnType.TypeName() != "int32" {
		t.Fatalf("expected return type int32, got %v", fn.ReturnType)
	}
	if len(fn.Body.Statements) != 1 {
		t.Fatalf("expected 1 statement in body, got %d", len(fn.Body.Statements))
	}
}

func TestParseClassDeclarationWithFieldsAndMethod(t *testing.T) {
	const src = `
class Point {
	x: int32;
	const y: int32 = 0;
	function sum(): int32 {
		return this.x + this.y;
	}
}
`
	unit, diags := parseUnit(t, src)
	assertNoDiagnostics(t, diags)

	class, ok := unit.Members[0].(*syntax.ClassDeclaration)
	if !ok {
		t.Fatalf("expected ClassDeclaration, got %T", unit.Members[0])
	}
	if len(class.Members) != 3 {
		t.Fatalf("expected 3 members, got %d", len(class.Members))
	}

	field, ok := class.Members[0].(*syntax.FieldDeclaration)
	if !ok || field.IsConst() {
		t.Fatalf("expected a writable field first, got %#v", class.Members[0])
	}

	constField, ok := class.Members[1].(*syntax.FieldDeclaration)
	if !ok || !constField.IsConst() {
		t.Fatalf("expected a const field second, got %#v", class.Members[1])
	}
	if constField.Initializer == nil {
		t.Fatalf("expected const field to have an initializer")
	}

	method, ok := class.Members[2].(*syntax.FunctionDeclaration)
	if !ok {
		t.Fatalf("expected a method third, got %#v", class.Members[2])
	}
	ret, ok := method.Body.Statements[0].(*syntax.ReturnStatement)
	if !ok {
		t.Fatalf("expected a return statement, got %T", method.Body.Statements[0])
	}
	bin, ok := ret.Expr.(*syntax.BinaryExpression)
	if !ok {
		t.Fatalf("expected a binary expression, got %T", ret.Expr)
	}
	if _, ok := bin.Left.(*syntax.MemberAccessExpression); !ok {
		t.Fatalf("expected left side to be a member access, got %T", bin.Left)
	}
}

func TestParseBinaryOperatorPrecedence(t *testing.T) {
	const src = `function f(): int32 { return 1 + 2 * 3; }`
	unit, diags := parseUnit(t, src)
	assertNoDiagnostics(t, diags)

	fn := unit.Members[0].(*syntax.FunctionDeclaration)
	ret := fn.Body.Statements[0].(*syntax.ReturnStatement)
	outer, ok := ret.Expr.(*syntax.BinaryExpression)
	if !ok {
		t.Fatalf("expected outer binary expression, got %T", ret.Expr)
	}
	kind, _ := syntax.BinaryOperatorKindFromToken(outer.OperatorToken.Kind)
	if kind != syntax.BinaryAdd {
		t.Fatalf("expected top-level operator to be +, got %v", kind)
	}
	inner, ok := outer.Right.(*syntax.BinaryExpression)
	if !ok {
		t.Fatalf("expected right operand to be a nested multiplication, got %T", outer.Right)
	}
	innerKind, _ := syntax.BinaryOperatorKindFromToken(inner.OperatorToken.Kind)
	if innerKind != syntax.BinaryMultiply {
		t.Fatalf("expected nested operator to be *, got %v", innerKind)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	const src = `function f(): void { a = b = c; }`
	unit, diags := parseUnit(t, src)
	assertNoDiagnostics(t, diags)

	fn := unit.Members[0].(*syntax.FunctionDeclaration)
	stmt := fn.Body.Statements[0].(*syntax.ExpressionStatement)
	outer, ok := stmt.Expr.(*syntax.AssignmentExpression)
	if !ok {
		t.Fatalf("expected an assignment expression, got %T", stmt.Expr)
	}
	if _, ok := outer.Target.(*syntax.NameExpression); !ok {
		t.Fatalf("expected target to be a bare name, got %T", outer.Target)
	}
	if _, ok := outer.Value.(*syntax.AssignmentExpression); !ok {
		t.Fatalf("expected value to be a nested assignment, got %T", outer.Value)
	}
}

func TestParseForStatement(t *testing.T) {
	const src = `function f(): void { for i in 0 .. 10 { continue; } }`
	unit, diags := parseUnit(t, src)
	assertNoDiagnostics(t, diags)

	fn := unit.Members[0].(*syntax.FunctionDeclaration)
	forStmt, ok := fn.Body.Statements[0].(*syntax.ForStatement)
	if !ok {
		t.Fatalf("expected ForStatement, got %T", fn.Body.Statements[0])
	}
	if forStmt.IdentifierToken.Text != "i" {
		t.Fatalf("expected loop variable %q, got %q", "i", forStmt.IdentifierToken.Text)
	}
}

func TestParseMissingClosingParenReportsAndRecovers(t *testing.T) {
	const src = `function f(): void { g(1, 2; }`
	unit, diags := parseUnit(t, src)
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic for the missing ')'")
	}
	for _, d := range diags {
		if d.Code != diag.UnexpectedToken {
			t.Errorf("expected UnexpectedToken, got %s", d.Code)
		}
	}
	// The tree is still complete: an EOF token always terminates it, even
	// though recovery fabricated a Missing ')'.
	if unit.EOFToken.Missing {
		t.Fatalf("expected a real EOF token to be reached")
	}
}

func TestParseDoesNotLoopForeverOnGarbageInput(t *testing.T) {
	const src = `@@@ ### !!!`
	done := make(chan struct{})
	go func() {
		parseUnit(t, src)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("parser did not terminate on garbage input")
	}
}
