package binder

import (
	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// bindClassBody binds class's fields (in declaration order) and methods,
// then synthesizes its zero-arg and parameterized .ctor pair (§4.4 phase
// 1). It runs after every class name in the compilation has already been
// declared, so a field or parameter type may reference any class.
func (b *Binder) bindClassBody(class *symbols.ClassSymbol, decl *syntax.ClassDeclaration) {
	for _, member := range decl.Members {
		switch m := member.(type) {
		case *syntax.FieldDeclaration:
			field := b.bindField(class, m)
			if _, exists := class.FindField(field.Name); exists {
				b.error(m, diag.SymbolAlreadyDeclared, "a field named %q is already declared on %q", field.Name, class.Name)
				continue
			}
			class.Fields = append(class.Fields, field)
		case *syntax.FunctionDeclaration:
			method := b.bindFunctionSignature(m, class)
			if existing, ok := class.FindMethod(method.Name); ok {
				method.OverloadFor = existing
			}
			class.Methods = append(class.Methods, method)
		}
	}

	for _, f := range class.Fields {
		if !f.Const {
			class.CtorParameters = append(class.CtorParameters, f)
		}
	}

	zeroCtor := &symbols.FunctionSymbol{Name: ".ctor", Receiver: class, ReturnType: class.Type}
	class.ZeroCtor = zeroCtor
	class.Methods = append(class.Methods, zeroCtor)

	if len(class.CtorParameters) == 0 {
		class.Ctor = zeroCtor
		return
	}

	params := make([]*symbols.VariableSymbol, len(class.CtorParameters))
	for i, f := range class.CtorParameters {
		params[i] = symbols.NewParameter(f.Name, f.Type, i)
	}
	ctor := &symbols.FunctionSymbol{Name: ".ctor", Receiver: class, ReturnType: class.Type, Parameters: params, OverloadFor: zeroCtor}
	class.Ctor = ctor
	class.Methods = append(class.Methods, ctor)
}

// bindField resolves a field's type and, for a const field with an
// initializer, folds the initializer to a compile-time constant.
func (b *Binder) bindField(class *symbols.ClassSymbol, decl *syntax.FieldDeclaration) *symbols.FieldSymbol {
	field := &symbols.FieldSymbol{
		Name:  decl.IdentifierToken.Text,
		Type:  b.resolveTypeClause(decl.Type),
		Const: decl.IsConst(),
	}
	if decl.Initializer == nil {
		return field
	}

	sub := newBinder(b.scope, b.bag)
	sub.text = b.text
	sub.class = class
	value := sub.bindExpression(decl.Initializer)
	if !field.Const {
		return field
	}
	converted := sub.convertTo(decl.Initializer, value, field.Type, false)
	if c := converted.Constant(); c != nil {
		field.ConstantValue = c.Value
	}
	return field
}

// bindFunctionSignature binds a function or method's parameters and return
// type. class is nil for a free function.
func (b *Binder) bindFunctionSignature(decl *syntax.FunctionDeclaration, class *symbols.ClassSymbol) *symbols.FunctionSymbol {
	fn := &symbols.FunctionSymbol{
		Name:        decl.IdentifierToken.Text,
		Declaration: decl,
		Receiver:    class,
	}
	seen := make(map[string]bool)
	for i, p := range decl.Parameters.Elements {
		name := p.IdentifierToken.Text
		if seen[name] {
			b.error(p, diag.ParameterAlreadyDeclared, "a parameter named %q is already declared", name)
			continue
		}
		seen[name] = true
		fn.Parameters = append(fn.Parameters, symbols.NewParameter(name, b.resolveTypeClause(p.Type), i))
	}
	if decl.ReturnType != nil {
		fn.ReturnType = b.resolveTypeClause(decl.ReturnType)
	} else {
		fn.ReturnType = symbols.Void
	}
	return fn
}

// bindCtorBodies synthesizes both of class's constructor bodies: the
// zero-arg .ctor gets only the const-field defaults, the parameterized
// .ctor gets its param-to-field assignments followed by the same const
// defaults. Classes have no user-written constructor syntax, so this is
// the only place a class's instance-initialization logic exists. When
// class has no non-const fields, ZeroCtor and Ctor are the same symbol
// (decl.go's bindClassBody) and share this single body.
func bindCtorBodies(class *symbols.ClassSymbol) (zero *BoundBlockStatement, ctor *BoundBlockStatement) {
	defaults := func(this BoundExpression) []BoundStatement {
		var stmts []BoundStatement
		for _, f := range class.Fields {
			if f.Const && f.ConstantValue != nil {
				stmts = append(stmts, &BoundExpressionStatement{Expr: &BoundFieldAssignmentExpression{
					Instance: this,
					Field:    f,
					Value:    &BoundLiteralExpression{ValueType: f.Type, ValueValue: f.ConstantValue},
				}})
			}
		}
		return stmts
	}

	zero = &BoundBlockStatement{Statements: defaults(&BoundThisExpression{ClassType: class.Type})}

	if len(class.CtorParameters) == 0 {
		return zero, zero
	}

	this := &BoundThisExpression{ClassType: class.Type}
	var stmts []BoundStatement
	for i, f := range class.CtorParameters {
		stmts = append(stmts, &BoundExpressionStatement{Expr: &BoundFieldAssignmentExpression{
			Instance: this,
			Field:    f,
			Value:    &BoundVariableExpression{Variable: class.Ctor.Parameters[i]},
		}})
	}
	stmts = append(stmts, defaults(this)...)
	ctor = &BoundBlockStatement{Statements: stmts}
	return zero, ctor
}
