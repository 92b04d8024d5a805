package binder

import (
	"github.com/lumen-lang/lumenc/internal/diag"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// bindStatement dispatches on the syntax statement's concrete type. Every
// branch always returns a bound statement — a malformed subtree becomes an
// expression statement wrapping a BoundErrorExpression rather than nil, so
// callers never need a nil check (§7's "fully shaped tree" guarantee).
func (b *Binder) bindStatement(stmt syntax.Statement) BoundStatement {
	switch s := stmt.(type) {
	case *syntax.BlockStatement:
		return b.bindBlockStatement(s)
	case *syntax.VariableDeclaration:
		decl, _ := b.bindVariableDeclaration(s, symbols.LocalVariable)
		return decl
	case *syntax.IfStatement:
		return b.bindIfStatement(s)
	case *syntax.WhileStatement:
		return b.bindWhileStatement(s)
	case *syntax.DoWhileStatement:
		return b.bindDoWhileStatement(s)
	case *syntax.ForStatement:
		return b.bindForStatement(s)
	case *syntax.BreakStatement:
		return b.bindBreakStatement(s)
	case *syntax.ContinueStatement:
		return b.bindContinueStatement(s)
	case *syntax.ReturnStatement:
		return b.bindReturnStatement(s)
	case *syntax.ExpressionStatement:
		return b.bindExpressionStatement(s)
	default:
		return &BoundNopStatement{}
	}
}

func (b *Binder) bindBlockStatement(block *syntax.BlockStatement) *BoundBlockStatement {
	b.pushScope()
	defer b.popScope()
	stmts := make([]BoundStatement, 0, len(block.Statements))
	for _, s := range block.Statements {
		stmts = append(stmts, &BoundSequencePointStatement{Statement: b.bindStatement(s), Location: b.loc(s)})
	}
	return &BoundBlockStatement{Statements: stmts}
}

// bindVariableDeclaration binds `var`/`const Identifier (: Type)? (= Expr)?`.
// When no initializer is written, the binder synthesizes one from the
// declared (or inferred) type's default value.
func (b *Binder) bindVariableDeclaration(decl *syntax.VariableDeclaration, kind symbols.VariableKind) (*BoundVariableDeclaration, *symbols.VariableSymbol) {
	var declaredType *symbols.TypeSymbol
	if decl.TypeClause != nil {
		declaredType = b.resolveTypeClause(decl.TypeClause)
	}

	var init BoundExpression
	if decl.Initializer != nil {
		init = b.bindExpression(decl.Initializer)
		if declaredType == nil {
			declaredType = init.Type()
		} else {
			init = b.convertTo(decl.Initializer, init, declaredType, false)
		}
	} else if declaredType == nil {
		b.error(decl, diag.UndefinedType, "variable %q needs either a type annotation or an initializer", decl.IdentifierToken.Text)
		declaredType = symbols.Error
		init = &BoundErrorExpression{}
	} else {
		init = &BoundLiteralExpression{ValueType: declaredType, ValueValue: declaredType.DefaultValue()}
	}

	v := &symbols.VariableSymbol{
		Name:     decl.IdentifierToken.Text,
		Type:     declaredType,
		Kind:     kind,
		ReadOnly: decl.IsConst(),
	}
	if decl.IsConst() {
		if c := init.Constant(); c != nil {
			v.ConstantValue = c.Value
		}
	}
	if !b.scope.TryDeclareVariable(v) {
		b.error(decl, diag.SymbolAlreadyDeclared, "a variable named %q is already declared", v.Name)
	}
	return &BoundVariableDeclaration{Variable: v, Initializer: init}, v
}

// bindGlobalVariableDeclaration is bindVariableDeclaration specialized for
// a statement that sits directly in the global-statement list (as opposed
// to nested inside one of its blocks), producing a GlobalVariable rather
// than a LocalVariable.
func (b *Binder) bindGlobalVariableDeclaration(decl *syntax.VariableDeclaration) (*BoundVariableDeclaration, *symbols.VariableSymbol) {
	return b.bindVariableDeclaration(decl, symbols.GlobalVariable)
}

func (b *Binder) bindIfStatement(s *syntax.IfStatement) *BoundIfStatement {
	cond := b.bindExpression(s.Condition)
	cond = b.convertTo(s.Condition, cond, symbols.Bool, false)
	then := b.bindStatement(s.ThenStatement)
	var elseStmt BoundStatement
	if s.Else != nil {
		elseStmt = b.bindStatement(s.Else.ElseStatement)
	}
	return &BoundIfStatement{Condition: cond, Then: then, Else: elseStmt}
}

func (b *Binder) bindWhileStatement(s *syntax.WhileStatement) *BoundWhileStatement {
	cond := b.bindExpression(s.Condition)
	cond = b.convertTo(s.Condition, cond, symbols.Bool, false)
	breakLabel := NewBoundLabel("while_break")
	continueLabel := NewBoundLabel("while_continue")
	b.pushLoop(loopFrame{breakLabel: breakLabel, continueLabel: continueLabel})
	body := b.bindStatement(s.Body)
	b.popLoop()
	return &BoundWhileStatement{Condition: cond, Body: body, BreakLabel: breakLabel, ContinueLabel: continueLabel}
}

func (b *Binder) bindDoWhileStatement(s *syntax.DoWhileStatement) *BoundDoWhileStatement {
	breakLabel := NewBoundLabel("do_while_break")
	continueLabel := NewBoundLabel("do_while_continue")
	b.pushLoop(loopFrame{breakLabel: breakLabel, continueLabel: continueLabel})
	body := b.bindStatement(s.Body)
	b.popLoop()
	cond := b.bindExpression(s.Condition)
	cond = b.convertTo(s.Condition, cond, symbols.Bool, false)
	return &BoundDoWhileStatement{Body: body, Condition: cond, BreakLabel: breakLabel, ContinueLabel: continueLabel}
}

// bindForStatement binds `for Identifier in LowerBound..UpperBound Body`,
// introducing a fresh int32 loop variable scoped to the loop body alone
// (§4.4's statement-binding rules).
func (b *Binder) bindForStatement(s *syntax.ForStatement) *BoundForStatement {
	lower := b.convertTo(s.LowerBound, b.bindExpression(s.LowerBound), symbols.Int32, false)
	upper := b.convertTo(s.UpperBound, b.bindExpression(s.UpperBound), symbols.Int32, false)

	b.pushScope()
	defer b.popScope()
	v := symbols.NewLocalVariable(s.IdentifierToken.Text, symbols.Int32, false)
	if !b.scope.TryDeclareVariable(v) {
		b.error(s, diag.SymbolAlreadyDeclared, "a variable named %q is already declared", v.Name)
	}

	breakLabel := NewBoundLabel("for_break")
	continueLabel := NewBoundLabel("for_continue")
	b.pushLoop(loopFrame{breakLabel: breakLabel, continueLabel: continueLabel})
	body := b.bindStatement(s.Body)
	b.popLoop()

	return &BoundForStatement{Variable: v, LowerBound: lower, UpperBound: upper, Body: body, BreakLabel: breakLabel, ContinueLabel: continueLabel}
}

func (b *Binder) bindBreakStatement(s *syntax.BreakStatement) BoundStatement {
	loop, ok := b.currentLoop()
	if !ok {
		b.error(s, diag.InvalidBreakOrContinue, "break outside of a loop")
		return &BoundNopStatement{}
	}
	return &BoundBreakStatement{Label: loop.breakLabel}
}

func (b *Binder) bindContinueStatement(s *syntax.ContinueStatement) BoundStatement {
	loop, ok := b.currentLoop()
	if !ok {
		b.error(s, diag.InvalidBreakOrContinue, "continue outside of a loop")
		return &BoundNopStatement{}
	}
	return &BoundContinueStatement{Label: loop.continueLabel}
}

func (b *Binder) bindReturnStatement(s *syntax.ReturnStatement) *BoundReturnStatement {
	returnType := symbols.Void
	if b.function != nil {
		returnType = b.function.ReturnType
	}

	if s.Expr == nil {
		if returnType != symbols.Void {
			b.error(s, diag.MissingReturnExpression, "missing return expression for a function returning %s", returnType)
		}
		return &BoundReturnStatement{}
	}

	expr := b.bindExpression(s.Expr)
	if returnType == symbols.Void {
		b.error(s.Expr, diag.InvalidReturnExpression, "returning a value from a void function")
		return &BoundReturnStatement{}
	}
	return &BoundReturnStatement{Expr: b.convertTo(s.Expr, expr, returnType, false)}
}

// bindExpressionStatement restricts expression statements to shapes with
// side effects — assignment or call — per §4.4; anything else reports
// InvalidExpressionStatement but still returns a usable node.
func (b *Binder) bindExpressionStatement(s *syntax.ExpressionStatement) *BoundExpressionStatement {
	expr := b.bindExpression(s.Expr)
	switch expr.(type) {
	case *BoundAssignmentExpression, *BoundCompoundAssignmentExpression,
		*BoundFieldAssignmentExpression, *BoundCompoundFieldAssignmentExpression,
		*BoundCallExpression, *BoundErrorExpression:
		return &BoundExpressionStatement{Expr: expr}
	default:
		b.error(s.Expr, diag.InvalidExpressionStatement, "only assignments and calls are valid statements")
		return &BoundExpressionStatement{Expr: expr}
	}
}
