// Package lowerer desugars a bound function body to goto-form: every
// If/While/DoWhile/For/Break/Continue/CompoundAssignment node is rewritten
// away, leaving only Label/Goto/ConditionalGoto control flow and plain
// assignments for internal/cfg to walk (§4.5).
package lowerer

import (
	"fmt"

	"github.com/lumen-lang/lumenc/internal/binder"
	"github.com/lumen-lang/lumenc/internal/symbols"
	"github.com/lumen-lang/lumenc/internal/syntax"
)

// Lowerer rewrites one function body at a time. It is a structural
// post-order visitor in spirit (§4.5's "generic BoundTreeRewriter"): every
// lower* method rebuilds its node from already-lowered children, and a
// leaf expression with nothing to rewrite is returned unchanged.
type Lowerer struct {
	labelCounter int
}

// New creates a Lowerer with a fresh per-function label counter.
func New() *Lowerer {
	return &Lowerer{}
}

// Lower desugars body into a single flat statement list: nested blocks are
// inlined, since the only scoping the CFG builder needs is "which labels
// exist in this function," not lexical nesting.
func Lower(body *binder.BoundBlockStatement) *binder.BoundBlockStatement {
	l := New()
	return &binder.BoundBlockStatement{Statements: l.lowerBlockFlat(body)}
}

func (l *Lowerer) newLabel(prefix string) *binder.BoundLabel {
	l.labelCounter++
	return binder.NewBoundLabel(fmt.Sprintf("%s_%d", prefix, l.labelCounter))
}

func (l *Lowerer) lowerBlockFlat(block *binder.BoundBlockStatement) []binder.BoundStatement {
	out := make([]binder.BoundStatement, 0, len(block.Statements))
	for _, s := range block.Statements {
		out = append(out, l.lowerStatement(s)...)
	}
	return out
}

// lowerStatement returns the zero-or-more flat statements s lowers to.
func (l *Lowerer) lowerStatement(s binder.BoundStatement) []binder.BoundStatement {
	switch st := s.(type) {
	case *binder.BoundSequencePointStatement:
		lowered := l.lowerStatement(st.Statement)
		if len(lowered) == 0 {
			return lowered
		}
		out := append([]binder.BoundStatement{}, lowered...)
		out[0] = &binder.BoundSequencePointStatement{Statement: out[0], Location: st.Location}
		return out
	case *binder.BoundBlockStatement:
		return l.lowerBlockFlat(st)
	case *binder.BoundVariableDeclaration:
		return []binder.BoundStatement{&binder.BoundVariableDeclaration{
			Variable:    st.Variable,
			Initializer: l.lowerExpression(st.Initializer),
		}}
	case *binder.BoundIfStatement:
		return l.lowerIf(st)
	case *binder.BoundWhileStatement:
		return l.lowerWhile(st)
	case *binder.BoundDoWhileStatement:
		return l.lowerDoWhile(st)
	case *binder.BoundForStatement:
		return l.lowerFor(st)
	case *binder.BoundBreakStatement:
		return []binder.BoundStatement{&binder.BoundGotoStatement{Label: st.Label}}
	case *binder.BoundContinueStatement:
		return []binder.BoundStatement{&binder.BoundGotoStatement{Label: st.Label}}
	case *binder.BoundReturnStatement:
		if st.Expr == nil {
			return []binder.BoundStatement{st}
		}
		return []binder.BoundStatement{&binder.BoundReturnStatement{Expr: l.lowerExpression(st.Expr)}}
	case *binder.BoundExpressionStatement:
		return []binder.BoundStatement{&binder.BoundExpressionStatement{Expr: l.lowerExpression(st.Expr)}}
	default:
		return []binder.BoundStatement{s}
	}
}

// lowerIf: `if c then A else B` -> `gotoFalse L1 c; A; goto L2; L1:; B; L2:;`,
// eliding the else arm's goto/label pair when there is no else (§4.5 table).
func (l *Lowerer) lowerIf(s *binder.BoundIfStatement) []binder.BoundStatement {
	cond := l.lowerExpression(s.Condition)
	then := l.lowerStatement(s.Then)

	if s.Else == nil {
		end := l.newLabel("if_end")
		out := make([]binder.BoundStatement, 0, len(then)+2)
		out = append(out, &binder.BoundConditionalGotoStatement{Label: end, Condition: cond, JumpIfTrue: false})
		out = append(out, then...)
		out = append(out, &binder.BoundLabelStatement{Label: end})
		return out
	}

	elseBranch := l.lowerStatement(s.Else)
	elseLabel := l.newLabel("if_else")
	end := l.newLabel("if_end")
	out := make([]binder.BoundStatement, 0, len(then)+len(elseBranch)+4)
	out = append(out, &binder.BoundConditionalGotoStatement{Label: elseLabel, Condition: cond, JumpIfTrue: false})
	out = append(out, then...)
	out = append(out, &binder.BoundGotoStatement{Label: end})
	out = append(out, &binder.BoundLabelStatement{Label: elseLabel})
	out = append(out, elseBranch...)
	out = append(out, &binder.BoundLabelStatement{Label: end})
	return out
}

// lowerWhile: `goto Lc; Lb:; B; Lc: gotoTrue Lb c; Lbk:;`
func (l *Lowerer) lowerWhile(s *binder.BoundWhileStatement) []binder.BoundStatement {
	bodyLabel := l.newLabel("while_body")
	body := l.lowerStatement(s.Body)
	cond := l.lowerExpression(s.Condition)

	out := make([]binder.BoundStatement, 0, len(body)+5)
	out = append(out, &binder.BoundGotoStatement{Label: s.ContinueLabel})
	out = append(out, &binder.BoundLabelStatement{Label: bodyLabel})
	out = append(out, body...)
	out = append(out, &binder.BoundLabelStatement{Label: s.ContinueLabel})
	out = append(out, &binder.BoundConditionalGotoStatement{Label: bodyLabel, Condition: cond, JumpIfTrue: true})
	out = append(out, &binder.BoundLabelStatement{Label: s.BreakLabel})
	return out
}

// lowerDoWhile: `Lb:; B; Lc:; gotoTrue Lb c; Lbk:;`
func (l *Lowerer) lowerDoWhile(s *binder.BoundDoWhileStatement) []binder.BoundStatement {
	bodyLabel := l.newLabel("do_while_body")
	body := l.lowerStatement(s.Body)
	cond := l.lowerExpression(s.Condition)

	out := make([]binder.BoundStatement, 0, len(body)+4)
	out = append(out, &binder.BoundLabelStatement{Label: bodyLabel})
	out = append(out, body...)
	out = append(out, &binder.BoundLabelStatement{Label: s.ContinueLabel})
	out = append(out, &binder.BoundConditionalGotoStatement{Label: bodyLabel, Condition: cond, JumpIfTrue: true})
	out = append(out, &binder.BoundLabelStatement{Label: s.BreakLabel})
	return out
}

// lowerFor desugars `for i in lo..hi do B` to
// `var i = lo; var upper = hi; while i <= upper { B; continue: i = i + 1; }`
// per §4.5's table — continue jumps past the body straight to the
// increment, not back to the condition check, so the increment always
// runs exactly once per iteration regardless of how the body exited.
func (l *Lowerer) lowerFor(s *binder.BoundForStatement) []binder.BoundStatement {
	upper := symbols.NewLocalVariable(fmt.Sprintf("$upper%d", l.labelCounter+1), symbols.Int32, false)
	l.labelCounter++

	bodyLabel := l.newLabel("for_body")
	condLabel := l.newLabel("for_cond")
	body := l.lowerStatement(s.Body)

	increment := &binder.BoundExpressionStatement{Expr: &binder.BoundAssignmentExpression{
		Variable: s.Variable,
		Value: &binder.BoundBinaryExpression{
			Op:         syntax.BinaryAdd,
			Left:       &binder.BoundVariableExpression{Variable: s.Variable},
			Right:      &binder.BoundLiteralExpression{ValueType: symbols.Int32, ValueValue: int32(1)},
			ResultType: symbols.Int32,
		},
	}}
	condition := &binder.BoundBinaryExpression{
		Op:         syntax.BinaryLessOrEquals,
		Left:       &binder.BoundVariableExpression{Variable: s.Variable},
		Right:      &binder.BoundVariableExpression{Variable: upper},
		ResultType: symbols.Bool,
	}

	out := make([]binder.BoundStatement, 0, len(body)+8)
	out = append(out, &binder.BoundVariableDeclaration{Variable: s.Variable, Initializer: l.lowerExpression(s.LowerBound)})
	out = append(out, &binder.BoundVariableDeclaration{Variable: upper, Initializer: l.lowerExpression(s.UpperBound)})
	out = append(out, &binder.BoundGotoStatement{Label: condLabel})
	out = append(out, &binder.BoundLabelStatement{Label: bodyLabel})
	out = append(out, body...)
	out = append(out, &binder.BoundLabelStatement{Label: s.ContinueLabel})
	out = append(out, increment)
	out = append(out, &binder.BoundLabelStatement{Label: condLabel})
	out = append(out, &binder.BoundConditionalGotoStatement{Label: bodyLabel, Condition: condition, JumpIfTrue: true})
	out = append(out, &binder.BoundLabelStatement{Label: s.BreakLabel})
	return out
}

// lowerExpression rebuilds e from already-lowered children, desugaring
// compound assignment on the way down and flattening string concatenation
// chains where it finds one.
func (l *Lowerer) lowerExpression(e binder.BoundExpression) binder.BoundExpression {
	switch ex := e.(type) {
	case *binder.BoundCompoundAssignmentExpression:
		value := l.lowerExpression(ex.Value)
		return &binder.BoundAssignmentExpression{
			Variable: ex.Variable,
			Value: &binder.BoundBinaryExpression{
				Op:         ex.Op,
				Left:       &binder.BoundVariableExpression{Variable: ex.Variable},
				Right:      value,
				ResultType: ex.Variable.Type,
			},
		}
	case *binder.BoundCompoundFieldAssignmentExpression:
		instance := l.lowerExpression(ex.Instance)
		value := l.lowerExpression(ex.Value)
		return &binder.BoundFieldAssignmentExpression{
			Instance: instance,
			Field:    ex.Field,
			Value: &binder.BoundBinaryExpression{
				Op:         ex.Op,
				Left:       &binder.BoundFieldAccessExpression{Instance: instance, Field: ex.Field},
				Right:      value,
				ResultType: ex.Field.Type,
			},
		}
	case *binder.BoundAssignmentExpression:
		return &binder.BoundAssignmentExpression{Variable: ex.Variable, Value: l.lowerExpression(ex.Value)}
	case *binder.BoundFieldAssignmentExpression:
		return &binder.BoundFieldAssignmentExpression{
			Instance: l.lowerExpression(ex.Instance),
			Field:    ex.Field,
			Value:    l.lowerExpression(ex.Value),
		}
	case *binder.BoundFieldAccessExpression:
		return &binder.BoundFieldAccessExpression{Instance: l.lowerExpression(ex.Instance), Field: ex.Field}
	case *binder.BoundUnaryExpression:
		return &binder.BoundUnaryExpression{Op: ex.Op, Operand: l.lowerExpression(ex.Operand), ResultType: ex.ResultType}
	case *binder.BoundBinaryExpression:
		if ex.Op == syntax.BinaryAdd && ex.ResultType == symbols.String {
			return l.flattenConcat(ex)
		}
		return &binder.BoundBinaryExpression{
			Op:         ex.Op,
			Left:       l.lowerExpression(ex.Left),
			Right:      l.lowerExpression(ex.Right),
			ResultType: ex.ResultType,
		}
	case *binder.BoundCallExpression:
		args := make([]binder.BoundExpression, len(ex.Arguments))
		for i, a := range ex.Arguments {
			args[i] = l.lowerExpression(a)
		}
		var instance binder.BoundExpression
		if ex.Instance != nil {
			instance = l.lowerExpression(ex.Instance)
		}
		return &binder.BoundCallExpression{Function: ex.Function, Instance: instance, Arguments: args}
	case *binder.BoundConversionExpression:
		return &binder.BoundConversionExpression{
			TargetType:     ex.TargetType,
			Expr:           l.lowerExpression(ex.Expr),
			ConversionKind: ex.ConversionKind,
		}
	default:
		return e
	}
}

// flattenConcat rewrites a nested tree of string `+` into a single
// BoundConcatExpression, folding adjacent constant parts into one literal
// (§4.5's string-concatenation optimization: "(a + b) + c where b and c
// are constants becomes [a, "bc"]").
func (l *Lowerer) flattenConcat(e *binder.BoundBinaryExpression) binder.BoundExpression {
	var parts []binder.BoundExpression
	l.collectConcatParts(e, &parts)

	folded := make([]binder.BoundExpression, 0, len(parts))
	for _, p := range parts {
		if len(folded) > 0 {
			prev := folded[len(folded)-1]
			if pc, ok := constString(prev); ok {
				if pv, ok := constString(p); ok {
					folded[len(folded)-1] = &binder.BoundLiteralExpression{ValueType: symbols.String, ValueValue: pc + pv}
					continue
				}
			}
		}
		folded = append(folded, p)
	}

	if len(folded) == 1 {
		return folded[0]
	}
	return &binder.BoundConcatExpression{Parts: folded}
}

func (l *Lowerer) collectConcatParts(e binder.BoundExpression, out *[]binder.BoundExpression) {
	if bin, ok := e.(*binder.BoundBinaryExpression); ok && bin.Op == syntax.BinaryAdd && bin.ResultType == symbols.String {
		l.collectConcatParts(bin.Left, out)
		l.collectConcatParts(bin.Right, out)
		return
	}
	*out = append(*out, l.lowerExpression(e))
}

func constString(e binder.BoundExpression) (string, bool) {
	lit, ok := e.(*binder.BoundLiteralExpression)
	if !ok {
		return "", false
	}
	s, ok := lit.ValueValue.(string)
	return s, ok
}
