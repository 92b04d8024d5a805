// Package cfg builds a control-flow graph over a lowered (goto-form)
// function body and answers the two questions the binder's emission
// boundary needs: which statements are unreachable, and does every path
// reach a Return (§4.6).
package cfg

import (
	"sort"
	"strconv"

	"github.com/lumen-lang/lumenc/internal/binder"
	"github.com/lumen-lang/lumenc/internal/source"
)

// unwrap peels away a BoundSequencePointStatement to reach the statement it
// carries a source Location for — the lowerer only ever wraps the first
// statement a given source statement lowered to, so control-flow code that
// switches on a statement's concrete shape (is it a Goto? a label target?)
// needs to see through the wrapper to do its job.
func unwrap(s binder.BoundStatement) binder.BoundStatement {
	if sp, ok := s.(*binder.BoundSequencePointStatement); ok {
		return sp.Statement
	}
	return s
}

// StatementLocation returns the source location a statement was lowered
// from, if the binder recorded one for it.
func StatementLocation(s binder.BoundStatement) (source.Location, bool) {
	if sp, ok := s.(*binder.BoundSequencePointStatement); ok {
		return sp.Location, true
	}
	return source.Location{}, false
}

// Block is a maximal straight-line run of statements with no jump target
// in the middle. Start and End are markers, not statement-bearing blocks.
type Block struct {
	ID         int
	Statements []binder.BoundStatement
	Successors []*Block

	isStart bool
	isEnd   bool
}

func (b *Block) String() string {
	switch {
	case b.isStart:
		return "Start"
	case b.isEnd:
		return "End"
	default:
		return "B" + strconv.Itoa(b.ID)
	}
}

// Graph is a function body's control-flow graph.
type Graph struct {
	Start  *Block
	End    *Block
	Blocks []*Block // real blocks only, in source order; excludes Start/End
}

// Build partitions body's flat statement list into basic blocks using the
// standard leader algorithm (every Label statement, and every statement
// immediately following a Goto/ConditionalGoto/Return, starts a new
// block), then wires Goto/ConditionalGoto/fall-through/Return edges
// between them (§4.6).
func Build(body *binder.BoundBlockStatement) *Graph {
	stmts := body.Statements

	leaders := map[int]bool{0: true}
	labelAt := map[*binder.BoundLabel]int{}
	for i, s := range stmts {
		if l, ok := unwrap(s).(*binder.BoundLabelStatement); ok {
			labelAt[l.Label] = i
			leaders[i] = true
		}
		if isTerminator(unwrap(s)) && i+1 < len(stmts) {
			leaders[i+1] = true
		}
	}

	var starts []int
	for i := range leaders {
		starts = append(starts, i)
	}
	sort.Ints(starts)

	g := &Graph{Start: &Block{isStart: true}, End: &Block{isEnd: true}}
	blockAt := map[int]*Block{} // statement index -> block starting there
	for bi, start := range starts {
		end := len(stmts)
		if bi+1 < len(starts) {
			end = starts[bi+1]
		}
		block := &Block{ID: bi, Statements: stmts[start:end]}
		blockAt[start] = block
		g.Blocks = append(g.Blocks, block)
	}

	if len(g.Blocks) == 0 {
		g.Start.Successors = []*Block{g.End}
		return g
	}
	g.Start.Successors = []*Block{g.Blocks[0]}

	blockForLabel := func(l *binder.BoundLabel) *Block {
		return blockAt[labelAt[l]]
	}

	for bi, block := range g.Blocks {
		var fallthroughBlock *Block
		if bi+1 < len(g.Blocks) {
			fallthroughBlock = g.Blocks[bi+1]
		}

		if len(block.Statements) == 0 {
			if fallthroughBlock != nil {
				block.Successors = []*Block{fallthroughBlock}
			} else {
				block.Successors = []*Block{g.End}
			}
			continue
		}

		switch last := unwrap(block.Statements[len(block.Statements)-1]).(type) {
		case *binder.BoundGotoStatement:
			block.Successors = []*Block{blockForLabel(last.Label)}
		case *binder.BoundConditionalGotoStatement:
			target := blockForLabel(last.Label)
			fall := fallthroughBlock
			if fall == nil {
				fall = g.End
			}
			// Successors always carries both structural edges, in
			// [target, fallthrough] order — AllPathsReturn deliberately
			// analyzes this naive two-way shape even when the condition
			// is a compile-time constant (§8 scenario 6: `if true {
			// return 1 }` with no else still reports AllPathsMustReturn).
			// Reachable, by contrast, narrows to the one edge a constant
			// condition can actually take (§8 scenario 4).
			block.Successors = []*Block{target, fall}
		case *binder.BoundReturnStatement:
			block.Successors = []*Block{g.End}
		default:
			if fallthroughBlock != nil {
				block.Successors = []*Block{fallthroughBlock}
			} else {
				block.Successors = []*Block{g.End}
			}
		}
	}

	return g
}

// constantBranch reports which way a ConditionalGoto statically goes when
// its condition folded to a compile-time constant bool — the case behind
// §4.6's "if false { ... }" unreachable-branch example, where only one of
// the two structural successors is ever actually reachable.
func constantBranch(s *binder.BoundConditionalGotoStatement) (taken bool, known bool) {
	c := s.Condition.Constant()
	if c == nil {
		return false, false
	}
	v, ok := c.Value.(bool)
	if !ok {
		return false, false
	}
	return v == s.JumpIfTrue, true
}

func isTerminator(s binder.BoundStatement) bool {
	switch s.(type) {
	case *binder.BoundGotoStatement, *binder.BoundConditionalGotoStatement, *binder.BoundReturnStatement:
		return true
	default:
		return false
	}
}

// reachableSuccessors narrows a block's structural successors to the single
// edge a statically-known constant condition can actually take, so a
// `if false { ... }` then-branch doesn't count as reachable just because
// it's one of ConditionalGoto's two structural targets (§4.6).
func (b *Block) reachableSuccessors() []*Block {
	if len(b.Statements) == 0 || len(b.Successors) != 2 {
		return b.Successors
	}
	cg, ok := unwrap(b.Statements[len(b.Statements)-1]).(*binder.BoundConditionalGotoStatement)
	if !ok {
		return b.Successors
	}
	taken, known := constantBranch(cg)
	if !known {
		return b.Successors
	}
	if taken {
		return b.Successors[:1]
	}
	return b.Successors[1:]
}

// Reachable runs a forward worklist from Start and returns the set of real
// blocks (excluding Start/End) it visits.
func (g *Graph) Reachable() map[*Block]bool {
	visited := map[*Block]bool{}
	worklist := append([]*Block{}, g.Start.Successors...)
	for len(worklist) > 0 {
		b := worklist[0]
		worklist = worklist[1:]
		if b.isEnd || visited[b] {
			continue
		}
		visited[b] = true
		worklist = append(worklist, b.reachableSuccessors()...)
	}
	return visited
}

// UnreachableStatements returns every statement in a block the forward
// reachability pass never visits, in block order — the source for
// UnreachableCode diagnostics (§4.6).
func (g *Graph) UnreachableStatements() []binder.BoundStatement {
	reachable := g.Reachable()
	var out []binder.BoundStatement
	for _, b := range g.Blocks {
		if !reachable[b] {
			out = append(out, b.Statements...)
		}
	}
	return out
}

// AllPathsReturn reports whether every path from Start to End passes
// through a Return statement — computed as a backward fixpoint: End never
// counts as returning, and a block returns iff its last statement is a
// Return or every one of its successors is a block that returns (§4.6).
func (g *Graph) AllPathsReturn() bool {
	returns := map[*Block]bool{}
	changed := true
	for changed {
		changed = false
		for _, b := range g.Blocks {
			if returns[b] {
				continue
			}
			if b.endsInReturn() {
				returns[b] = true
				changed = true
				continue
			}
			if len(b.Successors) == 0 {
				continue
			}
			all := true
			for _, succ := range b.Successors {
				if succ.isEnd {
					all = false
					break
				}
				if !returns[succ] {
					all = false
					break
				}
			}
			if all {
				returns[b] = true
				changed = true
			}
		}
	}

	for _, succ := range g.Start.Successors {
		if succ.isEnd {
			return false
		}
		if !returns[succ] {
			return false
		}
	}
	return true
}

func (b *Block) endsInReturn() bool {
	if len(b.Statements) == 0 {
		return false
	}
	_, ok := unwrap(b.Statements[len(b.Statements)-1]).(*binder.BoundReturnStatement)
	return ok
}
