package diag

import (
	"fmt"
	"sort"

	"github.com/lumen-lang/lumenc/internal/source"
)

// Bag is the append-only diagnostic accumulator for a single pipeline run.
// It is never read mid-stage (per §5's concurrency note) and never causes a
// stage to abort early; callers gate on HasErrors only at stage boundaries
// that the specification calls out explicitly (bindProgram -> emitter).
type Bag struct {
	diagnostics []Diagnostic
}

// NewBag creates an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// Report appends a diagnostic in declaration order.
func (b *Bag) Report(stage Stage, severity Severity, code Code, loc source.Location, format string, args ...interface{}) {
	b.diagnostics = append(b.diagnostics, Diagnostic{
		Stage:    stage,
		Severity: severity,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Location: loc,
	})
}

// Error reports a Severity=Error diagnostic.
func (b *Bag) Error(stage Stage, code Code, loc source.Location, format string, args ...interface{}) {
	b.Report(stage, SeverityError, code, loc, format, args...)
}

// Warning reports a Severity=Warning diagnostic.
func (b *Bag) Warning(stage Stage, code Code, loc source.Location, format string, args ...interface{}) {
	b.Report(stage, SeverityWarning, code, loc, format, args...)
}

// Append merges another bag's diagnostics onto the end of this one,
// preserving relative order — used to carry an earlier stage's diagnostics
// (declaration binding, body binding) into the next stage's bag.
func (b *Bag) Append(other *Bag) {
	if other == nil {
		return
	}
	b.diagnostics = append(b.diagnostics, other.diagnostics...)
}

// Diagnostics returns the diagnostics in emission order.
func (b *Bag) Diagnostics() []Diagnostic {
	return b.diagnostics
}

// HasErrors reports whether any diagnostic has Severity=Error.
func (b *Bag) HasErrors() bool {
	for _, d := range b.diagnostics {
		if d.IsError() {
			return true
		}
	}
	return false
}

// Len returns the number of accumulated diagnostics.
func (b *Bag) Len() int {
	return len(b.diagnostics)
}

// Sorted returns a copy of the diagnostics ordered by (Stage, Span.Start),
// mirroring the teacher's group-by-file presentation order.
func (b *Bag) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(b.diagnostics))
	copy(out, b.diagnostics)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Stage != out[j].Stage {
			return stageRank(out[i].Stage) < stageRank(out[j].Stage)
		}
		return out[i].Location.Span.Start < out[j].Location.Span.Start
	})
	return out
}

func stageRank(s Stage) int {
	switch s {
	case StageLexer:
		return 0
	case StageParser:
		return 1
	case StageBinder:
		return 2
	case StageLowerer:
		return 3
	case StageCFG:
		return 4
	default:
		return 5
	}
}
