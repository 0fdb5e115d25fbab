// core/engine/result.go
package engine

import (
	"ccheck-core/aln"
	"ccheck-core/classify"
	"ccheck-core/diag"
	"ccheck-core/frag"
	"ccheck-core/stats"
)

// Result is the outcome of one run.
type Result struct {
	Reference string
	Assembly  string

	Distance         int // global alignment edit distance
	Pair             aln.Pair
	SpanFrom, SpanTo int

	// Before the passes.
	Differences  int // all weakly diagnostic positions
	Weak         int
	StrongBefore int

	// After pruning.
	Upgraded      int
	Pruned        int
	Strong        int
	Effective     int // upgraded positions that survived
	Transversions int
	Positions     []diag.Position

	Realigned int
	Skipped   int // fragments whose realignment failed

	Fragments []FragmentResult
	Orphans   []string

	StrongOnly   classify.Tally
	Combined     classify.Tally
	StrongRate   stats.Interval
	CombinedRate stats.Interval
}

// Diagnostic is the number of positions left after pruning.
func (r *Result) Diagnostic() int { return r.Strong + r.Effective }

// Spanned reports whether the analysis was restricted to a span.
func (r *Result) Spanned() bool { return r.SpanFrom != 0 || r.SpanTo >= 0 }

// FragmentResult is the verdict on one fragment record.
type FragmentResult struct {
	ID         string
	Role       frag.Role
	Start, End int
	Positions  int // diagnostic positions overlapped after pruning
	Verdict    classify.Verdict
	// Final is the verdict that was counted, merged with the back half for
	// a front. Only meaningful when Counted is set.
	Final   classify.Verdict
	Counted bool
}
