// core/diag/index.go
package diag

import (
	"github.com/biogo/store/llrb"

	"ccheck-core/aln"
	"ccheck-core/iupac"
)

// Index holds the diagnostic positions of one run, ordered by assembly
// coordinate. It is built once, mutated in place by the discovery pass,
// pruned, and then read by the voting pass. Callers share one *Index.
type Index struct {
	t llrb.Tree
}

// Build records every weakly diagnostic column of p whose assembly
// coordinate lies in [from, to). A negative to means no upper bound.
// Columns with a gap on either side are never recorded.
func Build(p aln.Pair, from, to int) *Index {
	idx := &Index{}
	c := aln.NewCursor(p)
	if !c.Seek(from) {
		return idx
	}
	for ; !c.Done() && (to < 0 || c.Pos() < to); c.Next() {
		con, ass := c.Con(), c.Ass()
		if !iupac.WeaklyDiagnostic(con, ass) {
			continue
		}
		s := Weak
		if iupac.StronglyDiagnostic(con, ass) {
			s = Strong
		}
		idx.t.Insert(&Position{Coord: c.Pos(), Consensus: con, Assembly: ass, Strength: s})
	}
	return idx
}

// Insert adds or replaces the position at p.Coord.
func (x *Index) Insert(p *Position) { x.t.Insert(p) }

// Len is the number of positions.
func (x *Index) Len() int { return x.t.Len() }

// Get returns the position at coord, or nil.
func (x *Index) Get(coord int) *Position {
	if c := x.t.Get(&Position{Coord: coord}); c != nil {
		return c.(*Position)
	}
	return nil
}

// Range calls fn for every position with start <= Coord <= end, in order.
// fn returns true to stop early.
func (x *Index) Range(start, end int, fn func(*Position) bool) {
	if end < start {
		return
	}
	x.t.DoRange(func(c llrb.Comparable) bool {
		return fn(c.(*Position))
	}, &Position{Coord: start}, &Position{Coord: end + 1})
}

// Count is the number of positions a fragment spanning [start, end] overlaps.
func (x *Index) Count(start, end int) int {
	n := 0
	x.Range(start, end, func(*Position) bool { n++; return false })
	return n
}

// Each calls fn for every position in coordinate order.
func (x *Index) Each(fn func(*Position)) {
	x.t.Do(func(c llrb.Comparable) bool {
		fn(c.(*Position))
		return false
	})
}

// Positions returns the positions in coordinate order.
func (x *Index) Positions() []*Position {
	out := make([]*Position, 0, x.Len())
	x.Each(func(p *Position) { out = append(out, p) })
	return out
}

// Filter deletes every position for which keep returns false and reports
// how many were deleted.
func (x *Index) Filter(keep func(*Position) bool) int {
	var drop []*Position
	x.Each(func(p *Position) {
		if !keep(p) {
			drop = append(drop, p)
		}
	})
	for _, p := range drop {
		x.t.Delete(p)
	}
	return len(drop)
}

// Prune deletes every position still weak.
func (x *Index) Prune() int {
	return x.Filter(func(p *Position) bool { return p.Strength != Weak })
}

// Counts tallies positions per strength.
func (x *Index) Counts() (weak, effective, strong int) {
	x.Each(func(p *Position) {
		switch p.Strength {
		case Weak:
			weak++
		case Effective:
			effective++
		case Strong:
			strong++
		}
	})
	return
}

// Transversions counts positions whose consensus and assembly bases differ
// by a transversion.
func (x *Index) Transversions() int {
	n := 0
	x.Each(func(p *Position) {
		if iupac.Transversion(p.Consensus, p.Assembly) {
			n++
		}
	})
	return n
}
