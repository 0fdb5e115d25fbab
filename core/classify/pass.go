// core/classify/pass.go
package classify

import (
	"ccheck-core/aln"
	"ccheck-core/diag"
	"ccheck-core/frag"
	"ccheck-core/iupac"
	"ccheck-core/realign"
)

// Logger receives per-fragment anomalies and trace output.
type Logger interface {
	Warnf(format string, args ...any)
	Debugf(level int, format string, args ...any)
}

// Classifier runs both passes over the fragments of one assembly. The two
// passes share Index: Discover upgrades positions in it, the caller prunes
// it, and Classify reads it.
type Classifier struct {
	Pair     aln.Pair
	Assembly string
	Index    *diag.Index
	Ancient  bool

	// SpanFrom and SpanTo bound the positions the index was built over;
	// SpanTo < 0 means unbounded. Lookups that miss outside the span are
	// expected and not reported.
	SpanFrom, SpanTo int
	// MinDiag is the number of overlapping positions a fragment needs to
	// be classified at all.
	MinDiag int

	Log Logger
}

func (c *Classifier) inSpan(coord int) bool {
	return coord >= c.SpanFrom && (c.SpanTo < 0 || coord < c.SpanTo)
}

// tests returns the two consistency tests for a site: whether the fragment
// may come from the target and whether it may come from the contaminant.
func (c *Classifier) tests(p *diag.Position, s site) (clean, dirt bool) {
	clean = iupac.Consistent(c.Ancient, p.Assembly, s.fragAss)
	dirt = iupac.Consistent(c.Ancient, p.Consensus, s.fragRef)
	return clean, dirt
}

func (c *Classifier) trace(p *diag.Position, s site) {
	c.Log.Debugf(4, "diagnostic pos. %s: %d %c(%c)/%c %c/%c",
		p.Strength, s.coord, p.Consensus, s.refBase, s.fragRef, s.assBase, s.fragAss)
}

// Discover is the first pass for one fragment: every weak position where
// the fragment agrees with itself, looks like the contaminant and does not
// look like the target is upgraded to effective. It returns the number of
// upgrades.
func (c *Classifier) Discover(f *frag.Fragment, a realign.Alignment) int {
	n := 0
	walk(c.Pair, c.Assembly, f, a, func(s site) {
		p := c.Index.Get(s.coord)
		if p == nil {
			if c.inSpan(s.coord) {
				c.Log.Warnf("diagnostic site not found: %d", s.coord)
			}
			return
		}
		c.trace(p, s)
		if !s.agreement {
			c.Log.Debugf(4, "  in disagreement")
			return
		}
		if clean, dirt := c.tests(p, s); !clean && dirt && p.Upgrade(s.fragRef) {
			c.Log.Debugf(4, "  possible contaminant, upgraded to effective")
			n++
		}
	})
	return n
}

// Classify is the second pass for one fragment. A nil alignment, or fewer
// than MinDiag overlapping positions, leaves the fragment unclassified.
func (c *Classifier) Classify(f *frag.Fragment, a *realign.Alignment) Verdict {
	var v Verdict
	n := c.Index.Count(f.Start, f.End)
	if n < c.MinDiag || n == 0 || a == nil {
		c.Log.Debugf(3, "%s/%v: no diagnostic positions", f.ID, f.Role)
		return v
	}
	c.Log.Debugf(3, "%s/%v: %d diagnostic positions; range: %d..%d", f.ID, f.Role, n, f.Start, f.End)
	walk(c.Pair, c.Assembly, f, *a, func(s site) {
		p := c.Index.Get(s.coord)
		if p == nil {
			return
		}
		c.trace(p, s)
		if !s.agreement {
			c.Log.Debugf(4, "  in disagreement")
			return
		}
		clean, dirt := c.tests(p, s)
		c.Log.Debugf(4, "  %s/%s", consistency(dirt), consistency(clean))
		v.Combined.Observe(clean, dirt && !clean)
		if p.Strength == diag.Strong {
			v.Strong.Observe(clean, dirt)
		}
	})
	return v
}

func consistency(ok bool) string {
	if ok {
		return "consistent"
	}
	return "inconsistent"
}
