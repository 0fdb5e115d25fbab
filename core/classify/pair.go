// core/classify/pair.go
package classify

import (
	"sort"

	"ccheck-core/frag"
)

// Pairer turns per-fragment verdicts into the two summary tallies. Back
// halves wait for their front; a front is merged with its back before it
// counts, and whole fragments count straight away.
type Pairer struct {
	Strong   Tally
	Combined Tally

	backs map[string]Verdict
	log   Logger
}

// NewPairer returns an empty Pairer reporting anomalies to log.
func NewPairer(log Logger) *Pairer {
	return &Pairer{backs: make(map[string]Verdict), log: log}
}

// Add records the verdict on f. When f completes a fragment, the final
// verdict is returned with ok set.
func (p *Pairer) Add(f *frag.Fragment, v Verdict) (final Verdict, ok bool) {
	switch f.Role {
	case frag.Back:
		if _, dup := p.backs[f.ID]; dup {
			p.log.Warnf("%s/b seen twice, keeping the later one", f.ID)
		}
		p.backs[f.ID] = v
		return v, false
	case frag.Front:
		if back, found := p.backs[f.ID]; found {
			v = v.Merge(back)
			delete(p.backs, f.ID)
		} else {
			// Counted on its own evidence.
			p.log.Warnf("%s/f is missing its back", f.ID)
		}
	case frag.Whole:
	default:
		p.log.Warnf("don't know how to handle fragment role %v of %s", f.Role, f.ID)
		return v, false
	}
	p.Strong.Add(v.Strong.Class)
	p.Combined.Add(v.Combined.Class)
	p.log.Debugf(2, "%s is %v", f.ID, v.Strong)
	p.log.Debugf(2, "%s is %v", f.ID, v.Combined)
	return v, true
}

// Orphans lists, sorted, the back halves no front ever claimed. They are
// not part of either tally.
func (p *Pairer) Orphans() []string {
	ids := make([]string, 0, len(p.backs))
	for id := range p.backs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
