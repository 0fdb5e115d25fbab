// core/classify/walk.go
package classify

import (
	"ccheck-core/aln"
	"ccheck-core/frag"
	"ccheck-core/iupac"
	"ccheck-core/realign"
)

// site is what a fragment shows at one weakly diagnostic column of the
// global alignment.
type site struct {
	coord     int
	refBase   byte // contaminant consensus, from the local alignment
	fragRef   byte // fragment base as aligned to the contaminant
	assBase   byte // assembly consensus
	fragAss   byte // fragment base as placed on the assembly
	agreement bool // both views of the fragment show the same base
}

// walk steps through the global alignment over the fragment's span in
// lockstep with the fragment's local alignment (contaminant side) and the
// fragment's calls (assembly side), visiting every weakly diagnostic column.
func walk(p aln.Pair, assembly string, f *frag.Fragment, a realign.Alignment, visit func(site)) {
	if f.Start < 0 || f.Start >= len(assembly) {
		return
	}
	c := aln.NewCursor(p)
	if !c.Seek(f.Start) {
		return
	}
	ref := aln.NewTrack(a.RefRow(), a.FragRow())
	ass := aln.NewTrack(assembly[f.Start:min(f.End+1, len(assembly))], f.Seq)

	for ; !c.Done() && c.Pos() <= f.End && !ref.Done() && !ass.Done(); c.Next() {
		if iupac.WeaklyDiagnostic(c.Con(), c.Ass()) {
			s := site{
				coord:   c.Pos(),
				refBase: ref.Base(),
				fragRef: ref.Partner(),
				assBase: ass.Base(),
				fragAss: ass.Partner(),
			}
			s.agreement = s.fragRef == s.fragAss
			visit(s)
		}
		if c.Con() != aln.Gap {
			ref.Step()
		}
		if c.Ass() != aln.Gap {
			ass.Step()
		}
	}
}
