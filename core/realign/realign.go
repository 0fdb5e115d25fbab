// core/realign/realign.go
package realign

import (
	"fmt"

	"ccheck-core/aln"
	"ccheck-core/frag"
)

// Alignment is a fragment aligned against the stretch of contaminant
// consensus opposite its assembly span.
type Alignment struct {
	// Start is the offset into Window of the first aligned reference symbol.
	Start int
	// Ref and Frag are the aligned rows and have equal length.
	Ref  string
	Frag string
	// Window is the lifted-over reference stretch, before normalisation.
	Window string
}

// RefRow is the reference row over the whole window: the unaligned prefix
// followed by the aligned reference.
func (a Alignment) RefRow() string { return a.Window[:a.Start] + a.Ref }

// FragRow is the fragment row matching RefRow; the prefix is gap padding.
func (a Alignment) FragRow() string { return gaps(a.Start) + a.Frag }

func gaps(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = aln.Gap
	}
	return string(b)
}

// LocalAligner aligns a read into a reference window, leaving the unused
// ends of the window unpenalised. Implementations fill Start, Ref and Frag.
type LocalAligner interface {
	Align(window, read string) (Alignment, error)
}

// Normalize maps a sequence onto A, C, G, T and N: upper case, U read as T,
// every ambiguity code (and anything unknown) as N.
func Normalize(s string) string {
	b := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case 'A', 'C', 'G', 'T':
			b[i] = c
		case 'a', 'c', 'g', 't':
			b[i] = c - ('a' - 'A')
		case 'U', 'u':
			b[i] = 'T'
		default:
			b[i] = 'N'
		}
	}
	return string(b)
}

// Fragment realigns one fragment: it lifts the assembly span [Start, End+2)
// over to the contaminant consensus, and aligns the reconstructed read into
// that window.
func Fragment(a LocalAligner, p aln.Pair, f *frag.Fragment) (Alignment, error) {
	window := aln.LiftOver(p, f.Start, f.End+2)
	res, err := a.Align(Normalize(window), f.Read())
	if err != nil {
		return Alignment{}, fmt.Errorf("realign %s: %w", f.ID, err)
	}
	if len(res.Ref) != len(res.Frag) {
		return Alignment{}, fmt.Errorf("realign %s: aligned rows differ in length: %d vs %d", f.ID, len(res.Ref), len(res.Frag))
	}
	if res.Start < 0 || res.Start > len(window) {
		return Alignment{}, fmt.Errorf("realign %s: start %d outside window of %d", f.ID, res.Start, len(window))
	}
	res.Window = window
	return res, nil
}
