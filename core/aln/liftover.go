// core/aln/liftover.go
package aln

// LiftOver returns the consensus-side symbols of every column whose
// assembly coordinate lies in [s, e). This is the stretch of the contaminant
// consensus opposite an assembly span.
func LiftOver(p Pair, s, e int) string {
	out := make([]byte, 0, max(e-s, 0))
	for c := NewCursor(p); !c.Done() && c.Pos() < e; c.Next() {
		if c.Con() != Gap && c.Pos() >= s {
			out = append(out, c.Con())
		}
	}
	return string(out)
}
