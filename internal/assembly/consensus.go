// internal/assembly/consensus.go
package assembly

import "ccheck-core/iupac"

// symbols maps a 4-bit base set (A=1 C=2 G=4 T=8) to its IUPAC code.
const symbols = "-ACMGRSVTWYHKDBN"

// pileup counts A, C, G and T calls per assembly column.
type pileup [][4]int32

func newPileup(n int) pileup { return make(pileup, n) }

func (p pileup) add(pos int, b byte) {
	switch b {
	case 'A', 'a':
		p[pos][0]++
	case 'C', 'c':
		p[pos][1]++
	case 'G', 'g':
		p[pos][2]++
	case 'T', 't', 'U', 'u':
		p[pos][3]++
	}
}

// call returns the majority base of every column. Ties become the
// ambiguity code of the tied bases. Columns without calls take the
// target base when one is given, N otherwise.
func (p pileup) call(target []byte) []byte {
	out := make([]byte, len(p))
	for i, c := range p {
		best := int32(0)
		for _, n := range c {
			best = max(best, n)
		}
		if best == 0 {
			out[i] = 'N'
			if i < len(target) && iupac.Mask(target[i]) != 0 {
				out[i] = upper(target[i])
			}
			continue
		}
		var m byte
		for j, n := range c {
			if n == best {
				m |= 1 << j
			}
		}
		out[i] = symbols[m]
	}
	return out
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
