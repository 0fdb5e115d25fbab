// core/iupac/rc.go
package iupac

var complement [256]byte

func init() {
	pair := func(a, b byte) {
		complement[a], complement[b] = b, a
		complement[a|0x20], complement[b|0x20] = b|0x20, a|0x20
	}
	pair('A', 'T')
	pair('C', 'G')
	pair('R', 'Y')
	pair('K', 'M')
	pair('B', 'V')
	pair('D', 'H')
	pair('S', 'S')
	pair('W', 'W')
	pair('N', 'N')
	complement['U'], complement['u'] = 'A', 'a'
	complement[Gap] = Gap
}

// RevComp returns the reverse complement of an IUPAC sequence, keeping case.
// Unknown symbols become N.
func RevComp(seq []byte) []byte {
	n := len(seq)
	if n == 0 {
		return nil
	}
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		if c == 0 {
			c = 'N'
		}
		out[i] = c
	}
	return out
}
