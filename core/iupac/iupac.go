// core/iupac/iupac.go
package iupac

// Gap is the alignment gap symbol.
const Gap = '-'

/* -------------------------- IUPAC lookup table -------------------------- */

var mask [256]byte // bit0=A bit1=C bit2=G bit3=T

func init() {
	set := func(c byte, bits byte) {
		mask[c] = bits
		mask[c|0x20] = bits // lower case
	}
	set('A', 1)       // 0001
	set('C', 2)       // 0010
	set('G', 4)       // 0100
	set('T', 8)       // 1000
	set('U', 8)       // RNA
	set('R', 1|4)     // A/G
	set('Y', 2|8)     // C/T
	set('S', 2|4)     // C/G
	set('W', 1|8)     // A/T
	set('K', 4|8)     // G/T
	set('M', 1|2)     // A/C
	set('B', 2|4|8)   // C/G/T
	set('D', 1|4|8)   // A/G/T
	set('H', 1|2|8)   // A/C/T
	set('V', 1|2|4)   // A/C/G
	set('N', 1|2|4|8) // any
}

// Mask returns the 4-bit base set of an IUPAC symbol; zero for anything else.
func Mask(b byte) byte { return mask[b] }

// Compatible reports whether two symbols can denote the same base.
func Compatible(a, b byte) bool { return mask[a]&mask[b] != 0 }

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

// StronglyDiagnostic: everything that admits no overlap, unless it's a gap.
// This implies a difference; N can never be strongly diagnostic since it
// overlaps with everything.
func StronglyDiagnostic(a, b byte) bool {
	return a != Gap && b != Gap && !Compatible(a, b)
}

// WeaklyDiagnostic: everything that differs, unless it's a gap. N is
// usually weakly diagnostic.
func WeaklyDiagnostic(a, b byte) bool {
	return a != Gap && b != Gap && upper(a) != upper(b)
}

// Transversion reports a purine/pyrimidine exchange. Anything outside
// A, C, G, T and U yields false.
func Transversion(a, b byte) bool {
	u, v := upper(a), upper(b)
	if !isBase(u) || !isBase(v) {
		return false
	}
	return isPurine(u) != isPurine(v)
}

func isPurine(b byte) bool { return b == 'A' || b == 'G' }

func isBase(b byte) bool {
	return b == 'A' || b == 'C' || b == 'G' || b == 'T' || b == 'U'
}

// deaminated widens a reference G or C to the ambiguity code that also
// covers its deamination product (G→R, C→Y), keeping the case.
func deaminated(x byte) byte {
	switch x {
	case 'G':
		return 'R'
	case 'C':
		return 'Y'
	case 'g':
		return 'r'
	case 'c':
		return 'y'
	}
	return x
}

// Consistent reports whether an observed base y is consistent with a
// reference base x. Gaps are consistent with everything. In ancient mode a
// reference G or C also accepts A or T respectively.
func Consistent(ancient bool, x, y byte) bool {
	if x == Gap || y == Gap {
		return true
	}
	if ancient {
		x = deaminated(x)
	}
	return Compatible(x, y)
}
