// core/myers/myers.go
package myers

import (
	"errors"

	"ccheck-core/aln"
	"ccheck-core/iupac"
)

// ErrTooDivergent is returned when no alignment within the edit bound exists.
var ErrTooDivergent = errors.New("sequences differ by more than the edit bound")

type move int8

const (
	none move = iota
	sub       // consumes one symbol of each sequence
	del       // consumes a symbol of a only
	ins       // consumes a symbol of b only
)

// Align computes a global unit-cost alignment of a against b whose edit
// distance is at most maxD, using furthest-reaching diagonals. Symbols that
// can denote the same base (IUPAC ambiguity codes included) count as equal.
// A negative maxD means no bound. The returned Pair has a in Con and b in Ass.
func Align(a, b []byte, maxD int) (aln.Pair, int, error) {
	n, m := len(a), len(b)
	if maxD < 0 {
		maxD = n + m
	}
	kEnd := m - n
	if kEnd > maxD || -kEnd > maxD {
		return aln.Pair{}, 0, ErrTooDivergent
	}

	slide := func(i, k int) int {
		for i < n && i+k < m && iupac.Compatible(a[i], b[i+k]) {
			i++
		}
		return i
	}

	// trace[d][k+d] is the furthest index into a reached on diagonal k
	// (j = i+k) with d edits, or -1.
	trace := [][]int{{slide(0, 0)}}
	if kEnd == 0 && trace[0][0] == n {
		return backtrace(a, b, trace, 0), 0, nil
	}
	for d := 1; d <= maxD; d++ {
		cur := make([]int, 2*d+1)
		for k := -d; k <= d; k++ {
			i, _ := extend(trace[d-1], d-1, k, n, m)
			if i >= 0 {
				i = slide(i, k)
			}
			cur[k+d] = i
		}
		trace = append(trace, cur)
		if kEnd >= -d && kEnd <= d && cur[kEnd+d] == n {
			return backtrace(a, b, trace, d), d, nil
		}
	}
	return aln.Pair{}, 0, ErrTooDivergent
}

// extend picks the furthest start point on diagonal k after one more edit.
// Substitution wins ties so gaps are opened only when they pay.
func extend(prev []int, pd, k, n, m int) (int, move) {
	at := func(k int) int {
		if k < -pd || k > pd {
			return -1
		}
		return prev[k+pd]
	}
	best, mv := -1, none
	if i := at(k); i >= 0 && i+1 <= n && i+1+k <= m {
		best, mv = i+1, sub
	}
	if i := at(k + 1); i >= 0 && i+1 <= n && i+1 > best {
		best, mv = i+1, del
	}
	if i := at(k - 1); i >= 0 && i+k <= m && i > best {
		best, mv = i, ins
	}
	return best, mv
}

func backtrace(a, b []byte, trace [][]int, d int) aln.Pair {
	n, m := len(a), len(b)
	con := make([]byte, 0, n+d)
	ass := make([]byte, 0, m+d)
	i, k := n, m-n
	for ; d > 0; d-- {
		start, mv := extend(trace[d-1], d-1, k, n, m)
		for ; i > start; i-- {
			con = append(con, a[i-1])
			ass = append(ass, b[i-1+k])
		}
		switch mv {
		case sub:
			i--
			con = append(con, a[i])
			ass = append(ass, b[i+k])
		case del:
			i--
			con = append(con, a[i])
			ass = append(ass, iupac.Gap)
			k++
		case ins:
			con = append(con, iupac.Gap)
			ass = append(ass, b[i+k-1])
			k--
		}
	}
	for ; i > 0; i-- {
		con = append(con, a[i-1])
		ass = append(ass, b[i-1])
	}
	reverse(con)
	reverse(ass)
	return aln.Pair{Con: string(con), Ass: string(ass)}
}

func reverse(s []byte) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
