// core/aln/pair.go
package aln

import "fmt"

// Gap is the symbol aligners use to pad a row.
const Gap = '-'

// Pair is a global alignment of the contaminant consensus (Con) against the
// assembly consensus (Ass). Both rows have the same length.
type Pair struct {
	Con string
	Ass string
}

// NewPair checks that both rows have equal length.
func NewPair(con, ass string) (Pair, error) {
	if len(con) != len(ass) {
		return Pair{}, fmt.Errorf("aligned rows differ in length: %d vs %d", len(con), len(ass))
	}
	return Pair{Con: con, Ass: ass}, nil
}

// Len is the number of alignment columns.
func (p Pair) Len() int { return len(p.Con) }
