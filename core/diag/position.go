// core/diag/position.go
package diag

import (
	"fmt"

	"github.com/biogo/store/llrb"
)

// Strength grades how well a position separates contaminant from target.
type Strength int

const (
	// Weak positions differ textually but remain ambiguity-compatible.
	Weak Strength = iota
	// Effective positions started weak and were confirmed by a fragment.
	Effective
	// Strong positions are ambiguity-incompatible.
	Strong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Effective:
		return "effective"
	case Strong:
		return "strong"
	default:
		return fmt.Sprintf("Strength(%d)", int(s))
	}
}

// Letter is the one-letter tag used in verbose listings.
func (s Strength) Letter() byte { return "wes"[s] }

// Position is one diagnostic position, keyed by its assembly coordinate.
type Position struct {
	Coord       int
	Consensus   byte // contaminant consensus base
	Assembly    byte // assembly consensus base
	Contaminant byte // base seen in the first fragment that upgraded it
	Strength    Strength
}

// Compare orders positions by coordinate.
func (p *Position) Compare(b llrb.Comparable) int {
	return p.Coord - b.(*Position).Coord
}

// Upgrade promotes a weak position to effective, recording the base that
// showed it up. Anything but a weak position is left alone, so the first
// qualifying fragment wins and nothing is ever downgraded.
func (p *Position) Upgrade(contaminant byte) bool {
	if p.Strength != Weak {
		return false
	}
	p.Strength = Effective
	p.Contaminant = contaminant
	return true
}

// ContaminantBase is the base expected from the contaminant: the consensus
// base, or for effective positions the base actually observed.
func (p *Position) ContaminantBase() byte {
	if p.Strength == Effective && p.Contaminant != 0 {
		return p.Contaminant
	}
	return p.Consensus
}

// String renders a position the way verbose listings show it, e.g.
// "<1234s:T,C>" or "<77e:R(A),G>".
func (p *Position) String() string {
	con := string(p.Consensus)
	if p.Strength == Effective {
		con += "(" + string(p.Contaminant) + ")"
	}
	return fmt.Sprintf("<%d%c:%s,%c>", p.Coord, p.Strength.Letter(), con, p.Assembly)
}
