// core/frag/frag.go
package frag

import (
	"fmt"
	"strings"
)

// Role says which part of a read pair a fragment carries.
type Role int

const (
	// Whole is an unpaired fragment, or a merged pair.
	Whole Role = iota
	// Back is the first half seen of a pair; it waits for its Front.
	Back
	// Front completes a Back with the same ID.
	Front
)

func (r Role) String() string {
	switch r {
	case Whole:
		return "whole"
	case Back:
		return "back"
	case Front:
		return "front"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Fragment is one read as placed on the assembly.
//
// Seq has exactly one symbol per assembly column in [Start, End]; a
// deletion is '-'. Ins, when non-nil, has the same length as Seq and holds
// the bases inserted after each column.
type Fragment struct {
	ID    string
	Role  Role
	Start int
	End   int // inclusive
	Seq   string
	Ins   []string
}

// Len is the number of assembly columns the fragment covers.
func (f *Fragment) Len() int { return f.End - f.Start + 1 }

// Read reconstructs the sequenced read: the calls without deletions, with
// every insertion put back in place.
func (f *Fragment) Read() string {
	var b strings.Builder
	b.Grow(len(f.Seq))
	for i := 0; i < len(f.Seq); i++ {
		if f.Seq[i] != '-' {
			b.WriteByte(f.Seq[i])
		}
		if i < len(f.Ins) {
			b.WriteString(f.Ins[i])
		}
	}
	return b.String()
}

// Validate checks the shape invariants of a fragment.
func (f *Fragment) Validate() error {
	if f.Start < 0 || f.End < f.Start {
		return fmt.Errorf("fragment %q: bad span [%d,%d]", f.ID, f.Start, f.End)
	}
	if len(f.Seq) != f.Len() {
		return fmt.Errorf("fragment %q: %d calls for %d columns", f.ID, len(f.Seq), f.Len())
	}
	if f.Ins != nil && len(f.Ins) != len(f.Seq) {
		return fmt.Errorf("fragment %q: %d insertion slots for %d columns", f.ID, len(f.Ins), len(f.Seq))
	}
	return nil
}
