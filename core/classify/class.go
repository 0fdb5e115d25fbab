// core/classify/class.go
package classify

import "fmt"

// Class is the verdict on one fragment.
type Class int

const (
	Unknown     Class = iota // no usable evidence
	Clean                    // consistent with the target only
	Contaminant              // consistent with the contaminant only
	Conflicting              // evidence for both
	Nonsensical              // consistent with neither at some position
)

// NumClasses is the number of distinct classes.
const NumClasses = 5

var labels = [NumClasses]string{"unclassified", "clean", "contaminant", "conflicting", "nonsensical"}

func (c Class) String() string {
	if c < 0 || c >= NumClasses {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return labels[c]
}

// Classes lists every class in report order.
func Classes() []Class { return []Class{Unknown, Clean, Contaminant, Conflicting, Nonsensical} }

// mergeTable[a][b] combines two verdicts on the same fragment: equal
// verdicts stand, Unknown adds nothing, Nonsensical absorbs everything, and
// any other disagreement is a conflict.
var mergeTable = [NumClasses][NumClasses]Class{
	Unknown:     {Unknown, Clean, Contaminant, Conflicting, Nonsensical},
	Clean:       {Clean, Clean, Conflicting, Conflicting, Nonsensical},
	Contaminant: {Contaminant, Conflicting, Contaminant, Conflicting, Nonsensical},
	Conflicting: {Conflicting, Conflicting, Conflicting, Conflicting, Nonsensical},
	Nonsensical: {Nonsensical, Nonsensical, Nonsensical, Nonsensical, Nonsensical},
}

// Merge combines two classes. It is commutative and associative.
func Merge(a, b Class) Class { return mergeTable[a][b] }

// Vote is a class together with the number of positions that decided it.
type Vote struct {
	Class Class
	Votes int
}

// evidence turns the two consistency tests at one position into a class.
func evidence(clean, dirt bool) Class {
	switch {
	case clean && !dirt:
		return Clean
	case dirt && !clean:
		return Contaminant
	case !clean && !dirt:
		return Nonsensical
	}
	return Unknown
}

// Observe folds the evidence of one position into v. A position counts as
// a vote when exactly one of the tests passed.
func (v *Vote) Observe(clean, dirt bool) {
	v.Class = Merge(v.Class, evidence(clean, dirt))
	if clean != dirt {
		v.Votes++
	}
}

// Merge combines the votes of two halves of one fragment.
func (v Vote) Merge(o Vote) Vote {
	return Vote{Class: Merge(v.Class, o.Class), Votes: v.Votes + o.Votes}
}

func (v Vote) String() string { return fmt.Sprintf("%v (%d votes)", v.Class, v.Votes) }

// Verdict holds both tallies for a fragment: Strong counts only strongly
// diagnostic positions, Combined every position that survived pruning.
type Verdict struct {
	Strong   Vote
	Combined Vote
}

// Merge combines the verdicts of a back and a front half.
func (v Verdict) Merge(o Verdict) Verdict {
	return Verdict{Strong: v.Strong.Merge(o.Strong), Combined: v.Combined.Merge(o.Combined)}
}

// Tally counts fragments per class.
type Tally [NumClasses]int

// Add counts one fragment.
func (t *Tally) Add(c Class) { t[c]++ }

// Total is the number of fragments counted.
func (t Tally) Total() int {
	n := 0
	for _, v := range t {
		n += v
	}
	return n
}

// Classified is the number of fragments with a definite verdict.
func (t Tally) Classified() int { return t.Total() - t[Unknown] }
