// core/classify/pair_test.go
package classify

import (
	"testing"

	"ccheck-core/frag"
)

func verdict(c Class, votes int) Verdict {
	return Verdict{Strong: Vote{c, votes}, Combined: Vote{c, votes}}
}

func TestPairerMergesHalves(t *testing.T) {
	log := &recorder{}
	p := NewPairer(log)
	if _, ok := p.Add(&frag.Fragment{ID: "x", Role: frag.Back}, verdict(Clean, 2)); ok {
		t.Fatalf("back half counted on its own")
	}
	if p.Combined.Total() != 0 {
		t.Fatalf("tally not empty after a back half")
	}
	got, ok := p.Add(&frag.Fragment{ID: "x", Role: frag.Front}, verdict(Contaminant, 1))
	if !ok {
		t.Fatalf("front half not counted")
	}
	want := Vote{Class: Conflicting, Votes: 3}
	if got.Strong != want || got.Combined != want {
		t.Errorf("merged %+v, want %v", got, want)
	}
	if p.Strong[Conflicting] != 1 || p.Combined[Conflicting] != 1 {
		t.Errorf("tallies %v %v", p.Strong, p.Combined)
	}
	if len(log.warnings) != 0 || len(p.Orphans()) != 0 {
		t.Errorf("unexpected warnings %q orphans %q", log.warnings, p.Orphans())
	}
}

func TestPairerKeepsTalliesApart(t *testing.T) {
	p := NewPairer(&recorder{})
	p.Add(&frag.Fragment{ID: "x", Role: frag.Back}, Verdict{Strong: Vote{Clean, 1}, Combined: Vote{Contaminant, 2}})
	got, _ := p.Add(&frag.Fragment{ID: "x", Role: frag.Front}, Verdict{Strong: Vote{Clean, 1}, Combined: Vote{Unknown, 0}})
	if got.Strong != (Vote{Clean, 2}) || got.Combined != (Vote{Contaminant, 2}) {
		t.Errorf("merged %+v", got)
	}
}

func TestPairerAnomalies(t *testing.T) {
	log := &recorder{}
	p := NewPairer(log)

	if _, ok := p.Add(&frag.Fragment{ID: "lonely", Role: frag.Front}, verdict(Contaminant, 1)); !ok {
		t.Errorf("front without back not counted")
	}
	if _, ok := p.Add(&frag.Fragment{ID: "odd", Role: frag.Role(9)}, verdict(Clean, 1)); ok {
		t.Errorf("unknown role counted")
	}
	p.Add(&frag.Fragment{ID: "w", Role: frag.Whole}, verdict(Clean, 1))
	p.Add(&frag.Fragment{ID: "b2", Role: frag.Back}, verdict(Clean, 1))
	p.Add(&frag.Fragment{ID: "b1", Role: frag.Back}, verdict(Clean, 1))

	if len(log.warnings) != 2 {
		t.Errorf("warnings = %q, want 2", log.warnings)
	}
	if p.Combined.Total() != 2 || p.Combined[Contaminant] != 1 || p.Combined[Clean] != 1 {
		t.Errorf("combined tally %v", p.Combined)
	}
	if o := p.Orphans(); len(o) != 2 || o[0] != "b1" || o[1] != "b2" {
		t.Errorf("orphans %q", o)
	}
}
