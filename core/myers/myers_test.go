// core/myers/myers_test.go
package myers

import (
	"errors"
	"strings"
	"testing"
)

func ungap(s string) string { return strings.ReplaceAll(s, "-", "") }

func TestAlign(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		wantD   int
		wantCon string
		wantAss string
	}{
		{"identical", "ACGTACGT", "ACGTACGT", 0, "ACGTACGT", "ACGTACGT"},
		{"substitution", "ACGTACGT", "ACGAACGT", 1, "ACGTACGT", "ACGAACGT"},
		{"ambiguity matches", "ACRT", "ACGT", 0, "ACRT", "ACGT"},
		{"insertion in b", "ACGT", "ACGGT", 1, "ACG-T", "ACGGT"},
		{"deletion from b", "ACGGT", "ACGT", 1, "ACGGT", "ACG-T"},
		{"empty a", "", "AC", 2, "--", "AC"},
		{"both empty", "", "", 0, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, d, err := Align([]byte(tc.a), []byte(tc.b), -1)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d != tc.wantD {
				t.Errorf("distance = %d, want %d", d, tc.wantD)
			}
			if p.Con != tc.wantCon || p.Ass != tc.wantAss {
				t.Errorf("alignment = %q/%q, want %q/%q", p.Con, p.Ass, tc.wantCon, tc.wantAss)
			}
		})
	}
}

func TestAlignPreservesSequences(t *testing.T) {
	pairs := [][2]string{
		{"GATTACAGATTACA", "GATCACAGTTTACA"},
		{"AAAACCCCGGGG", "CCCCGGGGTTTT"},
		{"ACGTTGCA", "TGCAACGT"},
		{"A", "TTTTT"},
	}
	for _, pr := range pairs {
		p, d, err := Align([]byte(pr[0]), []byte(pr[1]), -1)
		if err != nil {
			t.Fatalf("%v: %v", pr, err)
		}
		if len(p.Con) != len(p.Ass) {
			t.Errorf("%v: rows differ in length", pr)
		}
		if ungap(p.Con) != pr[0] || ungap(p.Ass) != pr[1] {
			t.Errorf("%v: rows do not reproduce inputs: %q/%q", pr, p.Con, p.Ass)
		}
		edits := 0
		for i := range p.Con {
			if p.Con[i] != p.Ass[i] {
				edits++
			}
		}
		if edits != d {
			t.Errorf("%v: %d differing columns, distance %d", pr, edits, d)
		}
	}
}

func TestAlignTooDivergent(t *testing.T) {
	if _, _, err := Align([]byte("AAAAAAAA"), []byte("TTTTTTTT"), 3); !errors.Is(err, ErrTooDivergent) {
		t.Errorf("err = %v, want ErrTooDivergent", err)
	}
	if _, _, err := Align([]byte("A"), []byte("AAAAAA"), 2); !errors.Is(err, ErrTooDivergent) {
		t.Errorf("length difference: err = %v, want ErrTooDivergent", err)
	}
	if _, d, err := Align([]byte("AAAAAAAA"), []byte("TTTTTTTT"), 8); err != nil || d != 8 {
		t.Errorf("at the bound: d=%d err=%v", d, err)
	}
}
