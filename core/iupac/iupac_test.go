// core/iupac/iupac_test.go
package iupac

import "testing"

func TestDiagnosticPredicates(t *testing.T) {
	tests := []struct {
		name       string
		a, b       byte
		wantStrong bool
		wantWeak   bool
		wantTransv bool
	}{
		{"identical", 'A', 'A', false, false, false},
		{"case only", 'a', 'A', false, false, false},
		{"transition", 'C', 'T', true, true, false},
		{"transversion", 'T', 'A', true, true, true},
		{"compatible ambiguity", 'R', 'A', false, true, false},
		{"incompatible ambiguity", 'R', 'C', true, true, false},
		{"N never strong", 'N', 'G', false, true, false},
		{"gap left", '-', 'A', false, false, false},
		{"gap right", 'C', '-', false, false, false},
		{"uracil vs thymine", 'U', 'T', false, true, false},
		{"uracil vs guanine", 'u', 'g', true, true, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := StronglyDiagnostic(tc.a, tc.b); got != tc.wantStrong {
				t.Errorf("StronglyDiagnostic(%c,%c) = %v, want %v", tc.a, tc.b, got, tc.wantStrong)
			}
			if got := WeaklyDiagnostic(tc.a, tc.b); got != tc.wantWeak {
				t.Errorf("WeaklyDiagnostic(%c,%c) = %v, want %v", tc.a, tc.b, got, tc.wantWeak)
			}
			if got := Transversion(tc.a, tc.b); got != tc.wantTransv {
				t.Errorf("Transversion(%c,%c) = %v, want %v", tc.a, tc.b, got, tc.wantTransv)
			}
		})
	}
}

func TestStrongImpliesWeak(t *testing.T) {
	const symbols = "ACGTURYSWKMBDHVNacgt-"
	for i := 0; i < len(symbols); i++ {
		for j := 0; j < len(symbols); j++ {
			a, b := symbols[i], symbols[j]
			if StronglyDiagnostic(a, b) && !WeaklyDiagnostic(a, b) {
				t.Errorf("%c/%c strongly but not weakly diagnostic", a, b)
			}
		}
	}
}

func TestConsistent(t *testing.T) {
	tests := []struct {
		name    string
		ancient bool
		x, y    byte
		want    bool
	}{
		{"match", false, 'A', 'A', true},
		{"mismatch", false, 'C', 'T', false},
		{"gap in read", false, 'C', '-', true},
		{"gap in reference", false, '-', 'T', true},
		{"ambiguous reference", false, 'Y', 'T', true},
		{"deaminated C", true, 'C', 'T', true},
		{"deaminated G", true, 'G', 'A', true},
		{"deaminated lower case", true, 'g', 'a', true},
		{"C to A is not deamination", true, 'C', 'A', false},
		{"ancient leaves T alone", true, 'T', 'C', false},
		{"modern C to T", false, 'C', 'T', false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Consistent(tc.ancient, tc.x, tc.y); got != tc.want {
				t.Errorf("Consistent(%v,%c,%c) = %v, want %v", tc.ancient, tc.x, tc.y, got, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]byte("ACGTNRYacgtu")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, bad := range []string{"ACG-T", "ACGX", "AC GT"} {
		if err := Validate([]byte(bad)); err == nil {
			t.Errorf("Validate(%q) = nil, want error", bad)
		}
	}
}

func TestRevComp(t *testing.T) {
	tests := []struct{ in, want string }{
		{"ACGT", "ACGT"},
		{"AACG", "CGTT"},
		{"acgN", "Ncgt"},
		{"RYKM", "KMRY"},
		{"AXG", "CNT"},
	}
	for _, tc := range tests {
		if got := string(RevComp([]byte(tc.in))); got != tc.want {
			t.Errorf("RevComp(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
	if RevComp(nil) != nil {
		t.Errorf("RevComp(nil) should be nil")
	}
}
