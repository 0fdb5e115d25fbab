// core/frag/frag_test.go
package frag

import "testing"

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		f    Fragment
		want string
	}{
		{"plain", Fragment{Start: 0, End: 3, Seq: "ACGT"}, "ACGT"},
		{"deletion", Fragment{Start: 5, End: 8, Seq: "AC-T"}, "ACT"},
		{"insertion", Fragment{Start: 0, End: 3, Seq: "ACGT", Ins: []string{"", "TT", "", ""}}, "ACTTGT"},
		{"insertion after deletion", Fragment{Start: 0, End: 2, Seq: "A-T", Ins: []string{"", "G", ""}}, "AGT"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.f.Read(); got != tc.want {
				t.Errorf("Read() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	good := Fragment{ID: "r1", Start: 2, End: 4, Seq: "ACG"}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bad := []Fragment{
		{ID: "short", Start: 0, End: 4, Seq: "ACG"},
		{ID: "reversed", Start: 4, End: 2, Seq: ""},
		{ID: "ins", Start: 0, End: 1, Seq: "AC", Ins: []string{""}},
	}
	for _, f := range bad {
		if err := f.Validate(); err == nil {
			t.Errorf("%s: expected error", f.ID)
		}
	}
}
