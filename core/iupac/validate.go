// core/iupac/validate.go
package iupac

import "fmt"

// allowed lists every symbol a consensus sequence may carry.
const allowed = "ACGTBDHVMKYRSWUN"

// Validate returns an error naming the first symbol that is not an IUPAC
// nucleotide code. Gaps are not allowed in a consensus.
func Validate(seq []byte) error {
	for i, c := range seq {
		if !isAllowed(upper(c)) {
			return fmt.Errorf("invalid symbol %q at %d; allowed: A C G T U R Y S W K M B D H V N", c, i+1)
		}
	}
	return nil
}

func isAllowed(c byte) bool {
	for i := 0; i < len(allowed); i++ {
		if allowed[i] == c {
			return true
		}
	}
	return false
}
