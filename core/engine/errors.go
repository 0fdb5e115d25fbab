// core/engine/errors.go
package engine

import (
	"errors"
	"fmt"

	"ccheck-core/myers"
)

var (
	// ErrInvalidSequence: a consensus holds something other than IUPAC
	// nucleotide codes.
	ErrInvalidSequence = errors.New("invalid consensus sequence")
	// ErrTooDivergent: no global alignment within the edit bound.
	ErrTooDivergent = fmt.Errorf("could not align reference and assembly: %w", myers.ErrTooDivergent)
	// ErrTooFewStrong: fewer strongly diagnostic positions than the safety
	// floor demands.
	ErrTooFewStrong = errors.New("too few strongly diagnostic positions")
)
