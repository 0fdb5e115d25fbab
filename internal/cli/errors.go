// internal/cli/errors.go
package cli

import "fmt"

// UsageError marks a problem with the command line or the configuration,
// as opposed to a failure of the analysis itself.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}
