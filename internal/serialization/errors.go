package serialization

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrTruncated     = errors.New("weights stream ends inside a value")
	ErrCountMismatch = errors.New("weights file does not match network size")
)

// CountError reports a weights file whose value count differs from the
// parameter count of the network it is loaded into.
type CountError struct {
	Path     string
	Expected int // Parameters in the network
	Actual   int // Values in the file
}

// Error implements the error interface.
func (e *CountError) Error() string {
	return fmt.Sprintf("%s: network has %d parameters, file holds %d values", e.Path, e.Expected, e.Actual)
}

// Unwrap returns ErrCountMismatch.
func (e *CountError) Unwrap() error {
	return ErrCountMismatch
}
