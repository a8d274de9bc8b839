package nn

import "errors"

// Lifecycle errors.
var (
	ErrBorrowed = errors.New("trainable is borrowed by an outstanding pass")
	ErrConsumed = errors.New("handle has already been used")
)
