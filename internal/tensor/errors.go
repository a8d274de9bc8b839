package tensor

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is matched by every shape error produced by the engine.
var ErrShapeMismatch = errors.New("shape mismatch")

// ShapeMismatchError reports a disagreement between an expected and an
// actual size. Expected and Actual hold element counts, ranks or single
// dimensions depending on Op.
type ShapeMismatchError struct {
	Op       string // Operation that detected the mismatch
	Expected int
	Actual   int
	Shape    Shape // Offending shape, if known
}

// Error implements the error interface.
func (e *ShapeMismatchError) Error() string {
	if e.Shape != nil {
		return fmt.Sprintf("%s: shape mismatch for %v: expected %d, got %d", e.Op, e.Shape, e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: shape mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

// Is reports whether target is ErrShapeMismatch.
func (e *ShapeMismatchError) Is(target error) bool {
	return target == ErrShapeMismatch
}

// Mismatch builds a *ShapeMismatchError.
func Mismatch(op string, expected, actual int) error {
	return &ShapeMismatchError{Op: op, Expected: expected, Actual: actual}
}

// CheckSameShape fails unless a and b have equal shapes.
func CheckSameShape(op string, a, b Storage) error {
	sa, sb := a.Shape(), b.Shape()
	if len(sa) != len(sb) {
		return &ShapeMismatchError{Op: op, Expected: len(sa), Actual: len(sb), Shape: sb}
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return &ShapeMismatchError{Op: op, Expected: sa[i], Actual: sb[i], Shape: sb}
		}
	}
	return nil
}
