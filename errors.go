package fixedarray

import (
	"errors"
	"fmt"
)

// ErrBoundsViolation is matched by every BoundsError via errors.Is.
var ErrBoundsViolation = errors.New("fixedarray: data could not fit in array")

// BoundsError reports an operation that would touch slots outside [0, N).
type BoundsError struct {
	Requested int // span the operation asked for
	Capacity  int // N
}

// Error implements the error interface.
func (e *BoundsError) Error() string {
	return fmt.Sprintf("fixedarray: data could not fit in array (requested %d, capacity %d)",
		e.Requested, e.Capacity)
}

// Is reports whether target is ErrBoundsViolation.
func (e *BoundsError) Is(target error) bool {
	return target == ErrBoundsViolation
}
