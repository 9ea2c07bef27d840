package engine

import (
	"errors"
	"fmt"
)

// ErrInvariant marks a store/physics desynchronization or a broken data-model invariant
var ErrInvariant = errors.New("invariant violation")

// InvariantError carries the failing operation; raised as a panic inside a frame
// and returned as an error by GameContext.Step
type InvariantError struct {
	Op     string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvariant, e.Op, e.Detail)
}

func (e *InvariantError) Unwrap() error {
	return ErrInvariant
}

// Invariantf panics with an InvariantError
func Invariantf(op, format string, args ...any) {
	panic(&InvariantError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
