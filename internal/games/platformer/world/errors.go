package world

import (
	"errors"
	"fmt"
)

// ErrMissingArgument is returned when a required actor argument is nil.
var ErrMissingArgument = errors.New("world: missing argument")

// ErrTypeMismatch matches every *TypeMismatchError via errors.Is.
var ErrTypeMismatch = errors.New("world: type mismatch")

// TypeMismatchError reports a value that does not satisfy the capability
// expected of it.
type TypeMismatchError struct {
	Got  string // Kind of the offending value
	Want string // Expected kind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("world: wrong argument type %s, expected %s", e.Got, e.Want)
}

// Is reports whether target is ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
