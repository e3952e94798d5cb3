package service

import (
	"errors"
	"fmt"
)

// ErrInvalid marks a validation failure. It is reported to the caller
// as a user-visible notice and nothing is mutated or persisted.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound marks an operation against a record id that no longer
// exists in its collection.
var ErrNotFound = errors.New("not found")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}
