package apperr

import (
	"errors"
	"fmt"
)

// Invalid is returned when the input fails domain validation.
var Invalid = errors.New("invalid input")

// Conflict indicates a state conflict, such as deleting a branch that still has yards.
var Conflict = errors.New("conflict")

// NotFound indicates that the requested resource does not exist.
var NotFound = errors.New("not found")

// Invalidf wraps Invalid with a human readable detail.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", Invalid, fmt.Sprintf(format, args...))
}

// Conflictf wraps Conflict with a human readable detail.
func Conflictf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", Conflict, fmt.Sprintf(format, args...))
}

// NotFoundf wraps NotFound with a human readable detail.
func NotFoundf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", NotFound, fmt.Sprintf(format, args...))
}
