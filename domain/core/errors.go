package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors (caller's fault, surfaced before any derivation runs)
	ErrValidation  = errors.New("invalid response vector")
	ErrWrongLength = fmt.Errorf("%w: wrong length", ErrValidation)
	ErrOutOfRange  = fmt.Errorf("%w: value out of range", ErrValidation)

	// Parse errors (malformed birth date/time)
	ErrParse = errors.New("invalid birth data")

	// Store errors. Deliberately opaque: a missing id and a wrong secret
	// are indistinguishable so that ids cannot be enumerated.
	ErrNotFoundOrUnauthorized = errors.New("reading not found or secret invalid")
)

// Error constructors with context
func NewWrongLengthError(got int) error {
	return fmt.Errorf("%w: got %d answers, want %d", ErrWrongLength, got, 100)
}

func NewOutOfRangeError(position, value int) error {
	return fmt.Errorf("%w: answer %d at question %d, want 1..5", ErrOutOfRange, value, position)
}

func NewParseError(field, value string, cause error) error {
	return fmt.Errorf("%w: %s %q: %v", ErrParse, field, value, cause)
}

// Error checking helpers
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

func IsNotFoundOrUnauthorized(err error) bool {
	return errors.Is(err, ErrNotFoundOrUnauthorized)
}
