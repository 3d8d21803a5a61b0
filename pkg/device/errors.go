package device

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a device was not found
	ErrNotFound = errors.New("device not found")

	// ErrValidation indicates a value outside its legal range or set
	ErrValidation = errors.New("validation error")

	// ErrUnsupported indicates an unknown device kind or state key
	ErrUnsupported = errors.New("operation not supported")
)

// reject returns the rejected Result for msg together with an error
// wrapping ErrValidation.
func reject(msg string) (Result, error) {
	return rejected(msg), fmt.Errorf("%w: %s", ErrValidation, msg)
}

func unsupportedf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, fmt.Sprintf(format, args...))
}
