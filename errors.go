package validate

import "errors"

var (
	// ErrInvalidRange is the panic value raised when a range rule is built
	// with its lower bound above its upper bound. Inverted bounds are a
	// programming error and surface at rule construction, not at validation
	// time.
	ErrInvalidRange = errors.New("validate: range lower bound exceeds upper bound")

	// ErrValidationFailed is a generic sentinel for callers that only need
	// to signal that validation failed without field-level detail.
	ErrValidationFailed = errors.New("validation failed")
)
