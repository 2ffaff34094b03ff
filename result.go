package validate

import (
	"errors"
	"fmt"
	"strings"
)

// FieldError describes a single validation failure.
type FieldError struct {
	Field   string         // field path, e.g. "Surname", "Address.Line1", "Orders[2]"
	Message string         // rendered message
	Code    string         // stable error code, e.g. "validation.equal"
	Params  map[string]any // raw placeholder values Message was rendered from
	Value   any            // the value that failed the check
}

// FieldErrors is a collection of validation failures. It satisfies the error
// interface so a whole failed validation can be returned as a single error.
type FieldErrors []FieldError

func (fe FieldErrors) Error() string {
	if len(fe) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(fe))
	for _, err := range fe {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any failure was recorded for the given field.
func (fe FieldErrors) Has(field string) bool {
	for _, err := range fe {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the rendered messages recorded for the given field.
func (fe FieldErrors) Get(field string) []string {
	var messages []string
	for _, err := range fe {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// Fields returns the distinct field paths that failed, in first-failure order.
func (fe FieldErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range fe {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (fe FieldErrors) IsEmpty() bool {
	return len(fe) == 0
}

// Result is the outcome of a Validate call.
type Result struct {
	errs FieldErrors
}

// IsValid reports whether no rule failed.
func (r Result) IsValid() bool {
	return len(r.errs) == 0
}

// Errors returns every recorded failure in evaluation order.
func (r Result) Errors() FieldErrors {
	return r.errs
}

// Err returns the failures as an error, or nil when validation passed.
func (r Result) Err() error {
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs
}

func (r *Result) add(err FieldError) {
	r.errs = append(r.errs, err)
}

// AsFieldErrors extracts FieldErrors from an error, returning nil when err
// does not carry validation failures.
func AsFieldErrors(err error) FieldErrors {
	if err == nil {
		return nil
	}

	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}

// IsFieldErrors reports whether err carries validation failures.
func IsFieldErrors(err error) bool {
	return AsFieldErrors(err) != nil
}
