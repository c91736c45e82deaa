package attr

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField matches every MissingFieldError via errors.Is.
	ErrMissingField = errors.New("attr: missing field")
	// ErrBadValue matches every BadValueError via errors.Is.
	ErrBadValue = errors.New("attr: bad value")
)

// MissingFieldError reports a required key absent from the container.
type MissingFieldError struct {
	Modifier string
	Field    string
}

func (e *MissingFieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("attr: %s: missing value", e.Modifier)
	}
	return fmt.Sprintf("attr: %s: missing field %q", e.Modifier, e.Field)
}

// Is reports whether target is ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// BadValueError reports a value that could not be converted to its declared
// kind, including enum tokens outside the closed set.
type BadValueError struct {
	Modifier string
	Field    string
	Value    any
	Err      error
}

func (e *BadValueError) Error() string {
	msg := fmt.Sprintf("attr: %s: bad value %s", e.Modifier, formatValue(e.Value))
	if e.Field != "" {
		msg = fmt.Sprintf("attr: %s: bad value %s for field %q", e.Modifier, formatValue(e.Value), e.Field)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the conversion failure.
func (e *BadValueError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrBadValue.
func (e *BadValueError) Is(target error) bool {
	return target == ErrBadValue
}

func formatValue(v any) string {
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprintf("%v", v)
}
