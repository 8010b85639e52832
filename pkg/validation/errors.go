package validation

import "errors"

var (
	// ErrNilField is returned when a ValidationRule is bound to a nil field.
	ErrNilField = errors.New("validation: field must not be nil")

	// ErrNilRule is returned when the rule list contains a nil entry.
	ErrNilRule = errors.New("validation: rule must not be nil")

	// ErrInvalidRange is returned when an edit range does not describe a
	// contiguous span of the current field text.
	ErrInvalidRange = errors.New("validation: invalid edit range")
)
