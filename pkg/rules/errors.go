package rules

import "errors"

var (
	// ErrInvalidTag is returned when a go-playground/validator tag is empty or unknown.
	ErrInvalidTag = errors.New("invalid validator tag")

	// ErrInvalidPattern is returned when a regular expression does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")
)
