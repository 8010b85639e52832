package logger

import "errors"

var (
	// ErrInvalidLevel is returned when a configured level name is not recognised by slog.
	ErrInvalidLevel = errors.New("invalid log level")

	// ErrInvalidFormat is returned when a configured format is neither json nor text.
	ErrInvalidFormat = errors.New("invalid log format")
)
