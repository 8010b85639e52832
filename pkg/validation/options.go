package validation

import (
	"log/slog"
	"time"
)

// Option configures a ValidationRule.
type Option func(*ValidationRule)

// WithName sets the name used for the field in logs and observer outcomes.
// Empty names are ignored.
func WithName(name string) Option {
	return func(v *ValidationRule) {
		if name != "" {
			v.name = name
		}
	}
}

// WithLogger sets the logger used to record failed evaluations at debug level.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(v *ValidationRule) {
		if l != nil {
			v.logger = l
		}
	}
}

// WithObserver registers an observer notified after every evaluation.
// Nil observers are ignored.
func WithObserver(o Observer) Option {
	return func(v *ValidationRule) {
		if o != nil {
			v.observer = o
		}
	}
}

// WithIndexUnit sets how ValidateEdit interprets range indexes.
func WithIndexUnit(u IndexUnit) Option {
	return func(v *ValidationRule) {
		switch u {
		case IndexRunes, IndexUTF16, IndexBytes:
			v.unit = u
		}
	}
}

// Outcome summarises one evaluation.
type Outcome struct {
	Field     string
	Passed    bool
	RuleIndex int // index of the failing rule, -1 when Passed
	Evaluated int // number of rules whose Validate was called
	Duration  time.Duration
}

// Observer receives the outcome of every evaluation.
// Implementations must not block.
type Observer interface {
	Observe(Outcome)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Outcome)

func (f ObserverFunc) Observe(o Outcome) { f(o) }
