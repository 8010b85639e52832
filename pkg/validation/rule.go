package validation

// Rule is a single constraint on text.
// Validate must be deterministic and free of side effects. ErrorMessage
// describes the requirement and does not depend on the validated text.
type Rule interface {
	Validate(text string) bool
	ErrorMessage() string
}

// Translatable is implemented by rules that expose an i18n key for their
// message. A ValidationError produced by such a rule carries the key and values.
type Translatable interface {
	TranslationKey() string
	TranslationValues() map[string]any
}

type funcRule struct {
	check   func(string) bool
	message string
}

// NewRule adapts a predicate and a fixed message into a Rule.
func NewRule(check func(text string) bool, message string) Rule {
	return funcRule{check: check, message: message}
}

func (r funcRule) Validate(text string) bool { return r.check(text) }

func (r funcRule) ErrorMessage() string { return r.message }
