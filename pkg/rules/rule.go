package rules

import "maps"

// Rule is a text predicate with a fixed error message and translation data.
// It implements validation.Rule and validation.Translatable.
type Rule struct {
	check   func(text string) bool
	message string
	key     string
	values  map[string]any
}

func newRule(check func(string) bool, message, key string, values map[string]any) Rule {
	return Rule{check: check, message: message, key: key, values: values}
}

// Validate reports whether text satisfies the rule.
func (r Rule) Validate(text string) bool {
	return r.check(text)
}

// ErrorMessage returns the message describing the rule.
func (r Rule) ErrorMessage() string {
	return r.message
}

// TranslationKey returns the i18n key of the message.
func (r Rule) TranslationKey() string {
	return r.key
}

// TranslationValues returns a copy of the message parameters.
func (r Rule) TranslationValues() map[string]any {
	return maps.Clone(r.values)
}

// WithMessage returns a copy of the rule reporting msg instead of the default message.
// The translation key is kept so localised output is unaffected.
func (r Rule) WithMessage(msg string) Rule {
	r.message = msg
	return r
}
