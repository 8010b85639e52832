package validation

import "maps"

// ValidationError describes the first rule a text failed.
// It is immutable: every accessor returns the value captured at construction.
type ValidationError struct {
	field     ValidatableField
	label     Label
	message   string
	ruleIndex int
	key       string
	values    map[string]any
}

func newValidationError(field ValidatableField, label Label, rule Rule, index int) *ValidationError {
	verr := &ValidationError{
		field:     field,
		label:     label,
		message:   rule.ErrorMessage(),
		ruleIndex: index,
	}
	if t, ok := rule.(Translatable); ok {
		verr.key = t.TranslationKey()
		verr.values = maps.Clone(t.TranslationValues())
	}
	return verr
}

// Field returns the field the failed text belongs to.
func (e *ValidationError) Field() ValidatableField { return e.field }

// ErrorLabel returns the display target, or nil when none was configured.
func (e *ValidationError) ErrorLabel() Label { return e.label }

// Message returns the failing rule's error message.
func (e *ValidationError) Message() string { return e.message }

// RuleIndex returns the position of the failing rule in the rule list.
func (e *ValidationError) RuleIndex() int { return e.ruleIndex }

// TranslationKey returns the failing rule's i18n key, if it has one.
func (e *ValidationError) TranslationKey() string { return e.key }

// TranslationValues returns a copy of the failing rule's i18n parameters.
func (e *ValidationError) TranslationValues() map[string]any { return maps.Clone(e.values) }

// Error implements the error interface so a failure can be wrapped and
// matched with errors.As by higher layers.
func (e *ValidationError) Error() string { return e.message }
