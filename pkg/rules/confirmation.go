package rules

import "github.com/dmitrymomot/fieldkit/pkg/validation"

// Confirmation validates that text equals the current text of other,
// typically a password or email entered twice.
func Confirmation(other validation.ValidatableField) Rule {
	return newRule(
		func(s string) bool { return s == other.ValidationText() },
		"does not match confirmation",
		"validation.confirmation",
		nil,
	)
}
