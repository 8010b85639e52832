// Package rules provides ready-made validation.Rule implementations for
// common text constraints: presence, length, character classes, formats
// such as email or URL, password strength, confirmation of another field,
// and go-playground/validator tags.
//
// Every constructor returns a Rule value holding only its configuration, so
// the same Rule can be shared by many fields and evaluated concurrently.
// Rules also carry a translation key and parameters, which end up on the
// validation.ValidationError when the rule fails.
//
// # Usage
//
//	vr, err := validation.New(passwordField, []validation.Rule{
//	    rules.Required(),
//	    rules.MinLength(8),
//	    rules.Password(rules.DefaultPasswordConfig()),
//	}, passwordLabel)
//
// Override a default message with WithMessage:
//
//	rules.MinLength(3).WithMessage("username is too short")
//
// Format rules other than Required reject empty text. Put Required first
// when a field is mandatory so the user sees the more useful message.
package rules
