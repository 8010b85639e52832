package rules

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches parsed tags.
var validate = validator.New()

// Tag validates text with a go-playground/validator tag such as "email",
// "uuid4" or "min=3,max=20". An empty message falls back to a generic one.
func Tag(tag, message string) (Rule, error) {
	if err := checkTag(tag); err != nil {
		return Rule{}, err
	}
	if message == "" {
		message = fmt.Sprintf("must satisfy %q", tag)
	}
	return newRule(
		func(s string) (ok bool) {
			// a tag whose parameters only fail on some inputs must not
			// panic mid-evaluation
			defer func() {
				if recover() != nil {
					ok = false
				}
			}()
			return validate.Var(s, tag) == nil
		},
		message,
		"validation.tag",
		map[string]any{"tag": tag},
	), nil
}

// MustTag is like Tag but panics on an invalid tag.
func MustTag(tag, message string) Rule {
	r, err := Tag(tag, message)
	if err != nil {
		panic(err)
	}
	return r
}

// tagSamples exercise both the empty branch of omitempty and the
// parameters of the remaining validations.
var tagSamples = []string{"", "x", "0"}

// checkTag surfaces unknown tags and bad parameters as errors; validator
// panics on them.
func checkTag(tag string) (err error) {
	if tag == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidTag)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q: %v", ErrInvalidTag, tag, r)
		}
	}()
	for _, sample := range tagSamples {
		_ = validate.Var(sample, tag)
	}
	return nil
}
