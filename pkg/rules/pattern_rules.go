package rules

import (
	"fmt"
	"regexp"
	"strings"
)

// Match validates text against re. Empty text never matches.
// description is used in the message, e.g. "lowercase letters".
func Match(re *regexp.Regexp, description string) Rule {
	return newRule(
		func(s string) bool {
			if strings.TrimSpace(s) == "" {
				return false
			}
			return re.MatchString(s)
		},
		fmt.Sprintf("must match %s pattern", description),
		"validation.regex_pattern",
		map[string]any{"pattern": re.String(), "description": description},
	)
}

// Pattern compiles pattern and returns a Match rule.
func Pattern(pattern, description string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return Match(re, description), nil
}

// MustPattern is like Pattern but panics on an invalid pattern.
func MustPattern(pattern, description string) Rule {
	return Match(regexp.MustCompile(pattern), description)
}
