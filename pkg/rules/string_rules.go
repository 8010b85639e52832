package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// charCount counts user-perceived characters closely enough for length
// limits: composed and decomposed forms of the same text count the same.
func charCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}

// Required validates that text is not empty after trimming whitespace.
func Required() Rule {
	return newRule(
		func(s string) bool { return strings.TrimSpace(s) != "" },
		"field is required",
		"validation.required",
		nil,
	)
}

func MinLength(min int) Rule {
	return newRule(
		func(s string) bool { return charCount(s) >= min },
		fmt.Sprintf("must be at least %d characters long", min),
		"validation.min_length",
		map[string]any{"min": min},
	)
}

func MaxLength(max int) Rule {
	return newRule(
		func(s string) bool { return charCount(s) <= max },
		fmt.Sprintf("must be at most %d characters long", max),
		"validation.max_length",
		map[string]any{"max": max},
	)
}

func ExactLength(length int) Rule {
	return newRule(
		func(s string) bool { return charCount(s) == length },
		fmt.Sprintf("must be exactly %d characters long", length),
		"validation.exact_length",
		map[string]any{"length": length},
	)
}

// CharacterSet validates that every character of text belongs to allowed.
func CharacterSet(allowed string) Rule {
	return newRule(
		func(s string) bool {
			if s == "" {
				return false
			}
			for _, r := range s {
				if !strings.ContainsRune(allowed, r) {
					return false
				}
			}
			return true
		},
		fmt.Sprintf("must contain only the characters %q", allowed),
		"validation.character_set",
		map[string]any{"allowed": allowed},
	)
}

// FullName validates that text holds at least two space-separated words.
func FullName() Rule {
	return newRule(
		func(s string) bool { return len(strings.Fields(s)) >= 2 },
		"must include first and last name",
		"validation.full_name",
		nil,
	)
}
