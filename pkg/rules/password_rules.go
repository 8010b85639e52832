package rules

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?~` + "`" + `]`)

	commonPasswords = map[string]struct{}{
		"password": {}, "password1": {}, "password123": {}, "123456": {},
		"12345678": {}, "123456789": {}, "1234567890": {}, "qwerty": {},
		"qwerty123": {}, "abc123": {}, "letmein": {}, "welcome": {},
		"admin": {}, "admin123": {}, "iloveyou": {}, "trustno1": {},
		"1q2w3e4r": {}, "1qaz2wsx": {}, "monkey": {}, "dragon": {},
	}
)

// PasswordConfig describes password strength requirements.
type PasswordConfig struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int // number of distinct character classes required
	RejectCommon     bool
}

// DefaultPasswordConfig returns a NIST-aligned policy: 8-128 characters,
// at least 3 character classes, common passwords rejected.
func DefaultPasswordConfig() PasswordConfig {
	return PasswordConfig{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		MinCharClasses:   3,
		RejectCommon:     true,
	}
}

// Password validates text against cfg. A zero MaxLength means no upper bound.
func Password(cfg PasswordConfig) Rule {
	return newRule(
		func(s string) bool { return checkPassword(s, cfg) },
		passwordMessage(cfg),
		"validation.password_strength",
		map[string]any{
			"min_length":        cfg.MinLength,
			"max_length":        cfg.MaxLength,
			"require_uppercase": cfg.RequireUppercase,
			"require_lowercase": cfg.RequireLowercase,
			"require_digits":    cfg.RequireDigits,
			"require_special":   cfg.RequireSpecial,
			"min_char_classes":  cfg.MinCharClasses,
		},
	)
}

func checkPassword(s string, cfg PasswordConfig) bool {
	n := utf8.RuneCountInString(s)
	if n < cfg.MinLength || (cfg.MaxLength > 0 && n > cfg.MaxLength) {
		return false
	}

	if cfg.RejectCommon {
		if _, ok := commonPasswords[strings.ToLower(s)]; ok {
			return false
		}
	}

	hasUpper := uppercaseRegex.MatchString(s)
	hasLower := lowercaseRegex.MatchString(s)
	hasDigit := digitRegex.MatchString(s)
	hasSpecial := specialCharRegex.MatchString(s)

	if cfg.RequireUppercase && !hasUpper ||
		cfg.RequireLowercase && !hasLower ||
		cfg.RequireDigits && !hasDigit ||
		cfg.RequireSpecial && !hasSpecial {
		return false
	}

	classes := 0
	for _, has := range []bool{hasUpper, hasLower, hasDigit, hasSpecial} {
		if has {
			classes++
		}
	}
	return classes >= cfg.MinCharClasses
}

func passwordMessage(cfg PasswordConfig) string {
	if cfg.MaxLength > 0 {
		return fmt.Sprintf("password must be %d-%d characters with required character types", cfg.MinLength, cfg.MaxLength)
	}
	return fmt.Sprintf("password must be at least %d characters with required character types", cfg.MinLength)
}
