package rules_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fieldkit/pkg/rules"
)

func TestPassword(t *testing.T) {
	t.Run("default config", func(t *testing.T) {
		rule := rules.Password(rules.DefaultPasswordConfig())
		assert.True(t, rule.Validate("Secur3Passw0rd"))
		assert.False(t, rule.Validate("Sh0rt"), "too short")
		assert.False(t, rule.Validate("alllowercase1"), "missing uppercase")
		assert.False(t, rule.Validate("ALLUPPERCASE1"), "missing lowercase")
		assert.False(t, rule.Validate("NoDigitsHere"), "missing digit")
		assert.False(t, rule.Validate(strings.Repeat("Ab1", 50)), "too long")
		assert.Equal(t, "password must be 8-128 characters with required character types", rule.ErrorMessage())
		assert.Equal(t, "validation.password_strength", rule.TranslationKey())
	})

	t.Run("rejects common passwords", func(t *testing.T) {
		cfg := rules.PasswordConfig{MinLength: 6, RejectCommon: true}
		assert.False(t, rules.Password(cfg).Validate("Password123"))
		assert.True(t, rules.Password(cfg).Validate("horse battery staple"))
	})

	t.Run("special characters", func(t *testing.T) {
		cfg := rules.PasswordConfig{MinLength: 4, RequireSpecial: true}
		assert.True(t, rules.Password(cfg).Validate("abc!"))
		assert.False(t, rules.Password(cfg).Validate("abcd"))
	})

	t.Run("character classes", func(t *testing.T) {
		cfg := rules.PasswordConfig{MinLength: 1, MinCharClasses: 2}
		assert.True(t, rules.Password(cfg).Validate("a1"))
		assert.False(t, rules.Password(cfg).Validate("aa"))
	})

	t.Run("no upper bound message", func(t *testing.T) {
		rule := rules.Password(rules.PasswordConfig{MinLength: 10})
		assert.Equal(t, "password must be at least 10 characters with required character types", rule.ErrorMessage())
		assert.True(t, rule.Validate(strings.Repeat("x", 500)))
	})
}
