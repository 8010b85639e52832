package ruleset_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/ruleset"
	"github.com/dmitrymomot/fieldkit/pkg/validation"
)

type inputField struct {
	text string
}

func (f *inputField) ValidationText() string { return f.text }

type errorLabel struct {
	text string
}

func (l *errorLabel) SetText(text string) { l.text = text }

func TestLoad(t *testing.T) {
	rs, err := ruleset.Load(context.Background(), "testdata/signup.yaml", ruleset.WithStrict(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"username", "email", "bio"}, rs.Fields())

	username, ok := rs.Rules("username")
	require.True(t, ok)
	require.Len(t, username, 3)
	assert.Equal(t, "field is required", username[0].ErrorMessage())
	assert.Equal(t, "too short", username[1].ErrorMessage())

	_, ok = rs.Rules("missing")
	assert.False(t, ok)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ruleset.Load(context.Background(), "testdata/nope.yaml")
		assert.ErrorIs(t, err, ruleset.ErrFailedToReadFile)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := ruleset.Load(ctx, "testdata/signup.yaml")
		assert.ErrorIs(t, err, ruleset.ErrLoadingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("strict mode rejects unknown keys", func(t *testing.T) {
		_, err := ruleset.Load(context.Background(), "testdata/unknown_key.yaml", ruleset.WithStrict(true))
		assert.ErrorIs(t, err, ruleset.ErrFailedToParseYAML)

		rs, err := ruleset.Load(context.Background(), "testdata/unknown_key.yaml")
		require.NoError(t, err)
		assert.Equal(t, []string{"username"}, rs.Fields())
	})
}

func TestLoadFromConfig(t *testing.T) {
	_, err := ruleset.LoadFromConfig(context.Background(), ruleset.Config{})
	assert.ErrorIs(t, err, ruleset.ErrNoPath)

	_, err = ruleset.LoadFromConfig(context.Background(), ruleset.Config{Path: "testdata/unknown_key.yaml", Strict: true})
	assert.ErrorIs(t, err, ruleset.ErrFailedToParseYAML)

	rs, err := ruleset.LoadFromConfig(context.Background(), ruleset.Config{Path: "testdata/signup.yaml"})
	require.NoError(t, err)
	assert.Len(t, rs.Fields(), 3)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{name: "malformed", yaml: "fields: [", want: ruleset.ErrFailedToParseYAML},
		{name: "empty", yaml: "fields: []", want: ruleset.ErrEmptyRuleset},
		{name: "unknown rule", yaml: "fields:\n  - name: a\n    rules:\n      - rule: shiny\n", want: ruleset.ErrUnknownRule},
		{name: "missing name", yaml: "fields:\n  - rules:\n      - rule: required\n", want: ruleset.ErrInvalidDefinition},
		{name: "duplicate field", yaml: "fields:\n  - name: a\n  - name: a\n", want: ruleset.ErrInvalidDefinition},
		{name: "missing value", yaml: "fields:\n  - name: a\n    rules:\n      - rule: min_length\n", want: ruleset.ErrInvalidDefinition},
		{name: "negative value", yaml: "fields:\n  - name: a\n    rules:\n      - rule: max_length\n        value: -1\n", want: ruleset.ErrInvalidDefinition},
		{name: "bad pattern", yaml: "fields:\n  - name: a\n    rules:\n      - rule: pattern\n        pattern: \"([\"\n", want: ruleset.ErrInvalidDefinition},
		{name: "missing pattern", yaml: "fields:\n  - name: a\n    rules:\n      - rule: pattern\n", want: ruleset.ErrInvalidDefinition},
		{name: "bad tag", yaml: "fields:\n  - name: a\n    rules:\n      - rule: tag\n        tag: nonsense_tag\n", want: ruleset.ErrInvalidDefinition},
		{name: "missing allowed", yaml: "fields:\n  - name: a\n    rules:\n      - rule: character_set\n", want: ruleset.ErrInvalidDefinition},
		{name: "bad index unit", yaml: "fields:\n  - name: a\n    index_unit: graphemes\n", want: ruleset.ErrInvalidDefinition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ruleset.Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParse_AllBuiltins(t *testing.T) {
	doc := `
fields:
  - name: everything
    rules:
      - rule: required
      - rule: email
      - rule: url
      - rule: phone
      - rule: zip_code
      - rule: alpha
      - rule: alphanumeric
      - rule: numeric
      - rule: float
      - rule: ipv4
      - rule: hex_color
      - rule: full_name
      - rule: min_length
        value: 1
      - rule: max_length
        value: 5
      - rule: exact_length
        value: 2
      - rule: pattern
        pattern: "^x$"
      - rule: character_set
        allowed: abc
      - rule: tag
        tag: uuid4
      - rule: password
      - rule: password
        password:
          min_length: 4
`
	rs, err := ruleset.Parse([]byte(doc), ruleset.WithStrict(true))
	require.NoError(t, err)

	list, ok := rs.Rules("everything")
	require.True(t, ok)
	assert.Len(t, list, 20)
	assert.Equal(t, "must match ^x$ pattern", list[15].ErrorMessage())
	assert.True(t, list[19].Validate("Ab1x"))
	assert.False(t, list[19].Validate("abcd"))
	assert.False(t, list[18].Validate("Ab1x"))
}

func TestRuleset_Bind(t *testing.T) {
	rs, err := ruleset.Load(context.Background(), "testdata/signup.yaml")
	require.NoError(t, err)

	t.Run("evaluates declared order", func(t *testing.T) {
		field := &inputField{text: "ab"}
		label := &errorLabel{}
		vr, err := rs.Bind("username", field, label)
		require.NoError(t, err)
		assert.Equal(t, "username", vr.Name())

		verr := vr.ValidateField()
		require.NotNil(t, verr)
		assert.Equal(t, "too short", verr.Message())
		assert.Same(t, label, verr.ErrorLabel())
		assert.Same(t, field, verr.Field())

		field.text = "Abc"
		verr = vr.ValidateField()
		require.NotNil(t, verr)
		assert.Equal(t, "must match lowercase letters, digits and underscores pattern", verr.Message())

		field.text = "abc_1"
		assert.Nil(t, vr.ValidateField())
	})

	t.Run("tag message override", func(t *testing.T) {
		vr, err := rs.Bind("email", &inputField{text: "nope"}, nil)
		require.NoError(t, err)
		verr := vr.ValidateField()
		require.NotNil(t, verr)
		assert.Equal(t, "enter a valid email", verr.Message())
		assert.Nil(t, verr.ErrorLabel())
	})

	t.Run("declared index unit", func(t *testing.T) {
		field := &inputField{text: "😀😀😀😀"}
		vr, err := rs.Bind("bio", field, nil)
		require.NoError(t, err)

		// the emoji at index 2 occupies UTF-16 units [2, 4)
		verr, err := vr.ValidateEdit(validation.Range{Start: 2, End: 4}, "ab")
		require.NoError(t, err)
		assert.Nil(t, verr)

		_, err = vr.ValidateEdit(validation.Range{Start: 3, End: 4}, "ab")
		assert.ErrorIs(t, err, validation.ErrInvalidRange)

		verr, err = vr.ValidateEdit(validation.Range{Start: 8, End: 8}, strings.Repeat("x", 7))
		require.NoError(t, err)
		require.NotNil(t, verr)
		assert.Equal(t, "must be at most 10 characters long", verr.Message())
		assert.Equal(t, "😀😀😀😀", field.ValidationText())
	})

	t.Run("options override defaults", func(t *testing.T) {
		vr, err := rs.Bind("username", &inputField{}, nil, validation.WithName("login"))
		require.NoError(t, err)
		assert.Equal(t, "login", vr.Name())
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := rs.Bind("phone", &inputField{}, nil)
		assert.ErrorIs(t, err, ruleset.ErrUnknownField)
	})

	t.Run("nil field", func(t *testing.T) {
		_, err := rs.Bind("username", nil, nil)
		assert.ErrorIs(t, err, validation.ErrNilField)
	})
}

func TestLoadFromEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	t.Setenv("VALIDATION_RULESET_PATH", "testdata/signup.yaml")
	t.Setenv("VALIDATION_RULESET_STRICT", "true")

	rs, err := ruleset.LoadFromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"username", "email", "bio"}, rs.Fields())
}

func TestParse_PasswordKeepsDefaults(t *testing.T) {
	doc := `
fields:
  - name: password
    rules:
      - rule: password
        password:
          min_length: 8
  - name: pin
    rules:
      - rule: password
        password:
          min_length: 4
          require_uppercase: false
          require_lowercase: false
          min_char_classes: 1
          reject_common: false
`
	rs, err := ruleset.Parse([]byte(doc), ruleset.WithStrict(true))
	require.NoError(t, err)

	password, ok := rs.Rules("password")
	require.True(t, ok)
	require.Len(t, password, 1)
	assert.False(t, password[0].Validate("password1"), "common password")
	assert.False(t, password[0].Validate("aaaaaaaa"), "single character class")
	assert.True(t, password[0].Validate("Secur3Passw0rd"))
	assert.Equal(t, "password must be 8-128 characters with required character types", password[0].ErrorMessage())

	pin, ok := rs.Rules("pin")
	require.True(t, ok)
	assert.True(t, pin[0].Validate("1234"))
	assert.False(t, pin[0].Validate("12a"))
}
