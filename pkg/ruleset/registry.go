package ruleset

import (
	"fmt"
	"sync"

	"github.com/dmitrymomot/fieldkit/pkg/rules"
	"github.com/dmitrymomot/fieldkit/pkg/validation"
)

// Builder creates a rule from its definition.
type Builder func(def Definition) (validation.Rule, error)

// Registry maps rule names to builders. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	builders map[string]Builder
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]Builder)}
}

// DefaultRegistry returns a new registry preloaded with the pkg/rules rules.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for name, b := range builtins() {
		r.builders[name] = b
	}
	return r
}

// Register adds a builder under name. Names cannot be registered twice.
func (r *Registry) Register(name string, b Builder) error {
	if name == "" || b == nil {
		return ErrInvalidRuleBuilder
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.builders[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateRule, name)
	}
	r.builders[name] = b
	return nil
}

// Build creates the rule described by def and applies its message override.
func (r *Registry) Build(def Definition) (validation.Rule, error) {
	r.mu.RLock()
	b, ok := r.builders[def.Rule]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, def.Rule)
	}

	rule, err := b(def)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, fmt.Errorf("%w: builder for %q returned no rule", ErrInvalidDefinition, def.Rule)
	}
	if def.Message != "" {
		rule = withMessage(rule, def.Message)
	}
	return rule, nil
}

type messageOverride struct {
	validation.Rule
	message string
}

func (m messageOverride) ErrorMessage() string { return m.message }

// translatableOverride keeps the i18n data of a wrapped Translatable rule.
type translatableOverride struct {
	messageOverride
	t validation.Translatable
}

func (o translatableOverride) TranslationKey() string { return o.t.TranslationKey() }

func (o translatableOverride) TranslationValues() map[string]any { return o.t.TranslationValues() }

func withMessage(r validation.Rule, msg string) validation.Rule {
	if rr, ok := r.(rules.Rule); ok {
		return rr.WithMessage(msg)
	}
	m := messageOverride{Rule: r, message: msg}
	if t, ok := r.(validation.Translatable); ok {
		return translatableOverride{messageOverride: m, t: t}
	}
	return m
}

func simple(ctor func() rules.Rule) Builder {
	return func(Definition) (validation.Rule, error) { return ctor(), nil }
}

func sized(ctor func(int) rules.Rule) Builder {
	return func(def Definition) (validation.Rule, error) {
		n, err := def.intValue()
		if err != nil {
			return nil, err
		}
		return ctor(n), nil
	}
}

func builtins() map[string]Builder {
	return map[string]Builder{
		"required":     simple(rules.Required),
		"email":        simple(rules.Email),
		"url":          simple(rules.URL),
		"phone":        simple(rules.Phone),
		"zip_code":     simple(rules.ZipCode),
		"alpha":        simple(rules.Alpha),
		"alphanumeric": simple(rules.AlphaNumeric),
		"numeric":      simple(rules.Numeric),
		"float":        simple(rules.Float),
		"ipv4":         simple(rules.IPv4),
		"hex_color":    simple(rules.HexColor),
		"full_name":    simple(rules.FullName),
		"min_length":   sized(rules.MinLength),
		"max_length":   sized(rules.MaxLength),
		"exact_length": sized(rules.ExactLength),
		"pattern": func(def Definition) (validation.Rule, error) {
			if def.Pattern == "" {
				return nil, fmt.Errorf("%w: pattern requires pattern", ErrInvalidDefinition)
			}
			desc := def.Description
			if desc == "" {
				desc = def.Pattern
			}
			r, err := rules.Pattern(def.Pattern, desc)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
			}
			return r, nil
		},
		"character_set": func(def Definition) (validation.Rule, error) {
			if def.Allowed == "" {
				return nil, fmt.Errorf("%w: character_set requires allowed", ErrInvalidDefinition)
			}
			return rules.CharacterSet(def.Allowed), nil
		},
		"tag": func(def Definition) (validation.Rule, error) {
			r, err := rules.Tag(def.Tag, def.Message)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidDefinition, err)
			}
			return r, nil
		},
		"password": func(def Definition) (validation.Rule, error) {
			return rules.Password(def.Password.apply(rules.DefaultPasswordConfig())), nil
		},
	}
}
