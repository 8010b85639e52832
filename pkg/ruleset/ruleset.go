package ruleset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/validation"
)

// Config locates the ruleset file through the environment.
type Config struct {
	Path   string `env:"VALIDATION_RULESET_PATH"`
	Strict bool   `env:"VALIDATION_RULESET_STRICT" envDefault:"false"`
}

// Option configures parsing.
type Option func(*options)

type options struct {
	registry *Registry
	strict   bool
}

// WithRegistry resolves rule names through r instead of DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// WithStrict rejects documents containing keys the ruleset format does not define.
func WithStrict(strict bool) Option {
	return func(o *options) { o.strict = strict }
}

type fieldRules struct {
	rules []validation.Rule
	unit  validation.IndexUnit
}

// Ruleset holds the rules of named fields in document order.
type Ruleset struct {
	fields map[string]fieldRules
	order  []string
}

// Parse builds a Ruleset from YAML.
func Parse(data []byte, opts ...Option) (*Ruleset, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.registry == nil {
		o.registry = DefaultRegistry()
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(o.strict)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}
	if len(doc.Fields) == 0 {
		return nil, ErrEmptyRuleset
	}

	rs := &Ruleset{fields: make(map[string]fieldRules, len(doc.Fields))}
	for i, fd := range doc.Fields {
		if fd.Name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", ErrInvalidDefinition, i)
		}
		if _, dup := rs.fields[fd.Name]; dup {
			return nil, fmt.Errorf("%w: field %q defined twice", ErrInvalidDefinition, fd.Name)
		}

		unit, err := parseIndexUnit(fd.IndexUnit)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", fd.Name, err)
		}

		built := make([]validation.Rule, 0, len(fd.Rules))
		for j, def := range fd.Rules {
			rule, err := o.registry.Build(def)
			if err != nil {
				return nil, fmt.Errorf("field %q rule %d: %w", fd.Name, j, err)
			}
			built = append(built, rule)
		}

		rs.fields[fd.Name] = fieldRules{rules: built, unit: unit}
		rs.order = append(rs.order, fd.Name)
	}

	return rs, nil
}

// Load reads and parses the ruleset file at path.
func Load(ctx context.Context, path string, opts ...Option) (*Ruleset, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	return Parse(data, opts...)
}

// LoadFromConfig loads the file named by cfg. Options given here take
// precedence over cfg.Strict.
func LoadFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Ruleset, error) {
	if cfg.Path == "" {
		return nil, ErrNoPath
	}
	return Load(ctx, cfg.Path, append([]Option{WithStrict(cfg.Strict)}, opts...)...)
}

// LoadFromEnv reads Config from the environment and loads the file it names.
func LoadFromEnv(ctx context.Context, opts ...Option) (*Ruleset, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return LoadFromConfig(ctx, cfg, opts...)
}

// Fields returns field names in document order.
func (rs *Ruleset) Fields() []string {
	return slices.Clone(rs.order)
}

// Rules returns a copy of the rules for a field.
func (rs *Ruleset) Rules(name string) ([]validation.Rule, bool) {
	fr, ok := rs.fields[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(fr.rules), true
}

// Bind creates a ValidationRule for field using the rules declared for name.
// The rule is named after the field and uses the field's declared index
// unit; opts are applied after those defaults.
func (rs *Ruleset) Bind(name string, field validation.ValidatableField, label validation.Label, opts ...validation.Option) (*validation.ValidationRule, error) {
	fr, ok := rs.fields[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}

	base := []validation.Option{
		validation.WithName(name),
		validation.WithIndexUnit(fr.unit),
	}
	return validation.New(field, fr.rules, label, append(base, opts...)...)
}
