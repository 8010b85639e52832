package ruleset

import (
	"fmt"

	"github.com/dmitrymomot/fieldkit/pkg/rules"
	"github.com/dmitrymomot/fieldkit/pkg/validation"
)

// Definition describes one rule of a field. Which attributes apply depends
// on the rule: length rules read Value, pattern reads Pattern and
// Description, tag reads Tag, character_set reads Allowed and password
// reads Password.
type Definition struct {
	Rule        string              `yaml:"rule"`
	Message     string              `yaml:"message,omitempty"`
	Value       *int                `yaml:"value,omitempty"`
	Pattern     string              `yaml:"pattern,omitempty"`
	Description string              `yaml:"description,omitempty"`
	Tag         string              `yaml:"tag,omitempty"`
	Allowed     string              `yaml:"allowed,omitempty"`
	Password    *PasswordDefinition `yaml:"password,omitempty"`
}

// PasswordDefinition overrides fields of rules.DefaultPasswordConfig.
// Keys left out of the document keep their default.
type PasswordDefinition struct {
	MinLength        *int  `yaml:"min_length"`
	MaxLength        *int  `yaml:"max_length"`
	RequireUppercase *bool `yaml:"require_uppercase"`
	RequireLowercase *bool `yaml:"require_lowercase"`
	RequireDigits    *bool `yaml:"require_digits"`
	RequireSpecial   *bool `yaml:"require_special"`
	MinCharClasses   *int  `yaml:"min_char_classes"`
	RejectCommon     *bool `yaml:"reject_common"`
}

// apply returns cfg with every key set in p replaced.
func (p *PasswordDefinition) apply(cfg rules.PasswordConfig) rules.PasswordConfig {
	if p == nil {
		return cfg
	}
	setInt(&cfg.MinLength, p.MinLength)
	setInt(&cfg.MaxLength, p.MaxLength)
	setInt(&cfg.MinCharClasses, p.MinCharClasses)
	setBool(&cfg.RequireUppercase, p.RequireUppercase)
	setBool(&cfg.RequireLowercase, p.RequireLowercase)
	setBool(&cfg.RequireDigits, p.RequireDigits)
	setBool(&cfg.RequireSpecial, p.RequireSpecial)
	setBool(&cfg.RejectCommon, p.RejectCommon)
	return cfg
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

type document struct {
	Fields []fieldDocument `yaml:"fields"`
}

type fieldDocument struct {
	Name      string       `yaml:"name"`
	IndexUnit string       `yaml:"index_unit,omitempty"`
	Rules     []Definition `yaml:"rules"`
}

func parseIndexUnit(s string) (validation.IndexUnit, error) {
	switch s {
	case "", "runes":
		return validation.IndexRunes, nil
	case "utf16":
		return validation.IndexUTF16, nil
	case "bytes":
		return validation.IndexBytes, nil
	default:
		return 0, fmt.Errorf("%w: unknown index_unit %q", ErrInvalidDefinition, s)
	}
}

// intValue returns the required numeric attribute of a definition.
func (d Definition) intValue() (int, error) {
	if d.Value == nil {
		return 0, fmt.Errorf("%w: %s requires value", ErrInvalidDefinition, d.Rule)
	}
	if *d.Value < 0 {
		return 0, fmt.Errorf("%w: %s value must not be negative", ErrInvalidDefinition, d.Rule)
	}
	return *d.Value, nil
}
