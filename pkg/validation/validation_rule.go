package validation

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// ValidationRule binds a field, its optional error label and an ordered list
// of rules. The rule order is the evaluation order and, when several rules
// would fail, decides which message is reported.
type ValidationRule struct {
	field    ValidatableField
	label    Label
	rules    []Rule
	name     string
	unit     IndexUnit
	logger   *slog.Logger
	observer Observer
}

// New creates a ValidationRule for field. label may be nil and rules may be
// empty, in which case every text is valid. The rules slice is copied.
func New(field ValidatableField, rules []Rule, label Label, opts ...Option) (*ValidationRule, error) {
	if field == nil {
		return nil, ErrNilField
	}
	for i, r := range rules {
		if r == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilRule, i)
		}
	}

	v := &ValidationRule{
		field:  field,
		label:  label,
		rules:  slices.Clone(rules),
		unit:   IndexRunes,
		logger: slog.New(slog.DiscardHandler),
	}
	if n, ok := field.(Named); ok {
		v.name = n.FieldName()
	}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// MustNew is like New but panics on invalid arguments.
func MustNew(field ValidatableField, rules []Rule, label Label, opts ...Option) *ValidationRule {
	v, err := New(field, rules, label, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Field returns the bound field.
func (v *ValidationRule) Field() ValidatableField { return v.field }

// SetField replaces the bound field.
func (v *ValidationRule) SetField(field ValidatableField) error {
	if field == nil {
		return ErrNilField
	}
	v.field = field
	return nil
}

// ErrorLabel returns the display target, or nil.
func (v *ValidationRule) ErrorLabel() Label { return v.label }

// SetErrorLabel replaces the display target. A nil label removes it.
func (v *ValidationRule) SetErrorLabel(label Label) { v.label = label }

// Rules returns a copy of the rules in evaluation order.
func (v *ValidationRule) Rules() []Rule { return slices.Clone(v.rules) }

// Name returns the field name used for logs and metrics.
func (v *ValidationRule) Name() string { return v.name }

// ValidateField validates the current text of the field.
func (v *ValidationRule) ValidateField() *ValidationError {
	return v.ValidateText(v.field.ValidationText())
}

// ValidateEdit validates the text the field would hold if the span r of its
// current text were replaced with replacement. The field is left unchanged.
// An error is returned only when r is not a valid span of the current text.
func (v *ValidationRule) ValidateEdit(r Range, replacement string) (*ValidationError, error) {
	text, err := replaceRange(v.field.ValidationText(), r, replacement, v.unit)
	if err != nil {
		return nil, err
	}
	return v.ValidateText(text), nil
}

// ValidateText validates text against the rules in order and returns an
// error for the first rule that fails. Later rules are not evaluated.
// It returns nil when every rule passes.
func (v *ValidationRule) ValidateText(text string) *ValidationError {
	var started time.Time
	if v.observer != nil {
		started = time.Now()
	}

	var verr *ValidationError
	evaluated := 0
	for i, rule := range v.rules {
		evaluated++
		if !rule.Validate(text) {
			verr = newValidationError(v.field, v.label, rule, i)
			break
		}
	}

	if verr != nil {
		v.logger.Debug("field validation failed",
			logger.Field(v.name),
			logger.RuleIndex(verr.ruleIndex),
			logger.Message(verr.message),
		)
	}

	if v.observer != nil {
		o := Outcome{
			Field:     v.name,
			Passed:    verr == nil,
			RuleIndex: -1,
			Evaluated: evaluated,
			Duration:  time.Since(started),
		}
		if verr != nil {
			o.RuleIndex = verr.ruleIndex
		}
		v.observer.Observe(o)
	}

	return verr
}
