package validation

// ValidatableField supplies the current text of an input element.
type ValidatableField interface {
	ValidationText() string
}

// Named is an optional capability of a field used to identify it in logs and
// metrics. WithName takes precedence over it.
type Named interface {
	FieldName() string
}

// Label is a display target for a failure message.
// The validation package only carries it through to ValidationError.
type Label interface {
	SetText(text string)
}

// StaticField is a ValidatableField holding fixed text.
// It is handy for validating values that do not come from a live input.
type StaticField string

func (f StaticField) ValidationText() string { return string(f) }
