package ruleset

import "errors"

var (
	ErrUnknownRule        = errors.New("unknown rule")
	ErrInvalidDefinition  = errors.New("invalid rule definition")
	ErrUnknownField       = errors.New("unknown field")
	ErrEmptyRuleset       = errors.New("ruleset defines no fields")
	ErrFailedToParseYAML  = errors.New("failed to parse ruleset YAML")
	ErrFailedToReadFile   = errors.New("failed to read ruleset file")
	ErrLoadingCancelled   = errors.New("loading ruleset cancelled")
	ErrNoPath             = errors.New("ruleset path is not configured")
	ErrDuplicateRule      = errors.New("rule already registered")
	ErrInvalidRuleBuilder = errors.New("rule builder must have a name and a function")
)
