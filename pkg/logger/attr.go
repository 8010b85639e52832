package logger

import "log/slog"

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records the validated field name under the key "field".
// An empty name returns an empty Attr.
func Field(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("field", name)
}

// RuleIndex records the position of a rule in its list under the key "rule_index".
func RuleIndex(i int) slog.Attr {
	return slog.Int("rule_index", i)
}

// Message records a validation message under the key "message".
func Message(msg string) slog.Attr {
	return slog.String("message", msg)
}
