// Package logger builds *slog.Logger values for fieldkit components using
// functional options, and provides attribute helpers that keep key names
// consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "signup-form"),
//	)
//
//	vr, _ := validation.New(field, rules, label, validation.WithLogger(log))
//
// A logger can also be built from environment variables through pkg/config:
//
//	var cfg logger.Config
//	config.MustLoad(&cfg)
//	log, err := logger.FromConfig(cfg)
//
// # Attributes
//
// Field, RuleIndex, Message, Error and Group return slog.Attr values. Error
// returns an empty attribute for a nil error so it can be passed without a
// nil check.
package logger
