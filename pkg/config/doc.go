// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file in the working directory is read once if present, then
// the environment is parsed into a struct using `env` field tags. Each
// configuration type is parsed at most once per process and cached.
//
// # Usage
//
//	var cfg ruleset.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
// Use LoadEnv to read additional .env files before the first Load, and
// ResetCache in tests that change the environment between loads.
package config
