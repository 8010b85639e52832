package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldkit/pkg/config"
	"github.com/dmitrymomot/fieldkit/pkg/logger"
	"github.com/dmitrymomot/fieldkit/pkg/ruleset"
)

type defaultsConfig struct {
	Name   string `env:"FIELDKIT_TEST_NAME" envDefault:"default_value"`
	Limit  int    `env:"FIELDKIT_TEST_LIMIT" envDefault:"42"`
	Strict bool   `env:"FIELDKIT_TEST_STRICT" envDefault:"true"`
}

type requiredConfig struct {
	Value string `env:"FIELDKIT_TEST_REQUIRED,required"`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("FIELDKIT_TEST_NAME")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Limit)
	assert.True(t, cfg.Strict)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("FIELDKIT_TEST_NAME", "first")

	var first defaultsConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Name)

	t.Setenv("FIELDKIT_TEST_NAME", "second")
	var second defaultsConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)

	config.ResetCache()
	var third defaultsConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Name)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("FIELDKIT_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("FIELDKIT_TEST_REQUIRED", "present")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "present", cfg.Value)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	config.ResetCache()
	os.Unsetenv("FIELDKIT_TEST_REQUIRED")

	var cfg requiredConfig
	assert.Panics(t, func() { config.MustLoad(&cfg) })
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	for _, key := range []string{"VALIDATION_RULESET_PATH", "VALIDATION_RULESET_STRICT", "LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	require.NoError(t, config.LoadEnv("testdata/.env.ruleset"))

	var rs ruleset.Config
	require.NoError(t, config.Load(&rs))
	assert.Equal(t, "testdata/signup.yaml", rs.Path)
	assert.True(t, rs.Strict)

	var lc logger.Config
	require.NoError(t, config.Load(&lc))
	assert.Equal(t, "debug", lc.Level)
	assert.Equal(t, "json", lc.Format)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	err := config.LoadEnv("testdata/.env.missing")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv("testdata/.env.missing") })
}
