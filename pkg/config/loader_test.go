package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/userhub/pkg/config"
)

type testConfig struct {
	Name    string `env:"TEST_CONFIG_NAME" envDefault:"userhub"`
	Port    int    `env:"TEST_CONFIG_PORT" envDefault:"8080"`
	Secret  string `env:"TEST_CONFIG_SECRET,required"`
	Verbose bool   `env:"TEST_CONFIG_VERBOSE" envDefault:"false"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults and env overrides", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_SECRET", "s3cret")
		t.Setenv("TEST_CONFIG_PORT", "9090")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "userhub", cfg.Name)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "s3cret", cfg.Secret)
		assert.False(t, cfg.Verbose)
	})

	t.Run("fails when a required variable is missing", func(t *testing.T) {
		var cfg testConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("rejects nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("returns loaded config", func(t *testing.T) {
		t.Setenv("TEST_CONFIG_SECRET", "s3cret")

		var cfg testConfig
		assert.NotPanics(t, func() { config.MustLoad(&cfg) })
		assert.Equal(t, "s3cret", cfg.Secret)
	})
}
