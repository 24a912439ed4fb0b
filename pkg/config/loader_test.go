package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/salesdesk/pkg/config"
)

type serverTestConfig struct {
	Addr  string `env:"TEST_SRV_ADDR" envDefault:":8080"`
	Debug bool   `env:"TEST_SRV_DEBUG" envDefault:"false"`
}

type requiredTestConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET_UNSET,required"`
}

type cachedTestConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"initial"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults when env vars are unset", func(t *testing.T) {
		var cfg serverTestConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":8080", cfg.Addr)
		assert.False(t, cfg.Debug)
	})

	t.Run("reads values from environment", func(t *testing.T) {
		t.Setenv("TEST_ENV_ADDR", ":9090")

		type envConfig struct {
			Addr string `env:"TEST_ENV_ADDR" envDefault:":8080"`
		}
		var cfg envConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, ":9090", cfg.Addr)
	})

	t.Run("fails for missing required variables", func(t *testing.T) {
		var cfg requiredTestConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("returns error for nil pointer", func(t *testing.T) {
		var cfg *serverTestConfig
		err := config.Load(cfg)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("serves repeated loads of a type from cache", func(t *testing.T) {
		t.Setenv("TEST_CACHED_VALUE", "first")

		var first cachedTestConfig
		require.NoError(t, config.Load(&first))
		assert.Equal(t, "first", first.Value)

		// Changing the environment after the first load must not be observed.
		t.Setenv("TEST_CACHED_VALUE", "second")

		var again cachedTestConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Value)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredTestConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("does not panic on success", func(t *testing.T) {
		assert.NotPanics(t, func() {
			var cfg serverTestConfig
			config.MustLoad(&cfg)
		})
	})
}
