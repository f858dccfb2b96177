package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuanvumaihuynh/product-catalog/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("Should apply defaults", func(t *testing.T) {
		type Config struct {
			Log   config.Log
			HTTP  config.HTTP
			Relay config.Relay
			Otel  config.Otel
		}

		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatJSON, cfg.Log.Format)
		assert.Equal(t, slog.LevelInfo, cfg.Log.Level)
		assert.Equal(t, uint32(8000), cfg.HTTP.Port)
		assert.Equal(t, []string{"*"}, cfg.HTTP.CorsAllowedOrigins)
		assert.Equal(t, time.Second, cfg.Relay.Interval)
		assert.Equal(t, "product-catalog", cfg.Otel.ServiceName)
		assert.Empty(t, cfg.Otel.CollectorURL)
	})

	t.Run("Should read environment", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "text")
		t.Setenv("LOG_LEVEL", "DEBUG")
		t.Setenv("HTTP_CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")

		type Config struct {
			Log  config.Log
			HTTP config.HTTP
		}

		cfg, err := config.New[Config]()
		require.NoError(t, err)

		assert.Equal(t, config.LogFormatText, cfg.Log.Format)
		assert.Equal(t, slog.LevelDebug, cfg.Log.Level)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CorsAllowedOrigins)
	})

	t.Run("Should fail on missing required variable", func(t *testing.T) {
		type Config struct {
			Import config.Import
		}

		_, err := config.New[Config]()
		assert.Error(t, err)
	})

	t.Run("Should round trip log format names", func(t *testing.T) {
		for _, format := range []config.LogFormat{config.LogFormatJSON, config.LogFormatText} {
			text, err := format.MarshalText()
			require.NoError(t, err)

			var got config.LogFormat
			require.NoError(t, got.UnmarshalText(text))
			assert.Equal(t, format, got)
		}
	})

	t.Run("Should reject unknown log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")

		type Config struct {
			Log config.Log
		}

		_, err := config.New[Config]()
		assert.Error(t, err)
	})
}
