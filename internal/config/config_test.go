package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, 60, cfg.Server.IdleTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "100K", cfg.Server.BodyLimit)

	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("QRGEN_PRIMARY__ENV", "production")
	t.Setenv("QRGEN_SERVER__PORT", "9090")
	t.Setenv("QRGEN_SERVER__READ_TIMEOUT", "30")
	t.Setenv("QRGEN_OBSERVABILITY__LOGGING__LEVEL", "warn")
	t.Setenv("QRGEN_OBSERVABILITY__LOGGING__FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 30, cfg.Server.ReadTimeout)
	assert.Equal(t, 10, cfg.Server.WriteTimeout)
	assert.Equal(t, "production", cfg.Observability.Environment)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "warn", cfg.Observability.GetLogLevel())
	assert.Equal(t, "console", cfg.Observability.Logging.Format)
}

func TestLoadConfigPortFallback(t *testing.T) {
	t.Setenv("PORT", "7070")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)

	t.Setenv("QRGEN_SERVER__PORT", "9090")

	cfg, err = LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfigServiceNameIsFixed(t *testing.T) {
	t.Setenv("QRGEN_OBSERVABILITY__SERVICE_NAME", "something-else")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"non-numeric port", "QRGEN_SERVER__PORT", "http"},
		{"zero timeout", "QRGEN_SERVER__IDLE_TIMEOUT", "0"},
		{"unknown log format", "QRGEN_OBSERVABILITY__LOGGING__FORMAT", "xml"},
		{"unknown log level", "QRGEN_OBSERVABILITY__LOGGING__LEVEL", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestGetLogLevelByEnvironment(t *testing.T) {
	cfg := DefaultObservabilityConfig()
	cfg.Logging.Level = ""

	assert.Equal(t, "debug", cfg.GetLogLevel())

	cfg.Environment = "production"
	assert.Equal(t, "info", cfg.GetLogLevel())
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "server.read_timeout", envKey("QRGEN_SERVER__READ_TIMEOUT"))
	assert.Equal(t, "observability.new_relic.license_key", envKey("QRGEN_OBSERVABILITY__NEW_RELIC__LICENSE_KEY"))
}
