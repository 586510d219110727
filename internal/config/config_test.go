package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co/")
	t.Setenv("SUPABASE_KEY", "anon-key")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://abc.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "anon-key", cfg.Supabase.Key)
	assert.Equal(t, time.Duration(0), cfg.Supabase.Timeout)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)
	assert.Equal(t, "development", cfg.Primary.Env)
	assert.Equal(t, ServiceName, cfg.Observability.ServiceName)
	assert.Equal(t, "development", cfg.Observability.Environment)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
	assert.Equal(t, "debug", cfg.Observability.GetLogLevel())
	assert.False(t, cfg.Observability.NewRelicEnabled())
}

func TestLoadConfig_MissingSupabaseURL(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_KEY", "anon-key")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Supabase.URL")
}

func TestLoadConfig_MissingSupabaseKey(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://abc.supabase.co")
	t.Setenv("SUPABASE_KEY", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Supabase.Key")
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("SUPABASE_TIMEOUT", "5s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("SHOECLEAN_SERVER__READ_TIMEOUT", "15")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, 30, cfg.Server.WriteTimeout)
	assert.Equal(t, 5*time.Second, cfg.Supabase.Timeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
	assert.True(t, cfg.Observability.IsProduction())
	assert.Equal(t, "info", cfg.Observability.GetLogLevel())
	assert.Equal(t, "console", cfg.Observability.Logging.Format)
}

func TestLoadConfig_EmptyPortFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
}

func TestLoadConfig_InvalidLogLevel(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid logging level")
}

func TestMapEnvKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SUPABASE_URL", "supabase.url"},
		{"PORT", "server.port"},
		{"SHOECLEAN_SERVER__IDLE_TIMEOUT", "server.idle_timeout"},
		{"SHOECLEAN_OBSERVABILITY__LOGGING__LEVEL", "observability.logging.level"},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, mapEnvKey(tt.in))
		})
	}
}
