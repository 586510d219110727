package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/deppfellow/shoeclean/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testObservability(env string) *config.ObservabilityConfig {
	cfg := config.DefaultObservabilityConfig()
	cfg.Environment = env
	return &cfg
}

func TestNewLoggerWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := testObservability("production")

	service, err := NewLoggerService(cfg)
	require.NoError(t, err)
	assert.Nil(t, service.GetApplication())

	log := NewLoggerWithWriter(cfg, service, &buf)
	log.Debug().Msg("hidden")
	log.Info().Str("request_id", "abc").Msg("visible")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visible", line["message"])
	assert.Equal(t, "abc", line["request_id"])
	assert.Equal(t, config.ServiceName, line["service"])
	assert.Equal(t, "production", line["environment"])
}

func TestNewLoggerWithWriter_ExplicitLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := testObservability("development")
	cfg.Logging.Level = "error"

	log := NewLoggerWithWriter(cfg, &LoggerService{}, &buf)
	log.Warn().Msg("dropped")

	assert.Empty(t, buf.String())
	assert.Equal(t, zerolog.ErrorLevel, log.GetLevel())
}

func TestNewLoggerWithWriter_ConsoleInLocal(t *testing.T) {
	var buf bytes.Buffer
	log := NewLoggerWithWriter(testObservability("local"), nil, &buf)
	log.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(buf.Bytes()))
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	log := WithTraceContext(zerolog.New(&buf), nil)
	log.Info().Msg("x")

	assert.NotContains(t, buf.String(), "trace.id")
}

func TestLoggerService_NilSafe(t *testing.T) {
	var service *LoggerService
	assert.Nil(t, service.GetApplication())
	assert.NotPanics(t, service.Shutdown)
}

func TestGetPgxTraceLogLevel(t *testing.T) {
	assert.Equal(t, tracelog.LogLevelDebug, tracelog.LogLevel(GetPgxTraceLogLevel(zerolog.DebugLevel)))
	assert.Equal(t, tracelog.LogLevelInfo, tracelog.LogLevel(GetPgxTraceLogLevel(zerolog.InfoLevel)))
	assert.Equal(t, tracelog.LogLevelWarn, tracelog.LogLevel(GetPgxTraceLogLevel(zerolog.WarnLevel)))
	assert.Equal(t, tracelog.LogLevelError, tracelog.LogLevel(GetPgxTraceLogLevel(zerolog.ErrorLevel)))
	assert.Equal(t, tracelog.LogLevelNone, tracelog.LogLevel(GetPgxTraceLogLevel(zerolog.Disabled)))
}
