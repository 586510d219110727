// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file when
// one exists), loads them into structured Go types, and validates that
// required values are present so the app fails fast on bad/missing config.
//
// Two naming schemes are understood:
//   - the well-known names the service has always used (SUPABASE_URL,
//     SUPABASE_KEY, PORT, ...), translated through envKeys;
//   - a generic SHOECLEAN_<SECTION>__<KEY> form for everything else,
//     e.g. SHOECLEAN_SERVER__READ_TIMEOUT -> server.read_timeout.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it gets loaded into the
	// process env before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of the generic env var form.
const EnvPrefix = "SHOECLEAN_"

// envKeys maps well-known env var names onto koanf key paths.
var envKeys = map[string]string{
	"SUPABASE_URL":          "supabase.url",
	"SUPABASE_KEY":          "supabase.key",
	"SUPABASE_TIMEOUT":      "supabase.timeout",
	"PORT":                  "server.port",
	"CORS_ALLOWED_ORIGINS":  "server.cors_allowed_origins",
	"APP_ENV":               "primary.env",
	"DATABASE_URL":          "database.url",
	"LOG_LEVEL":             "observability.logging.level",
	"LOG_FORMAT":            "observability.logging.format",
	"NEW_RELIC_LICENSE_KEY": "observability.new_relic.license_key",
}

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
type Config struct {
	Primary       Primary             `koanf:"primary" validate:"required"`
	Server        ServerConfig        `koanf:"server" validate:"required"`
	Supabase      SupabaseConfig      `koanf:"supabase" validate:"required"`
	Database      DatabaseConfig      `koanf:"database"`
	Observability ObservabilityConfig `koanf:"observability" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required,min=1"`
}

// SupabaseConfig holds the two credentials the database client needs.
// Both are required; there are no defaults.
type SupabaseConfig struct {
	URL string `koanf:"url" validate:"required,url"`
	Key string `koanf:"key" validate:"required"`

	// Timeout bounds each PostgREST call. Zero leaves the transport defaults alone.
	Timeout time.Duration `koanf:"timeout"`
}

// DatabaseConfig holds the direct Postgres connection string.
// Only the migrate command needs it.
type DatabaseConfig struct {
	URL string `koanf:"url"`
}

// LoadConfig loads configuration from environment variables, applies
// defaults, validates it and returns the result.
//
// Unlike most of the app, it does not log: the caller decides how to die.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(env.Provider("", ".", mapEnvKey), nil); err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	// Unmarshal over the defaults: only keys present in the env overwrite them.
	cfg := defaultConfig()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.Observability.ServiceName = ServiceName
	cfg.Observability.Environment = cfg.Primary.Env
	if err := cfg.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return cfg, nil
}

// mapEnvKey turns an env var name into a koanf key.
// Returning "" makes koanf skip the variable.
func mapEnvKey(s string) string {
	if key, ok := envKeys[s]; ok {
		return key
	}
	if strings.HasPrefix(s, EnvPrefix) {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}
	return ""
}

func defaultConfig() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// applyDefaults covers variables that are set but empty (PORT="" etc.).
func (c *Config) applyDefaults() {
	d := defaultConfig()
	if c.Primary.Env == "" {
		c.Primary.Env = d.Primary.Env
	}
	if c.Server.Port == "" {
		c.Server.Port = d.Server.Port
	}
	c.Server.CORSAllowedOrigins = splitOrigins(c.Server.CORSAllowedOrigins)
	if len(c.Server.CORSAllowedOrigins) == 0 {
		c.Server.CORSAllowedOrigins = d.Server.CORSAllowedOrigins
	}
	c.Supabase.URL = strings.TrimRight(c.Supabase.URL, "/")

	if c.Observability.Logging.Format == "" {
		c.Observability.Logging.Format = d.Observability.Logging.Format
	}
}

// splitOrigins flattens comma separated entries, so "a,b" and ["a", "b"]
// end up the same regardless of how the value was decoded.
func splitOrigins(in []string) []string {
	var out []string
	for _, entry := range in {
		for _, origin := range strings.Split(entry, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				out = append(out, origin)
			}
		}
	}
	return out
}
