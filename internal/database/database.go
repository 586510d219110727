// Package database holds the process-wide handle to the hosted database.
//
// Item queries go through Supabase's PostgREST interface, so the handle is
// an HTTP client rather than a connection pool. It is built once at
// startup, never mutated afterwards, and shared by every request.
//
// It handles:
//   - building the PostgREST client from config
//   - wiring request logging and slow-call warnings into its transport
//   - optional New Relic external-segment instrumentation
//   - schema migrations over a direct pgx connection (see Migrate)
package database

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/shoeclean/internal/config"
	"github.com/deppfellow/shoeclean/internal/lib/postgrest"
	loggerConfig "github.com/deppfellow/shoeclean/internal/logger"
	"github.com/deppfellow/shoeclean/internal/model"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// DatabasePingTimeout bounds a health-check ping, in seconds.
const DatabasePingTimeout = 5

// Database wraps the PostgREST client and a logger.
type Database struct {
	Client *postgrest.Client
	log    *zerolog.Logger
}

// New builds the shared database handle.
//
// No request is sent here: a bad URL or key surfaces on the first query
// (or the /status check), not at startup.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerConfig.LoggerService) (*Database, error) {
	var transport http.RoundTripper = http.DefaultTransport

	// Each PostgREST call becomes an external segment on the request's
	// transaction.
	if loggerService.GetApplication() != nil {
		transport = newrelic.NewRoundTripper(transport)
	}

	transport = &loggingTransport{
		next:          transport,
		log:           logger,
		slowThreshold: cfg.Observability.Logging.SlowQueryThreshold,
	}

	client, err := postgrest.New(postgrest.Config{
		URL:    cfg.Supabase.URL,
		APIKey: cfg.Supabase.Key,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   cfg.Supabase.Timeout,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}

	logger.Info().Str("url", cfg.Supabase.URL).Msg("database client configured")

	return &Database{
		Client: client,
		log:    logger,
	}, nil
}

// Ping checks that the database answers a trivial query on the items table.
func (db *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DatabasePingTimeout*time.Second)
	defer cancel()

	if _, err := db.Client.From(model.ItemsTable).Select("id").Limit(1).Execute(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

// Close releases idle keep-alive connections.
func (db *Database) Close() error {
	db.log.Info().Msg("closing database client")
	db.Client.HTTPClient().CloseIdleConnections()
	return nil
}

// loggingTransport logs every PostgREST round trip at debug level and
// warns when one takes longer than slowThreshold.
type loggingTransport struct {
	next          http.RoundTripper
	log           *zerolog.Logger
	slowThreshold time.Duration
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start)

	var event *zerolog.Event
	switch {
	case err != nil:
		event = t.log.Error().Err(err)
	case t.slowThreshold > 0 && elapsed > t.slowThreshold:
		event = t.log.Warn().Bool("slow", true)
	default:
		event = t.log.Debug()
	}

	event = event.
		Str("component", "database").
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("query", req.URL.RawQuery).
		Dur("duration", elapsed)
	if resp != nil {
		event = event.Int("status", resp.StatusCode)
	}
	event.Msg("postgrest request")

	return resp, err
}

// CloseIdleConnections lets http.Client.CloseIdleConnections reach the
// wrapped transport.
func (t *loggingTransport) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if c, ok := t.next.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}
