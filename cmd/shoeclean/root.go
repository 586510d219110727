package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/shoeclean/internal/config"
	"github.com/deppfellow/shoeclean/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "shoeclean",
	Short: "Shoe-cleaning orders REST API",
	Long: `shoeclean serves the items API over a Supabase (PostgREST) table.

Configuration comes from the environment (and a .env file when present);
SUPABASE_URL and SUPABASE_KEY are required. Without a subcommand the HTTP
server is started.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// bootstrap loads config and builds the logger. A config error is logged
// on stderr and ends the process with status 1.
func bootstrap() (*config.Config, *logger.LoggerService, zerolog.Logger) {
	cfg, err := config.LoadConfig()
	if err != nil {
		fallback := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		fallback.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}

	loggerService, err := logger.NewLoggerService(&cfg.Observability)
	log := logger.NewLogger(&cfg.Observability, loggerService)
	if err != nil {
		log.Warn().Err(err).Msg("continuing without New Relic")
	}

	return cfg, loggerService, log
}

func init() {
	rootCmd.Version = fmt.Sprintf("%s (%s)", version, config.ServiceName)
}
