package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/deppfellow/shoeclean/internal/handler"
	"github.com/deppfellow/shoeclean/internal/repository"
	"github.com/deppfellow/shoeclean/internal/router"
	"github.com/deppfellow/shoeclean/internal/server"
	"github.com/deppfellow/shoeclean/internal/service"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP server on PORT (default 3000). SIGINT or SIGTERM
triggers a graceful shutdown that waits for in-flight requests.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, loggerService, log := bootstrap()

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize server")
		return err
	}

	repos := repository.NewRepositories(srv)

	services, err := service.NewService(srv, repos)
	if err != nil {
		log.Error().Err(err).Msg("could not create services")
		return err
	}

	handlers := handler.NewHandlers(srv, services)
	srv.SetupHTTPServer(router.NewRouter(srv, handlers))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
			return err
		}
		return nil
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			log.Error().Err(err).Msg("server forced to shut down")
		} else {
			log.Error().Err(err).Msg("server shutdown failed")
		}
		return err
	}

	if err := <-serverErr; err != nil {
		return err
	}

	log.Info().Msg("server exited properly")
	return nil
}
