package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/shoeclean/internal/middleware"
	"github.com/deppfellow/shoeclean/internal/server"
	"github.com/labstack/echo/v4"
)

// Pinger is the part of the database handle the health check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves GET /status for uptime monitors and load balancers.
type HealthHandler struct {
	Handler
	db Pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}
	if s.DB != nil {
		h.db = s.DB
	}
	return h
}

// CheckHealth pings the database. 200 when it answers, 503 when not.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	dbStart := time.Now()
	err := h.ping(c.Request().Context())
	dbElapsed := time.Since(dbStart)

	if err != nil {
		checks["database"] = map[string]any{
			"status":        "unhealthy",
			"response_time": dbElapsed.String(),
			"error":         err.Error(),
		}
		response["status"] = "unhealthy"

		logger.Error().
			Err(err).
			Dur("response_time", dbElapsed).
			Msg("database health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]any{
				"check_type":       "database",
				"operation":        "health_check",
				"error_type":       "database_unhealthy",
				"response_time_ms": dbElapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
		}

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	checks["database"] = map[string]any{
		"status":        "healthy",
		"response_time": dbElapsed.String(),
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) ping(ctx context.Context) error {
	if h.db == nil {
		return fmt.Errorf("database not initialized")
	}
	return h.db.Ping(ctx)
}
