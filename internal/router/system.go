package router

import (
	"github.com/deppfellow/shoeclean/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers endpoints outside the items API: the
// health check, the docs page and its static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", handler.StaticFiles())

	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
