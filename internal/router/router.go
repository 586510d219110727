// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"net/http"

	"github.com/deppfellow/shoeclean/internal/handler"
	"github.com/deppfellow/shoeclean/internal/middleware"
	"github.com/deppfellow/shoeclean/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with the global middleware chain and
// every route registered.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, h)
	registerItemRoutes(router, h)

	return router
}

func registerItemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Root.Welcome)

	items := r.Group("/items")
	items.GET("", handler.Handle(h.Items.ListItems, http.StatusOK))
	items.POST("", handler.Handle(h.Items.CreateItem, http.StatusCreated))
	items.GET("/:id", handler.Handle(h.Items.GetItem, http.StatusOK))
	items.PUT("/:id", handler.Handle(h.Items.UpdateItem, http.StatusOK))
	items.DELETE("/:id", handler.Handle(h.Items.DeleteItem, http.StatusOK))
}
