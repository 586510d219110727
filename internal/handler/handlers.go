package handler

import (
	"github.com/deppfellow/shoeclean/internal/server"
	"github.com/deppfellow/shoeclean/internal/service"
)

// Handlers groups all HTTP handlers for the router.
type Handlers struct {
	Root    *RootHandler
	Items   *ItemHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:    NewRootHandler(s),
		Items:   NewItemHandler(s, services.Items),
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
