package handler

import (
	"net/http"

	"github.com/deppfellow/shoeclean/internal/server"
	"github.com/deppfellow/shoeclean/internal/service"
	"github.com/labstack/echo/v4"
)

// RootHandler answers GET /.
type RootHandler struct {
	Handler
}

func NewRootHandler(s *server.Server) *RootHandler {
	return &RootHandler{Handler: NewHandler(s)}
}

func (h *RootHandler) Welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: service.MsgWelcome})
}
