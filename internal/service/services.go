package service

import (
	"github.com/deppfellow/shoeclean/internal/repository"
	"github.com/deppfellow/shoeclean/internal/server"
)

// Services groups every service for the handler layer.
type Services struct {
	Items *ItemService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Items: NewItemService(s, repos.Items),
	}, nil
}
