// Package repository handles all interactions with the database.
//
// It issues the PostgREST queries behind each item operation and decodes
// the rows into model types, abstracting the query builder away from the
// service layer.
package repository

import (
	"github.com/deppfellow/shoeclean/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Items ItemRepository
}

// NewRepositories constructs the repository container on top of the
// server's shared database handle.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Items: NewItemRepository(s.DB.Client),
	}
}
