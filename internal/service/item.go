package service

import (
	"context"

	"github.com/deppfellow/shoeclean/internal/errs"
	"github.com/deppfellow/shoeclean/internal/model"
	"github.com/deppfellow/shoeclean/internal/repository"
	"github.com/deppfellow/shoeclean/internal/server"
	"github.com/deppfellow/shoeclean/internal/sqlerr"
	"github.com/rs/zerolog"
)

// ItemService implements the item operations. It holds no state of its
// own; every call is one repository call.
type ItemService struct {
	server *server.Server
	items  repository.ItemRepository
}

func NewItemService(s *server.Server, items repository.ItemRepository) *ItemService {
	return &ItemService{
		server: s,
		items:  items,
	}
}

// List returns every item, filtered by exact status when status is set.
func (s *ItemService) List(ctx context.Context, status string) ([]model.Item, error) {
	items, err := s.items.List(ctx, status)
	if err != nil {
		s.logDatabaseError(ctx, err).Str("status", status).Msg("Error fetching items")
		return nil, sqlerr.HandleError(err, MsgFetchFailed, MsgNotFound)
	}
	return items, nil
}

// Get returns the item with id or a 404.
func (s *ItemService) Get(ctx context.Context, id int64) (*model.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		if !sqlerr.IsNoRows(err) {
			s.logDatabaseError(ctx, err).Int64("id", id).Msg("Error fetching item")
		}
		return nil, sqlerr.HandleError(err, MsgFetchFailed, MsgNotFound)
	}
	return item, nil
}

// Create stores a new item. An empty completion date is stored as null.
func (s *ItemService) Create(ctx context.Context, item model.NewItem) (*model.Item, error) {
	if item.TanggalSelesai != nil && *item.TanggalSelesai == "" {
		item.TanggalSelesai = nil
	}

	created, err := s.items.Create(ctx, item)
	if err != nil {
		s.logDatabaseError(ctx, err).Msg("Error adding item")
		return nil, sqlerr.HandleError(err, MsgCreateFailed, MsgNotFound)
	}
	return created, nil
}

// Update applies patch to the item with id.
//
// An empty patch is rejected before the database is queried. When the
// filter matches nothing the result is a 404.
func (s *ItemService) Update(ctx context.Context, id int64, patch model.ItemPatch) (*model.Item, error) {
	if patch.IsEmpty() {
		return nil, errs.NewBadRequestError(MsgNothingToUpdate, nil, nil)
	}

	rows, err := s.items.Update(ctx, id, patch)
	if err != nil {
		s.logDatabaseError(ctx, err).Int64("id", id).Msg("Error updating item")
		return nil, sqlerr.HandleError(err, MsgUpdateFailed, MsgNotFound)
	}
	if len(rows) == 0 {
		return nil, errs.NewNotFoundError(MsgNotFound, nil)
	}
	return &rows[0], nil
}

// Delete removes the item with id, or returns a 404 when nothing was
// deleted.
func (s *ItemService) Delete(ctx context.Context, id int64) error {
	count, err := s.items.Delete(ctx, id)
	if err != nil {
		s.logDatabaseError(ctx, err).Int64("id", id).Msg("Error deleting item")
		return sqlerr.HandleError(err, MsgDeleteFailed, MsgNotFound)
	}
	if count == 0 {
		return errs.NewNotFoundError(MsgNotFound, nil)
	}
	return nil
}

// logDatabaseError starts an error event for a failed repository call,
// tagged with the database error category and raw code.
func (s *ItemService) logDatabaseError(ctx context.Context, err error) *zerolog.Event {
	event := s.logger(ctx).Error().Err(err).Str("error_category", string(sqlerr.ErrCode(err)))
	if code := sqlerr.DatabaseCode(err); code != "" {
		event = event.Str("db_code", code)
	}
	return event
}

// logger prefers the request-scoped logger stored on ctx by the context
// enhancer middleware.
func (s *ItemService) logger(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	if s.server != nil && s.server.Logger != nil {
		return s.server.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
