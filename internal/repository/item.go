package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/deppfellow/shoeclean/internal/lib/postgrest"
	"github.com/deppfellow/shoeclean/internal/model"
)

// ErrNoRowsReturned is returned when an insert succeeds but the database
// sends no representation back.
var ErrNoRowsReturned = errors.New("insert returned no rows")

// ItemRepository is the data access contract for items. Every method
// issues exactly one database call.
type ItemRepository interface {
	// List returns all items ordered by id, filtered by exact status when
	// status is non-empty.
	List(ctx context.Context, status string) ([]model.Item, error)

	// GetByID returns the item with id. Zero matches surface as a
	// PostgREST PGRST116 error.
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// Create inserts one item and returns the stored row.
	Create(ctx context.Context, item model.NewItem) (*model.Item, error)

	// Update applies patch to the item with id and returns the updated
	// rows, empty when nothing matched.
	Update(ctx context.Context, id int64, patch model.ItemPatch) ([]model.Item, error)

	// Delete removes the item with id and returns how many rows went.
	Delete(ctx context.Context, id int64) (int64, error)
}

type itemRepository struct {
	client *postgrest.Client
}

// NewItemRepository returns an ItemRepository backed by client.
func NewItemRepository(client *postgrest.Client) ItemRepository {
	return &itemRepository{client: client}
}

func (r *itemRepository) List(ctx context.Context, status string) ([]model.Item, error) {
	query := r.client.From(model.ItemsTable).Select("*")
	if status != "" {
		query = query.Eq("status", status)
	}

	resp, err := query.Order("id", true).Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	items := []model.Item{}
	if err := resp.JSON(&items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	return items, nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	resp, err := r.client.From(model.ItemsTable).
		Select("*").
		Eq("id", id).
		Single().
		Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("get item %d: %w", id, err)
	}

	var item model.Item
	if err := resp.JSON(&item); err != nil {
		return nil, fmt.Errorf("decode item: %w", err)
	}
	return &item, nil
}

func (r *itemRepository) Create(ctx context.Context, item model.NewItem) (*model.Item, error) {
	resp, err := r.client.From(model.ItemsTable).
		Select("*").
		ExecuteInsert(ctx, []model.NewItem{item})
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	var rows []model.Item
	if err := resp.JSON(&rows); err != nil {
		return nil, fmt.Errorf("decode inserted item: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoRowsReturned
	}
	return &rows[0], nil
}

func (r *itemRepository) Update(ctx context.Context, id int64, patch model.ItemPatch) ([]model.Item, error) {
	resp, err := r.client.From(model.ItemsTable).
		Select("*").
		Eq("id", id).
		ExecuteUpdate(ctx, patch.Fields())
	if err != nil {
		return nil, fmt.Errorf("update item %d: %w", id, err)
	}

	rows := []model.Item{}
	if err := resp.JSON(&rows); err != nil {
		return nil, fmt.Errorf("decode updated items: %w", err)
	}
	return rows, nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64) (int64, error) {
	resp, err := r.client.From(model.ItemsTable).
		Eq("id", id).
		Count(postgrest.CountExact).
		ExecuteDelete(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete item %d: %w", id, err)
	}

	if resp.Count == nil {
		return 0, fmt.Errorf("delete item %d: no row count in response", id)
	}
	return *resp.Count, nil
}
