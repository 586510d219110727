package handler

import (
	"strconv"

	"github.com/deppfellow/shoeclean/internal/errs"
	"github.com/deppfellow/shoeclean/internal/model"
	"github.com/deppfellow/shoeclean/internal/service"
	"github.com/deppfellow/shoeclean/internal/validation"
	"github.com/oapi-codegen/nullable"
)

// ListItemsRequest is GET /items.
type ListItemsRequest struct {
	Status string `query:"status"`
}

func (r *ListItemsRequest) Validate() error { return nil }

// ItemIDRequest is any route addressed by /items/:id without a body.
type ItemIDRequest struct {
	ID string `param:"id"`
}

func (r *ItemIDRequest) Validate() error { return nil }

// CreateItemRequest is the POST /items body.
type CreateItemRequest struct {
	Nama           string  `json:"nama" validate:"required"`
	Status         string  `json:"status" validate:"required"`
	TanggalMasuk   string  `json:"tanggalMasuk" validate:"required"`
	TanggalSelesai *string `json:"tanggalSelesai"`
}

func (r *CreateItemRequest) Validate() error {
	return validation.Struct(r)
}

func (r *CreateItemRequest) ValidationMessage() string {
	return service.MsgIncomplete
}

func (r *CreateItemRequest) toModel() model.NewItem {
	return model.NewItem{
		Nama:           r.Nama,
		Status:         r.Status,
		TanggalMasuk:   r.TanggalMasuk,
		TanggalSelesai: r.TanggalSelesai,
	}
}

// UpdateItemRequest is PUT /items/:id. Every body field is optional.
type UpdateItemRequest struct {
	ID string `param:"id" json:"-"`

	Nama           string               `json:"nama"`
	Status         string               `json:"status"`
	TanggalMasuk   string               `json:"tanggalMasuk"`
	TanggalSelesai nullable.Nullable[string] `json:"tanggalSelesai"`
}

func (r *UpdateItemRequest) Validate() error { return nil }

// Patch derives the update set: text fields only when non-empty, the
// completion date whenever its key was sent (null included).
func (r *UpdateItemRequest) Patch() model.ItemPatch {
	var patch model.ItemPatch
	if r.Nama != "" {
		patch.Nama = &r.Nama
	}
	if r.Status != "" {
		patch.Status = &r.Status
	}
	if r.TanggalMasuk != "" {
		patch.TanggalMasuk = &r.TanggalMasuk
	}
	patch.TanggalSelesai = r.TanggalSelesai
	return patch
}

// parseItemID turns a path id into a row id. Anything that is not a
// base-10 integer cannot match a row, so it is a 404 straight away.
func parseItemID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewNotFoundError(service.MsgNotFound, nil)
	}
	return id, nil
}
