package handler

import (
	"github.com/deppfellow/shoeclean/internal/errs"
	"github.com/deppfellow/shoeclean/internal/model"
	"github.com/deppfellow/shoeclean/internal/server"
	"github.com/deppfellow/shoeclean/internal/service"
	"github.com/labstack/echo/v4"
)

// MessageResponse is the body of every mutation.
type MessageResponse struct {
	Message string      `json:"message"`
	Data    *model.Item `json:"data,omitempty"`
}

// ItemList is the GET /items body. It always encodes as an array.
type ItemList []model.Item

func (l ItemList) Len() int { return len(l) }

// ItemHandler serves the /items routes.
type ItemHandler struct {
	Handler
	itemService *service.ItemService
}

func NewItemHandler(s *server.Server, itemService *service.ItemService) *ItemHandler {
	return &ItemHandler{
		Handler:     NewHandler(s),
		itemService: itemService,
	}
}

func (h *ItemHandler) ListItems(c echo.Context, req *ListItemsRequest) (ItemList, error) {
	items, err := h.itemService.List(c.Request().Context(), req.Status)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Item{}
	}
	return ItemList(items), nil
}

func (h *ItemHandler) GetItem(c echo.Context, req *ItemIDRequest) (*model.Item, error) {
	id, err := parseItemID(req.ID)
	if err != nil {
		return nil, err
	}
	return h.itemService.Get(c.Request().Context(), id)
}

func (h *ItemHandler) CreateItem(c echo.Context, req *CreateItemRequest) (*MessageResponse, error) {
	item, err := h.itemService.Create(c.Request().Context(), req.toModel())
	if err != nil {
		return nil, err
	}
	return &MessageResponse{Message: service.MsgCreated, Data: item}, nil
}

// UpdateItem rejects an empty patch before looking at the id.
func (h *ItemHandler) UpdateItem(c echo.Context, req *UpdateItemRequest) (*MessageResponse, error) {
	patch := req.Patch()
	if patch.IsEmpty() {
		return nil, errs.NewBadRequestError(service.MsgNothingToUpdate, nil, nil)
	}

	id, err := parseItemID(req.ID)
	if err != nil {
		return nil, err
	}

	item, err := h.itemService.Update(c.Request().Context(), id, patch)
	if err != nil {
		return nil, err
	}
	return &MessageResponse{Message: service.MsgUpdated, Data: item}, nil
}

func (h *ItemHandler) DeleteItem(c echo.Context, req *ItemIDRequest) (*MessageResponse, error) {
	id, err := parseItemID(req.ID)
	if err != nil {
		return nil, err
	}

	if err := h.itemService.Delete(c.Request().Context(), id); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: service.MsgDeleted}, nil
}
