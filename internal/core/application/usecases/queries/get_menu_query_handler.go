package queries

import (
	"context"

	"tableside/internal/core/ports"
)

// GetMenuQueryHandler serves the menu catalog from the remote store.
type GetMenuQueryHandler struct {
	menu ports.MenuStore
}

// NewGetMenuQueryHandler creates a handler for menu catalog queries.
func NewGetMenuQueryHandler(menu ports.MenuStore) GetMenuQueryHandler {
	return GetMenuQueryHandler{menu: menu}
}

// Handle fetches the catalog and projects it into responses.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]MenuItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.menu.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]MenuItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, MenuItemResponse{
			ID:       item.ID(),
			ItemName: item.ItemName(),
			Category: item.Category(),
			Price:    item.Price(),
		})
	}

	return responses, nil
}
