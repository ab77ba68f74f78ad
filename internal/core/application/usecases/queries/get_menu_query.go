package queries

import (
	"errors"

	"tableside/internal/pkg/guard"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the menu catalog customers order from.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for the full menu catalog.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuItemResponse is one orderable catalog entry.
type MenuItemResponse struct {
	ID       string `json:"id"`
	ItemName string `json:"itemName"`
	Category string `json:"category"`
	Price    int    `json:"price"`
}
