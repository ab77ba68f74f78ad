package queries

import (
	"context"

	"tableside/internal/core/application/ordersync"
	"tableside/internal/core/domain/model/role"
)

// GetOrderHistoryQueryHandler serves the admin order history view.
type GetOrderHistoryQueryHandler struct {
	orders OrderReader
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
func NewGetOrderHistoryQueryHandler(orders OrderReader) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{orders: orders}
}

// Handle returns orders matching the query's filters.
// Returns ErrActorIsNotAdmin unless the token resolves to Admin.
func (h GetOrderHistoryQueryHandler) Handle(_ context.Context, query GetOrderHistoryQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if role.Resolve(query.ActorToken()) != role.Admin {
		return nil, ErrActorIsNotAdmin
	}

	matched := h.orders.History(ordersync.HistoryFilter{
		Table:  query.Table(),
		Status: query.Status(),
		Day:    query.Day(),
	})

	responses := make([]OrderResponse, 0, len(matched))
	for _, o := range matched {
		responses = append(responses, NewOrderResponse(o))
	}

	return responses, nil
}
