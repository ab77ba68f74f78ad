package queries

import (
	"errors"
	"time"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/guard"
)

var (
	ErrGetRoleQueueQueryIsNotConstructed = errors.New(
		"GetRoleQueueQuery must be created via NewGetRoleQueueQuery constructor",
	)

	// ErrActorIsNotStaff is returned when a token that resolves to the
	// Customer role asks for a work queue.
	ErrActorIsNotStaff = errors.New("actor is not a staff member")
)

// GetRoleQueueQuery retrieves the work queue of the actor identified by
// the token: Ordered for chefs, Ready for waiters, Delivered for admins.
type GetRoleQueueQuery struct {
	actorToken string

	guard guard.ConstructorGuard
}

// NewGetRoleQueueQuery creates a query for the actor's work queue.
// An empty or unknown token is accepted here; it resolves to Customer and
// the handler rejects it.
func NewGetRoleQueueQuery(actorToken string) GetRoleQueueQuery {
	return GetRoleQueueQuery{
		actorToken: actorToken,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetRoleQueueQuery) Validate() error {
	return q.guard.Validate(ErrGetRoleQueueQueryIsNotConstructed)
}

// ActorToken returns the raw role token of the actor.
func (q GetRoleQueueQuery) ActorToken() string {
	return q.actorToken
}

// LineItemResponse is one line of an order as served to clients.
type LineItemResponse struct {
	ItemName string `json:"itemName"`
	Category string `json:"category"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// OrderResponse is a full order projection. TotalPrice is always derived
// from the lines, never echoed from the store.
type OrderResponse struct {
	ID           string             `json:"id"`
	CustomerName string             `json:"name"`
	Mobile       string             `json:"mobile"`
	Table        int                `json:"table"`
	Status       string             `json:"status"`
	TotalPrice   int                `json:"totalPrice"`
	OrderedAt    time.Time          `json:"orderedAt"`
	Items        []LineItemResponse `json:"items"`
	Version      int                `json:"version"`
}

// NewOrderResponse projects an order into its client-facing shape.
func NewOrderResponse(o *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items()))
	for _, li := range o.Items() {
		items = append(items, LineItemResponse{
			ItemName: li.ItemName(),
			Category: li.Category(),
			Price:    li.Price(),
			Quantity: li.Quantity(),
		})
	}

	return OrderResponse{
		ID:           o.ID(),
		CustomerName: o.CustomerName(),
		Mobile:       o.Mobile(),
		Table:        o.Table(),
		Status:       o.Status().String(),
		TotalPrice:   o.TotalPrice(),
		OrderedAt:    o.OrderedAt(),
		Items:        items,
		Version:      o.Version(),
	}
}
