package queries

import (
	"context"

	"tableside/internal/core/domain/model/role"
)

// GetRoleQueueQueryHandler projects the order cache into per-role queues.
type GetRoleQueueQueryHandler struct {
	orders OrderReader
}

// NewGetRoleQueueQueryHandler creates a handler for work queue queries.
func NewGetRoleQueueQueryHandler(orders OrderReader) GetRoleQueueQueryHandler {
	return GetRoleQueueQueryHandler{orders: orders}
}

// Handle resolves the actor's role and returns its queue.
// Returns ErrActorIsNotStaff for tokens that resolve to Customer.
func (h GetRoleQueueQueryHandler) Handle(_ context.Context, query GetRoleQueueQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	acting := role.Resolve(query.ActorToken())
	if !acting.IsStaff() {
		return nil, ErrActorIsNotStaff
	}

	queue := h.orders.QueueFor(acting)

	responses := make([]OrderResponse, 0, len(queue))
	for _, o := range queue {
		responses = append(responses, NewOrderResponse(o))
	}

	return responses, nil
}
