package commands

import (
	"context"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/role"
)

// AdvanceOrderCommandHandler moves orders along their lifecycle.
// The actor's token is resolved to a role here; the transition itself is
// validated and persisted by the order sync layer.
type AdvanceOrderCommandHandler struct {
	advancer OrderAdvancer
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement.
func NewAdvanceOrderCommandHandler(advancer OrderAdvancer) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		advancer: advancer,
	}
}

// Handle resolves the acting role and advances the order.
// Returns the persisted order on success. Failures surface the domain and
// store sentinels unchanged so callers can map them.
func (h AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	acting := role.Resolve(cmd.ActorToken())

	return h.advancer.Advance(ctx, cmd.OrderID(), cmd.Next(), acting)
}
