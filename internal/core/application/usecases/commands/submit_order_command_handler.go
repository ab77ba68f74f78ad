package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler places orders from cart sessions.
// The cart is cleared only after the order store acknowledges the create,
// so a failed submission leaves the cart intact for retry.
type SubmitOrderCommandHandler struct {
	sessions  SessionRegistry
	submitter OrderSubmitter
	now       func() time.Time
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(sessions SessionRegistry, submitter OrderSubmitter) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		sessions:  sessions,
		submitter: submitter,
		now:       time.Now,
	}
}

// Handle submits the addressed cart and returns the persisted order.
// A successful submission retires the session from the registry; a failed
// one keeps it so the customer can retry.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	session, err := h.sessions.Session(cmd.SessionID())
	if err != nil {
		return nil, err
	}

	placed, err := h.submitter.Submit(ctx, session, h.now())
	if err != nil {
		return nil, err
	}

	h.sessions.Remove(cmd.SessionID())
	return placed, nil
}
