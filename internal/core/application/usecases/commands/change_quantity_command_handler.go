package commands

import (
	"context"
)

// ChangeQuantityCommandHandler applies quantity adjustments to cart lines.
type ChangeQuantityCommandHandler struct {
	sessions SessionProvider
}

// NewChangeQuantityCommandHandler creates a handler for quantity changes.
func NewChangeQuantityCommandHandler(sessions SessionProvider) ChangeQuantityCommandHandler {
	return ChangeQuantityCommandHandler{
		sessions: sessions,
	}
}

// Handle adjusts the addressed cart line by the command's delta.
func (h ChangeQuantityCommandHandler) Handle(_ context.Context, cmd ChangeQuantityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Session(cmd.SessionID())
	if err != nil {
		return err
	}

	return session.ChangeQuantity(cmd.LineIndex(), cmd.Delta())
}
