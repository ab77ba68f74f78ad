package commands

import (
	"context"
)

// SetCustomerCommandHandler attaches customer details to cart sessions.
type SetCustomerCommandHandler struct {
	sessions SessionProvider
}

// NewSetCustomerCommandHandler creates a handler for customer detail updates.
func NewSetCustomerCommandHandler(sessions SessionProvider) SetCustomerCommandHandler {
	return SetCustomerCommandHandler{
		sessions: sessions,
	}
}

// Handle stores the customer details on the addressed session.
func (h SetCustomerCommandHandler) Handle(_ context.Context, cmd SetCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Session(cmd.SessionID())
	if err != nil {
		return err
	}

	return session.SetCustomer(cmd.CustomerName(), cmd.Mobile(), cmd.Table())
}
