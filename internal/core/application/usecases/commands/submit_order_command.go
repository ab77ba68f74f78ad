package commands

import (
	"errors"

	"tableside/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand turns an open cart session into a persisted order.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(sessionID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewSubmitOrderCommandHandler(registry, controller)
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed for table %d", placed.ID(), placed.Table())
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID uuid.UUID

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit the addressed cart.
func NewSubmitOrderCommand(sessionID uuid.UUID) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// SessionID returns the cart session being submitted.
func (c SubmitOrderCommand) SessionID() uuid.UUID {
	return c.sessionID
}

func (c *SubmitOrderCommand) setSessionID(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
