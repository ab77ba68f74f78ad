package commands

import (
	"errors"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/guard"
)

var (
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
	ErrOrderIDIsRequired = errors.New("order id is required")
)

// AdvanceOrderCommand requests moving an order to its next lifecycle
// status on behalf of the actor identified by the token. Which actor may
// request which step is decided by the domain, not here.
//
// Example:
//
//	cmd, err := NewAdvanceOrderCommand("65fa...", order.Ready, token)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewAdvanceOrderCommandHandler(controller)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrUnauthorized) {
//	    // the actor's role may not perform this step
//	}
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	next       order.Status
	actorToken string

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
// Validates that the order ID is set and the requested status is a known
// lifecycle status. The token is carried as-is; unknown or empty tokens
// resolve to the Customer role, which may perform no transition.
func NewAdvanceOrderCommand(orderID string, next order.Status, actorToken string) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setNext(next),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	cmd.actorToken = actorToken
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being advanced.
func (c AdvanceOrderCommand) OrderID() string {
	return c.orderID
}

// Next returns the requested target status.
func (c AdvanceOrderCommand) Next() order.Status {
	return c.next
}

// ActorToken returns the raw role token of the actor.
func (c AdvanceOrderCommand) ActorToken() string {
	return c.actorToken
}

func (c *AdvanceOrderCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return ErrOrderIDIsRequired
	}

	c.orderID = orderID
	return nil
}

func (c *AdvanceOrderCommand) setNext(next order.Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	c.next = next
	return nil
}
