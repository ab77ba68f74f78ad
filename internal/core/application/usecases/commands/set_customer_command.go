package commands

import (
	"errors"

	"tableside/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrSetCustomerCommandIsNotConstructed = errors.New(
		"SetCustomerCommand must be created via NewSetCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrMobileIsRequired       = errors.New("mobile number is required")
	ErrTableIsInvalid         = errors.New("table number must be greater than 0")
)

// SetCustomerCommand records who the cart belongs to and where they sit.
// The order cannot be submitted until this information is present.
type SetCustomerCommand struct { //nolint:recvcheck //using for validation
	sessionID    uuid.UUID
	customerName string
	mobile       string
	table        int

	guard guard.ConstructorGuard
}

// NewSetCustomerCommand creates a command to attach customer details to a cart.
func NewSetCustomerCommand(sessionID uuid.UUID, customerName, mobile string, table int) (SetCustomerCommand, error) {
	cmd := SetCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setCustomerName(customerName),
		cmd.setMobile(mobile),
		cmd.setTable(table),
	); err != nil {
		return SetCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetCustomerCommand) Validate() error {
	return c.guard.Validate(ErrSetCustomerCommandIsNotConstructed)
}

// SessionID returns the cart session receiving the details.
func (c SetCustomerCommand) SessionID() uuid.UUID {
	return c.sessionID
}

// CustomerName returns the name the order is placed under.
func (c SetCustomerCommand) CustomerName() string {
	return c.customerName
}

// Mobile returns the customer's contact number.
func (c SetCustomerCommand) Mobile() string {
	return c.mobile
}

// Table returns the table the customer sits at.
func (c SetCustomerCommand) Table() int {
	return c.table
}

func (c *SetCustomerCommand) setSessionID(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *SetCustomerCommand) setCustomerName(customerName string) error {
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerName = customerName
	return nil
}

func (c *SetCustomerCommand) setMobile(mobile string) error {
	if mobile == "" {
		return ErrMobileIsRequired
	}

	c.mobile = mobile
	return nil
}

func (c *SetCustomerCommand) setTable(table int) error {
	if table <= 0 {
		return ErrTableIsInvalid
	}

	c.table = table
	return nil
}
