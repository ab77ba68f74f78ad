package commands

import (
	"errors"

	"tableside/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrSessionIDIsRequired  = errors.New("session id is required")
	ErrMenuItemIDIsRequired = errors.New("menu item id is required")
	ErrQuantityIsInvalid    = errors.New("quantity must be greater than 0")
)

// AddCartItemCommand represents a request to add a menu item to an open
// cart session. The item is looked up in the menu catalog by its ID so the
// price on the cart line always comes from the catalog, never the client.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	sessionID  uuid.UUID
	menuItemID string
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to a cart.
// Validates that the session ID is set, the menu item ID is not empty and
// the quantity is positive.
func NewAddCartItemCommand(sessionID uuid.UUID, menuItemID string, quantity int) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// SessionID returns the cart session the item is added to.
func (c AddCartItemCommand) SessionID() uuid.UUID {
	return c.sessionID
}

// MenuItemID returns the catalog identifier of the item.
func (c AddCartItemCommand) MenuItemID() string {
	return c.menuItemID
}

// Quantity returns how many units of the item to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setSessionID(sessionID uuid.UUID) error {
	if sessionID == uuid.Nil {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *AddCartItemCommand) setMenuItemID(menuItemID string) error {
	if menuItemID == "" {
		return ErrMenuItemIDIsRequired
	}

	c.menuItemID = menuItemID
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
