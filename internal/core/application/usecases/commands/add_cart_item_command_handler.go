package commands

import (
	"context"

	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"
)

// AddCartItemCommandHandler adds catalog items to open cart sessions.
// The menu catalog is consulted on every add so a stale client cannot put
// a withdrawn or repriced item into a cart.
type AddCartItemCommandHandler struct {
	sessions SessionProvider
	menu     ports.MenuStore
}

// NewAddCartItemCommandHandler creates a handler for cart item additions.
func NewAddCartItemCommandHandler(sessions SessionProvider, menu ports.MenuStore) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		sessions: sessions,
		menu:     menu,
	}
}

// Handle looks up the menu item and adds it to the session.
// Returns errs.ErrObjectNotFound when either the session or the menu item
// does not exist.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	session, err := h.sessions.Session(cmd.SessionID())
	if err != nil {
		return err
	}

	items, err := h.menu.FetchAll(ctx)
	if err != nil {
		return err
	}

	for _, item := range items {
		if item.ID() == cmd.MenuItemID() {
			return session.AddItem(item, cmd.Quantity())
		}
	}

	return errs.NewObjectNotFoundError("menuItemId", cmd.MenuItemID())
}
