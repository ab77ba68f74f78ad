// Package menu holds the client view of the catalog collaborator's menu.
// Items are read-only here; the catalog service owns them. Carts copy an
// item's fields into a line item snapshot at order time instead of holding a
// live reference.
package menu

import (
	"errors"
	"fmt"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem constructor.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a single menu entry: identifier, category, display name and unit
// price as the catalog collaborator reports them.
type Item struct {
	id       string
	itemName string
	category string
	price    int

	guard guard.ConstructorGuard
}

// NewItem creates a menu item. The name is required and the price must be
// positive.
func NewItem(id, itemName, category string, price int) (Item, error) {
	if itemName == "" {
		return Item{}, errs.NewValueIsRequiredError("itemName")
	}
	if price <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is not greater than 0", price))
	}

	return Item{
		id:       id,
		itemName: itemName,
		category: category,
		price:    price,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ID returns the catalog identifier.
func (i Item) ID() string {
	return i.id
}

// ItemName returns the display name.
func (i Item) ItemName() string {
	return i.itemName
}

// Category returns the menu category.
func (i Item) Category() string {
	return i.category
}

// Price returns the unit price.
func (i Item) Price() int {
	return i.price
}
