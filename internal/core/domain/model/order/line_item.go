package order

import (
	"errors"
	"fmt"

	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"
)

var (
	// ErrInvalidQuantity is returned when a line item quantity would drop
	// below 1. Items are never auto-removed by a quantity decrement.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through NewLineItem.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
)

// LineItem is a menu item snapshot with a quantity, copied at order time.
// The name, category and price are frozen copies; later menu edits never
// change an existing order or cart line.
type LineItem struct {
	itemName string
	category string
	price    int
	quantity int

	guard guard.ConstructorGuard
}

// NewLineItem creates a line item snapshot.
// The item name is required, the price must not be negative, and the quantity
// must be at least 1.
func NewLineItem(itemName, category string, price, quantity int) (LineItem, error) {
	if itemName == "" {
		return LineItem{}, errs.NewValueIsRequiredError("itemName")
	}
	if price < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	if quantity < 1 {
		return LineItem{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	return LineItem{
		itemName: itemName,
		category: category,
		price:    price,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the line item was created through NewLineItem.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// ItemName returns the snapshotted menu item name.
func (li LineItem) ItemName() string {
	return li.itemName
}

// Category returns the snapshotted menu category.
func (li LineItem) Category() string {
	return li.category
}

// Price returns the snapshotted unit price.
func (li LineItem) Price() int {
	return li.price
}

// Quantity returns the ordered quantity.
func (li LineItem) Quantity() int {
	return li.quantity
}

// Subtotal returns price times quantity.
func (li LineItem) Subtotal() int {
	return li.price * li.quantity
}

// WithQuantity returns a copy of the line item with the given quantity.
// Returns ErrInvalidQuantity if the quantity is below 1.
func (li LineItem) WithQuantity(quantity int) (LineItem, error) {
	if err := li.Validate(); err != nil {
		return LineItem{}, err
	}
	if quantity < 1 {
		return LineItem{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}

	updated := li
	updated.quantity = quantity
	return updated, nil
}
