package order

import (
	"errors"
	"fmt"
	"time"

	"tableside/internal/core/domain/model/role"
	"tableside/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrUnauthorized is returned when the acting role is not the one
	// authorized for the requested transition.
	ErrUnauthorized = errors.New("role is not authorized for this transition")

	// ErrIllegalTransition is returned when the requested status is not the
	// unique successor of the order's current status.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Order represents a persisted customer request: line items, customer
// identity, table, lifecycle status and a derived total.
//
// Order follows these invariants:
//   - Total price is always derived from the line items, never stored
//   - Status only ever progresses forward along Ordered → Ready → Delivered → Paid
//   - Each transition is performed by exactly one authorized role
//   - The identifier is assigned by the remote store; it is empty before persistence
//   - Can only be created through NewOrder or RestoreOrder
//
// The remote store owns the order; instances held here are cached copies.
// Advance therefore never mutates in place: it returns an updated copy and the
// caller owns replacing its cache entry once the store has acknowledged.
type Order struct {
	// id is the store-assigned identifier, empty until persisted
	id string

	// customerName and mobile identify who placed the order
	customerName string
	mobile       string

	// table is the table the order was placed from
	table int

	// orderedAt is the submission time
	orderedAt time.Time

	// status is the current state in the order lifecycle
	status Status

	// items are the snapshotted line items
	items []LineItem

	// version is the store's concurrency token, sent back on updates
	version int

	// isConstructed ensures the order came from a constructor
	isConstructed bool
}

// NewOrder creates a draft order from a submitted cart.
// The status is initialized to Ordered and the identifier is left empty for
// the remote store to assign. The customer name, mobile and at least one line
// item are required.
func NewOrder(customerName, mobile string, table int, items []LineItem, orderedAt time.Time) (*Order, error) {
	if customerName == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}
	if mobile == "" {
		return nil, errs.NewValueIsRequiredError("mobile")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		customerName:  customerName,
		mobile:        mobile,
		table:         table,
		orderedAt:     orderedAt,
		status:        Ordered,
		items:         append([]LineItem(nil), items...),
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from the remote store's payload.
// The status must be a valid lifecycle state and the identifier must be
// present; everything else is taken as the store reported it. Any totalPrice
// the payload carried is deliberately not accepted here: totals are always
// re-derived from the line items.
func RestoreOrder(
	id string,
	customerName, mobile string,
	table int,
	orderedAt time.Time,
	status Status,
	items []LineItem,
	version int,
) (*Order, error) {
	if id == "" {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		customerName:  customerName,
		mobile:        mobile,
		table:         table,
		orderedAt:     orderedAt,
		status:        status,
		items:         append([]LineItem(nil), items...),
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their store-assigned identifiers.
// Unpersisted orders (empty identifier) are never equal to anything.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id != "" && o.id == other.id
}

// ID returns the store-assigned identifier, empty before persistence.
func (o *Order) ID() string {
	return o.id
}

// CustomerName returns the name of the customer who placed the order.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Mobile returns the customer's mobile number.
func (o *Order) Mobile() string {
	return o.mobile
}

// Table returns the table number the order was placed from.
func (o *Order) Table() int {
	return o.table
}

// OrderedAt returns the submission time.
func (o *Order) OrderedAt() time.Time {
	return o.orderedAt
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the store's concurrency token.
func (o *Order) Version() int {
	return o.version
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// TotalPrice returns the sum of price times quantity over all line items.
// The total is re-derived on every call; it is never cached and never taken
// from the wire.
func (o *Order) TotalPrice() int {
	total := 0
	for _, item := range o.items {
		total += item.Subtotal()
	}
	return total
}

// Advance returns a copy of the order moved to the requested status.
//
// The transition is checked against the state machine first and the acting
// role second:
//   - ErrIllegalTransition if requested is not the unique successor of the
//     current status (the lifecycle is strictly forward, one step at a time)
//   - ErrUnauthorized if acting is not the role gated to that transition
//
// The receiver is left untouched. Callers persist the returned copy and only
// then replace their cached one.
func (o *Order) Advance(requested Status, acting role.Role) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	next, err := o.status.Next()
	if err != nil {
		return nil, err
	}
	if requested != next {
		return nil, fmt.Errorf("%w: %s cannot move to %s", ErrIllegalTransition, o.status, requested)
	}

	authorized, ok := AuthorizedRole(o.status, requested)
	if !ok || authorized != acting {
		return nil, fmt.Errorf("%w: %s may not move %s to %s", ErrUnauthorized, acting, o.status, requested)
	}

	updated := *o
	updated.status = requested
	updated.items = append([]LineItem(nil), o.items...)
	return &updated, nil
}
