// Package cart holds the pre-submission draft of a customer's order: the
// session accumulating line items, customer details and a running subtotal
// for one ordering flow.
//
// A session is created empty when a customer begins ordering, mutated by
// add/quantity-change actions, and cleared on successful submission. Validation
// failures are recovered in place; they never reach the network.
package cart

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"
	"tableside/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	// ErrSessionIsNotConstructed is returned when a Session was not created
	// through NewSession.
	ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

	// ErrMissingCustomerInfo is returned when a cart is submitted without a
	// customer name or mobile number. The submission must not touch the
	// network in that case.
	ErrMissingCustomerInfo = errors.New("customer name and mobile are required before submission")

	// ErrEmptyCart is returned when a cart with no line items is submitted.
	ErrEmptyCart = errors.New("cart has no line items")
)

// Session accumulates one customer's selections before they become a
// persisted order. The session exclusively owns its draft line items until
// submission; after that, ownership of the resulting order transfers to the
// remote store.
//
// One session is shared by every request carrying its ID, so all reads and
// writes of the draft go through the session mutex.
type Session struct {
	id uuid.UUID

	mu           sync.Mutex
	customerName string
	mobile       string
	table        int
	items        []order.LineItem

	guard guard.ConstructorGuard
}

// NewSession creates an empty cart session for one ordering flow.
func NewSession() *Session {
	return &Session{
		id:    uuid.New(),
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the session was created through NewSession.
func (s *Session) Validate() error {
	if s == nil {
		return ErrSessionIsNotConstructed
	}
	return s.guard.Validate(ErrSessionIsNotConstructed)
}

// ID returns the session's identifier.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// CustomerName returns the draft customer name.
func (s *Session) CustomerName() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customerName
}

// Mobile returns the draft mobile number.
func (s *Session) Mobile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mobile
}

// Table returns the draft table number.
func (s *Session) Table() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table
}

// Items returns a copy of the draft line items.
func (s *Session) Items() []order.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]order.LineItem(nil), s.items...)
}

// AddItem appends a snapshot of the menu item with the given quantity.
// The category, name and price are copied from the item; later menu edits do
// not affect the cart. Returns order.ErrInvalidQuantity if quantity < 1.
func (s *Session) AddItem(item menu.Item, quantity int) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	line, err := order.NewLineItem(item.ItemName(), item.Category(), item.Price(), quantity)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, line)
	return nil
}

// ChangeQuantity adjusts the quantity of the line at lineIndex by delta.
// The change is rejected with order.ErrInvalidQuantity if the resulting
// quantity would drop below 1; a decrement never removes a line. An index
// outside the cart fails with an object-not-found error.
func (s *Session) ChangeQuantity(lineIndex, delta int) error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if lineIndex < 0 || lineIndex >= len(s.items) {
		return errs.NewObjectNotFoundError("lineIndex", fmt.Sprintf("%d", lineIndex))
	}

	updated, err := s.items[lineIndex].WithQuantity(s.items[lineIndex].Quantity() + delta)
	if err != nil {
		return err
	}

	s.items[lineIndex] = updated
	return nil
}

// SetCustomer records the customer details required before submission.
func (s *Session) SetCustomer(name, mobile string, table int) error {
	if err := s.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerName = name
	s.mobile = mobile
	s.table = table
	return nil
}

// Total returns the running subtotal: the sum of price times quantity over
// the current line items, recomputed on every call.
func (s *Session) Total() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// BuildOrder constructs the draft order this session describes, with status
// Ordered and the given submission time.
//
// Fails with ErrMissingCustomerInfo when the name or mobile is empty and with
// ErrEmptyCart when no items were added. Both failures happen before any
// network activity; the session is left intact either way so the customer can
// fix the draft and retry.
func (s *Session) BuildOrder(orderedAt time.Time) (*order.Order, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.customerName == "" || s.mobile == "" {
		return nil, ErrMissingCustomerInfo
	}
	if len(s.items) == 0 {
		return nil, ErrEmptyCart
	}

	return order.NewOrder(s.customerName, s.mobile, s.table, s.items, orderedAt)
}

// Clear empties the session after a successful submission or when the
// customer abandons the flow. The session identifier survives.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerName = ""
	s.mobile = ""
	s.table = 0
	s.items = nil
}
