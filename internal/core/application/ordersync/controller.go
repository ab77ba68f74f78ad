// Package ordersync reconciles the locally cached order list with the remote
// store. The cache is a read replica refreshed by pull; every write goes to
// the store first and only an acknowledged write mutates the cache, so a
// failed persist leaves each order in its prior queue.
package ordersync

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"tableside/internal/core/domain/model/cart"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/role"
	"tableside/internal/core/ports"
	"tableside/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	// ErrUpdateInFlight is returned when an order already has an unresolved
	// status update. The same order cannot be acted on again until the
	// pending request completes, which keeps duplicate submissions out.
	ErrUpdateInFlight = errors.New("order update already in flight")

	// ErrSubmitInFlight is returned when a cart session already has an
	// unresolved submission. The second submit fails fast instead of
	// persisting the same cart twice.
	ErrSubmitInFlight = errors.New("order submission already in flight")
)

// Controller owns the cached view of the remote order collection.
//
// All methods are safe for concurrent use. The pending set tracks orders with
// an unresolved status update; membership blocks further updates to the same
// order and survives cache refreshes.
type Controller struct {
	store  ports.OrderStore
	logger *slog.Logger

	mu         sync.Mutex
	cache      []*order.Order
	pending    map[string]struct{}
	submitting map[uuid.UUID]struct{}
}

// NewController creates a sync controller over the given store.
func NewController(store ports.OrderStore, logger *slog.Logger) *Controller {
	return &Controller{
		store:      store,
		logger:     logger.With("component", "order_sync"),
		pending:    make(map[string]struct{}),
		submitting: make(map[uuid.UUID]struct{}),
	}
}

// Refresh replaces the cache with a fresh fetch of the remote collection.
//
// On failure the previous cache is retained unchanged and the error is
// returned; a flaky remote must never blank out the queues. Totals in the
// refreshed cache are already re-derived because the store adapter rebuilds
// every order from its line items.
func (c *Controller) Refresh(ctx context.Context) error {
	orders, err := c.store.FetchAll(ctx)
	if err != nil {
		c.logger.ErrorContext(ctx, "Order refresh failed, keeping previous cache", "error", err)
		return err
	}

	c.mu.Lock()
	c.cache = orders
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "Order cache refreshed", "count", len(orders))
	return nil
}

// Orders returns a copy of the cached order list.
func (c *Controller) Orders() []*order.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]*order.Order(nil), c.cache...)
}

// QueueFor returns the cached orders a role is responsible for acting on:
// Chef sees Ordered, Waiter sees Ready, Admin sees Delivered. Roles without a
// queue, Customer included, get an empty list. Orders with an update in
// flight are withheld from the queue until the update resolves.
func (c *Controller) QueueFor(r role.Role) []*order.Order {
	status, ok := order.QueueStatus(r)
	if !ok {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	queue := make([]*order.Order, 0)
	for _, o := range c.cache {
		if o.Status() != status {
			continue
		}
		if _, inFlight := c.pending[o.ID()]; inFlight {
			continue
		}
		queue = append(queue, o)
	}
	return queue
}

// HistoryFilter narrows the full collection for the history view.
// Zero values leave their dimension unfiltered.
type HistoryFilter struct {
	Table  int
	Status order.Status
	Day    time.Time
}

// History returns the cached orders matching the filter, any status included.
func (c *Controller) History(f HistoryFilter) []*order.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := make([]*order.Order, 0)
	for _, o := range c.cache {
		if f.Table != 0 && o.Table() != f.Table {
			continue
		}
		if f.Status != order.Unknown && o.Status() != f.Status {
			continue
		}
		if !f.Day.IsZero() && !sameDay(o.OrderedAt(), f.Day) {
			continue
		}
		matched = append(matched, o)
	}
	return matched
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Advance moves a cached order one step forward as the acting role.
//
// The flow is two-phase: the transition is validated against the state
// machine and the role gate first, the order is marked pending, and the store
// is asked to persist. Only a store acknowledgment commits the new status to
// the cache; on failure the pending mark is dropped and the order reappears
// in its prior queue untouched. A second advance of the same order while one
// is unresolved fails fast with ErrUpdateInFlight.
func (c *Controller) Advance(ctx context.Context, orderID string, next order.Status, acting role.Role) (*order.Order, error) {
	c.mu.Lock()
	current, idx := c.findLocked(orderID)
	if current == nil {
		c.mu.Unlock()
		return nil, errs.NewObjectNotFoundError("orderId", orderID)
	}
	if _, inFlight := c.pending[orderID]; inFlight {
		c.mu.Unlock()
		return nil, ErrUpdateInFlight
	}

	// Validate locally before any network activity.
	if _, err := current.Advance(next, acting); err != nil {
		c.mu.Unlock()
		return nil, err
	}

	c.pending[orderID] = struct{}{}
	version := current.Version()
	c.mu.Unlock()

	persisted, err := c.store.UpdateStatus(ctx, orderID, next, version)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, orderID)

	if err != nil {
		c.logger.ErrorContext(ctx, "Status update failed, order stays in its prior queue",
			"order_id", orderID, "next", next.String(), "error", err)
		return nil, err
	}

	// The cache may have been refreshed while the request was out; re-find
	// the entry before committing.
	if _, idx = c.findLocked(orderID); idx >= 0 {
		c.cache[idx] = persisted
	}

	c.logger.InfoContext(ctx, "Order advanced",
		"order_id", orderID, "status", persisted.Status().String(), "role", acting.String())
	return persisted, nil
}

// Submit builds the order a cart session describes and persists it.
//
// Local validation failures (missing customer info, empty cart) are returned
// before any network activity and leave the session intact. A store failure
// also preserves the session so the customer can retry. Only a successful
// create clears the session; the persisted order joins the cache with its
// store-assigned identifier. A second submit of the same session while one
// is unresolved fails fast with ErrSubmitInFlight, so the same cart can
// never be persisted twice.
func (c *Controller) Submit(ctx context.Context, session *cart.Session, orderedAt time.Time) (*order.Order, error) {
	sessionID := session.ID()

	c.mu.Lock()
	if _, inFlight := c.submitting[sessionID]; inFlight {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}
	c.submitting[sessionID] = struct{}{}
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.submitting, sessionID)
		c.mu.Unlock()
	}()

	draft, err := session.BuildOrder(orderedAt)
	if err != nil {
		return nil, err
	}

	persisted, err := c.store.Create(ctx, draft)
	if err != nil {
		c.logger.ErrorContext(ctx, "Order submission failed, session preserved",
			"session_id", session.ID().String(), "error", err)
		return nil, err
	}

	session.Clear()

	c.mu.Lock()
	c.cache = append(c.cache, persisted)
	c.mu.Unlock()

	c.logger.InfoContext(ctx, "Order submitted",
		"order_id", persisted.ID(), "total", persisted.TotalPrice())
	return persisted, nil
}

// findLocked returns the cached order with the given identifier and its
// index, or (nil, -1). Callers must hold c.mu.
func (c *Controller) findLocked(orderID string) (*order.Order, int) {
	for i, o := range c.cache {
		if o.ID() == orderID {
			return o, i
		}
	}
	return nil, -1
}
