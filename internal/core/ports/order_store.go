// Package ports defines the outbound interfaces of the core: the remote order
// store and the menu catalog, both served by the REST collaborator. Adapters
// implement these; the application layer only sees the interfaces.
package ports

import (
	"context"
	"errors"

	"tableside/internal/core/domain/model/order"
)

// Store error sentinels. Adapters wrap their transport failures in these so
// the application layer can classify without knowing HTTP.
var (
	// ErrFetchFailed indicates the remote order collection could not be
	// retrieved. Callers keep their previous cache on this error.
	ErrFetchFailed = errors.New("fetching orders from remote store failed")

	// ErrCreateRejected indicates the remote store refused a new order
	// payload.
	ErrCreateRejected = errors.New("remote store rejected order creation")

	// ErrUpdateFailed indicates a status update did not reach the remote
	// store or was refused.
	ErrUpdateFailed = errors.New("order status update failed")

	// ErrUpdateConflict indicates the remote store holds a newer version of
	// the order than the one the update was based on.
	ErrUpdateConflict = errors.New("order was modified concurrently")
)

// OrderStore is the remote source of truth for orders.
//
// The store owns every persisted order; results returned here are cached
// copies. Implementations must re-derive each order's total from its line
// items rather than trusting a total carried on the wire.
type OrderStore interface {
	// FetchAll retrieves the full remote order collection. The caller
	// filters by status and role before rendering. Fails with ErrFetchFailed
	// on transport or non-success responses.
	FetchAll(ctx context.Context) ([]*order.Order, error)

	// Create persists a draft order and returns the stored copy with its
	// assigned identifier. Fails with ErrCreateRejected if the remote
	// refuses the payload.
	Create(ctx context.Context, draft *order.Order) (*order.Order, error)

	// UpdateStatus moves the identified order to the given status, carrying
	// the version the update was based on as a concurrency token. Fails with
	// ErrUpdateConflict when the remote reports a newer version and with
	// ErrUpdateFailed otherwise.
	UpdateStatus(ctx context.Context, orderID string, next order.Status, version int) (*order.Order, error)
}
