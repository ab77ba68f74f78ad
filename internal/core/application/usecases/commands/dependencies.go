// Package commands contains business operations that modify cart and order
// state. Implements the Command pattern for write operations: each command
// validates its input at construction and its handler talks to the session
// registry and the order sync layer.
package commands

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/cart"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/role"

	"github.com/google/uuid"
)

type (
	// SessionProvider resolves open cart sessions by ID.
	SessionProvider interface {
		Session(id uuid.UUID) (*cart.Session, error)
	}

	// SessionRegistry additionally retires sessions once their order is
	// placed, so submitted carts do not accumulate.
	SessionRegistry interface {
		SessionProvider
		Remove(id uuid.UUID)
	}

	// OrderSubmitter turns a cart session into a persisted order.
	// The session is cleared only after the store acknowledges the create.
	OrderSubmitter interface {
		Submit(ctx context.Context, session *cart.Session, orderedAt time.Time) (*order.Order, error)
	}

	// OrderAdvancer moves an order along its lifecycle on behalf of a role.
	OrderAdvancer interface {
		Advance(ctx context.Context, orderID string, next order.Status, acting role.Role) (*order.Order, error)
	}
)
