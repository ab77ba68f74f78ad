// Package queries contains read operations over the synchronized order
// cache and the menu catalog. Queries never mutate state; they project the
// orders the sync layer holds into response structs for the HTTP surface.
package queries

import (
	"tableside/internal/core/application/ordersync"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/role"
)

type (
	// OrderReader exposes the synchronized order cache for projections.
	OrderReader interface {
		QueueFor(r role.Role) []*order.Order
		History(f ordersync.HistoryFilter) []*order.Order
	}
)
