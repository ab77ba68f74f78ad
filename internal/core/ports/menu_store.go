package ports

import (
	"context"

	"tableside/internal/core/domain/model/menu"
)

// MenuStore is the read-only view of the catalog collaborator.
type MenuStore interface {
	// FetchAll retrieves the available menu items. Fails with ErrFetchFailed
	// on transport or non-success responses.
	FetchAll(ctx context.Context) ([]menu.Item, error)
}
