package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/ports"
)

const menusPath = "/api/menus"

// MenuStore implements ports.MenuStore against the collaborator's /api/menus
// resource.
type MenuStore struct {
	client *Client
}

// NewMenuStore creates a menu store over the given client.
func NewMenuStore(client *Client) *MenuStore {
	return &MenuStore{client: client}
}

// FetchAll retrieves the available menu items. Entries that cannot be
// decoded or that fail catalog validation (missing name, non-positive
// price) are skipped with a warning; each entry is unmarshaled on its own
// so one bad record does not fail the whole catalog.
func (s *MenuStore) FetchAll(ctx context.Context) ([]menu.Item, error) {
	res, err := s.client.do(ctx, http.MethodGet, menusPath, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrFetchFailed, err)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %d", ports.ErrFetchFailed, res.StatusCode)
	}

	var docs []json.RawMessage
	if err = decodeJSON(res, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrFetchFailed, err)
	}

	items := make([]menu.Item, 0, len(docs))
	for _, doc := range docs {
		var dto menuItemDTO
		if decodeErr := json.Unmarshal(doc, &dto); decodeErr != nil {
			s.client.logger.WarnContext(ctx, "Skipping undecodable menu item from catalog",
				"error", decodeErr)
			continue
		}

		item, itemErr := toMenuDomain(dto)
		if itemErr != nil {
			s.client.logger.WarnContext(ctx, "Skipping malformed menu item from catalog",
				"item_id", dto.ID, "error", itemErr)
			continue
		}
		items = append(items, item)
	}

	return items, nil
}
