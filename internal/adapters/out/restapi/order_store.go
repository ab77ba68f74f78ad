package restapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/ports"
)

const ordersPath = "/api/orders"

// OrderStore implements ports.OrderStore against the collaborator's
// /api/orders resource.
type OrderStore struct {
	client *Client
}

// NewOrderStore creates an order store over the given client.
func NewOrderStore(client *Client) *OrderStore {
	return &OrderStore{client: client}
}

// FetchAll retrieves the full remote order collection.
//
// Orders whose payload cannot be decoded or reconstructed (unknown status
// spelling, non-numeric table or version, malformed line item) are skipped
// with a warning rather than failing the whole fetch; one bad record must
// not blind every role's queue. Each document is unmarshaled on its own so
// a decode failure stays contained to that document. Totals come out
// re-derived because reconstruction never reads the wire totalPrice.
func (s *OrderStore) FetchAll(ctx context.Context) ([]*order.Order, error) {
	res, err := s.client.do(ctx, http.MethodGet, ordersPath, nil)
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

	orders := make([]*order.Order, 0, len(docs))
	for _, doc := range docs {
		var dto orderDTO
		if decodeErr := json.Unmarshal(doc, &dto); decodeErr != nil {
			s.client.logger.WarnContext(ctx, "Skipping undecodable order from remote store",
				"error", decodeErr)
			continue
		}

		o, restoreErr := toDomain(dto)
		if restoreErr != nil {
			s.client.logger.WarnContext(ctx, "Skipping malformed order from remote store",
				"order_id", dto.ID, "error", restoreErr)
			continue
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Create persists a draft order and returns the stored copy with its assigned
// identifier.
func (s *OrderStore) Create(ctx context.Context, draft *order.Order) (*order.Order, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}

	res, err := s.client.do(ctx, http.MethodPost, ordersPath, newCreateOrderRequest(draft))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrCreateRejected, err)
	}
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		res.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %d", ports.ErrCreateRejected, res.StatusCode)
	}

	var dto orderDTO
	if err = decodeJSON(res, &dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrCreateRejected, err)
	}

	persisted, err := toDomain(dto)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrCreateRejected, err)
	}

	return persisted, nil
}

// UpdateStatus moves the identified order to the given status.
// The version the update was based on rides along as a concurrency token; a
// 409 from the remote surfaces as ports.ErrUpdateConflict.
func (s *OrderStore) UpdateStatus(ctx context.Context, orderID string, next order.Status, version int) (*order.Order, error) {
	if err := next.Validate(); err != nil {
		return nil, err
	}

	payload := updateStatusRequest{
		ID:      orderID,
		Status:  next.String(),
		Version: version,
	}

	res, err := s.client.do(ctx, http.MethodPut, ordersPath, payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrUpdateFailed, err)
	}
	if res.StatusCode == http.StatusConflict {
		res.Body.Close()
		return nil, fmt.Errorf("%w: order %s", ports.ErrUpdateConflict, orderID)
	}
	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %d", ports.ErrUpdateFailed, res.StatusCode)
	}

	var dto orderDTO
	if err = decodeJSON(res, &dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrUpdateFailed, err)
	}

	updated, err := toDomain(dto)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ports.ErrUpdateFailed, err)
	}

	return updated, nil
}
