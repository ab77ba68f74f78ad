package restapi

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
)

// The collaborator's payloads are loosely typed: mobile arrives both quoted
// and as a bare number, table both as a number and a numeric string, and
// status casing varies. flexString and flexInt absorb those shapes so one
// canonical DTO covers all of them.

type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(string(b))
	return nil
}

type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	raw := strings.Trim(string(b), `"`)
	if raw == "null" || raw == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return err
	}
	*f = flexInt(n)
	return nil
}

// lineItemDTO is the wire shape of one order line.
type lineItemDTO struct {
	ItemName string `json:"itemName"`
	Category string `json:"category,omitempty"`
	Price    int    `json:"price"`
	Quantity int    `json:"quantity"`
}

// orderDTO is the wire shape of a persisted order. TotalPrice is decoded but
// never used: totals are re-derived from the line items on reconstruction.
type orderDTO struct {
	ID         string        `json:"_id"`
	Name       string        `json:"name"`
	Mobile     flexString    `json:"mobile"`
	Table      flexInt       `json:"table"`
	Status     string        `json:"status"`
	TotalPrice int           `json:"totalPrice"`
	OrderedAt  string        `json:"orderedAt"`
	Items      []lineItemDTO `json:"items"`
	Version    flexInt       `json:"__v"`
}

// createOrderRequest is the POST /api/orders payload.
type createOrderRequest struct {
	Items  []lineItemDTO `json:"items"`
	Name   string        `json:"name"`
	Mobile string        `json:"mobile"`
	Table  int           `json:"table"`
}

// updateStatusRequest is the PUT /api/orders payload. The version rides along
// as a concurrency token; remotes that ignore it behave last-write-wins.
type updateStatusRequest struct {
	ID      string `json:"_id"`
	Status  string `json:"status"`
	Version int    `json:"__v"`
}

// menuItemDTO is the wire shape of a menu entry.
type menuItemDTO struct {
	ID       string  `json:"_id"`
	ItemName string  `json:"itemName"`
	Category string  `json:"category"`
	Price    flexInt `json:"price"`
}

// toDomain reconstructs an order aggregate from its wire shape.
func toDomain(dto orderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, line := range dto.Items {
		item, lineErr := order.NewLineItem(line.ItemName, line.Category, line.Price, line.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		items = append(items, item)
	}

	var orderedAt time.Time
	if dto.OrderedAt != "" {
		orderedAt, err = time.Parse(time.RFC3339, dto.OrderedAt)
		if err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(
		dto.ID,
		dto.Name,
		string(dto.Mobile),
		int(dto.Table),
		orderedAt,
		status,
		items,
		int(dto.Version),
	)
}

// toMenuDomain reconstructs a menu item from its wire shape.
func toMenuDomain(dto menuItemDTO) (menu.Item, error) {
	return menu.NewItem(dto.ID, dto.ItemName, dto.Category, int(dto.Price))
}

// fromDomainLines converts domain line items to their wire shape.
func fromDomainLines(items []order.LineItem) []lineItemDTO {
	lines := make([]lineItemDTO, 0, len(items))
	for _, item := range items {
		lines = append(lines, lineItemDTO{
			ItemName: item.ItemName(),
			Category: item.Category(),
			Price:    item.Price(),
			Quantity: item.Quantity(),
		})
	}
	return lines
}

// newCreateOrderRequest converts a draft order to the creation payload.
func newCreateOrderRequest(draft *order.Order) createOrderRequest {
	return createOrderRequest{
		Items:  fromDomainLines(draft.Items()),
		Name:   draft.CustomerName(),
		Mobile: draft.Mobile(),
		Table:  draft.Table(),
	}
}
