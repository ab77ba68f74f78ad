package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	tshttp "tableside/internal/adapters/in/http"
	"tableside/internal/core/application/ordersync"
	"tableside/internal/core/application/sessions"
	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderStore struct {
	orders    []*order.Order
	createErr error
	updateErr error
	nextID    string
}

func (s *stubOrderStore) FetchAll(_ context.Context) ([]*order.Order, error) {
	return s.orders, nil
}

func (s *stubOrderStore) Create(_ context.Context, draft *order.Order) (*order.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	persisted, err := order.RestoreOrder(s.nextID, draft.CustomerName(), draft.Mobile(),
		draft.Table(), draft.OrderedAt(), draft.Status(), draft.Items(), 0)
	if err != nil {
		return nil, err
	}
	s.orders = append(s.orders, persisted)
	return persisted, nil
}

func (s *stubOrderStore) UpdateStatus(_ context.Context, orderID string, next order.Status, version int) (*order.Order, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	for _, o := range s.orders {
		if o.ID() == orderID {
			return order.RestoreOrder(o.ID(), o.CustomerName(), o.Mobile(), o.Table(),
				o.OrderedAt(), next, o.Items(), version+1)
		}
	}
	return nil, nil
}

type stubMenuStore struct {
	items []menu.Item
}

func (s *stubMenuStore) FetchAll(_ context.Context) ([]menu.Item, error) {
	return s.items, nil
}

type fixture struct {
	e     *echo.Echo
	store *stubOrderStore
	sync  *ordersync.Controller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	pizza, err := menu.NewItem("m-1", "Pizza", "Main Course", 200)
	require.NoError(t, err)
	soda, err := menu.NewItem("m-2", "Soda", "Drinks", 50)
	require.NoError(t, err)

	store := &stubOrderStore{nextID: "o-new"}
	menuStore := &stubMenuStore{items: []menu.Item{pizza, soda}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	controller := ordersync.NewController(store, logger)
	registry := sessions.NewRegistry()

	server := tshttp.NewServer(
		registry,
		commands.NewAddCartItemCommandHandler(registry, menuStore),
		commands.NewChangeQuantityCommandHandler(registry),
		commands.NewSetCustomerCommandHandler(registry),
		commands.NewSubmitOrderCommandHandler(registry, controller),
		commands.NewAdvanceOrderCommandHandler(controller),
		queries.NewGetMenuQueryHandler(menuStore),
		queries.NewGetRoleQueueQueryHandler(controller),
		queries.NewGetOrderHistoryQueryHandler(controller),
	)

	e := echo.New()
	server.RegisterRoutes(e)

	return &fixture{e: e, store: store, sync: controller}
}

func (f *fixture) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func seedOrder(t *testing.T, f *fixture, id string, status order.Status) {
	t.Helper()
	item, err := order.NewLineItem("Pizza", "Main Course", 200, 2)
	require.NoError(t, err)
	o, err := order.RestoreOrder(id, "Asha", "9876543210", 4,
		time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC), status, []order.LineItem{item}, 1)
	require.NoError(t, err)

	f.store.orders = append(f.store.orders, o)
	require.NoError(t, f.sync.Refresh(context.Background()))
}

func TestServer_Health(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_GetMenu(t *testing.T) {
	f := newFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/menu", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []queries.MenuItemResponse
	decodeBody(t, rec, &items)
	require.Len(t, items, 2)
	assert.Equal(t, "Pizza", items[0].ItemName)
}

func TestServer_CartFlow(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/v1/cart", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var opened struct {
		SessionID string `json:"sessionId"`
	}
	decodeBody(t, rec, &opened)
	require.NotEmpty(t, opened.SessionID)
	base := "/api/v1/cart/" + opened.SessionID

	rec = f.do(t, http.MethodPost, base+"/items", `{"menuItemId":"m-1","quantity":2}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, base+"/items", `{"menuItemId":"m-2"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code, "quantity defaults to one")

	var view struct {
		Items []queries.LineItemResponse `json:"items"`
		Total int                        `json:"total"`
	}
	decodeBody(t, rec, &view)
	require.Len(t, view.Items, 2)
	assert.Equal(t, 450, view.Total)

	rec = f.do(t, http.MethodPatch, base+"/items/1", `{"delta":1}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &view)
	assert.Equal(t, 2, view.Items[1].Quantity)
	assert.Equal(t, 500, view.Total)

	// Submitting before customer details is rejected and keeps the cart.
	rec = f.do(t, http.MethodPost, base+"/submit", "", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = f.do(t, http.MethodPut, base+"/customer", `{"name":"Asha","mobile":"9876543210","table":4}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(t, http.MethodPost, base+"/submit", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var placed queries.OrderResponse
	decodeBody(t, rec, &placed)
	assert.Equal(t, "o-new", placed.ID)
	assert.Equal(t, "Ordered", placed.Status)
	assert.Equal(t, 500, placed.TotalPrice)

	rec = f.do(t, http.MethodGet, base, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "session retired after submission")
}

func TestServer_CartNotFound(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/cart/3f2c1f6e-5b93-4d08-9f6a-1f9a4c21d710", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = f.do(t, http.MethodGet, "/api/v1/cart/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetQueue(t *testing.T) {
	f := newFixture(t)
	seedOrder(t, f, "o1", order.Ordered)

	t.Run("chef via X-Role header", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/queue", "", map[string]string{"X-Role": "chef"})
		require.Equal(t, http.StatusOK, rec.Code)

		var queue []queries.OrderResponse
		decodeBody(t, rec, &queue)
		require.Len(t, queue, 1)
		assert.Equal(t, "o1", queue[0].ID)
	})

	t.Run("waiter via bearer token", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/queue", "", map[string]string{"Authorization": "Bearer waiter"})
		require.Equal(t, http.StatusOK, rec.Code)

		var queue []queries.OrderResponse
		decodeBody(t, rec, &queue)
		assert.Empty(t, queue)
	})

	t.Run("no token is forbidden", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/queue", "", nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestServer_GetHistory(t *testing.T) {
	f := newFixture(t)
	seedOrder(t, f, "o1", order.Ordered)
	seedOrder(t, f, "o2", order.Paid)

	t.Run("admin sees everything", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/history", "", map[string]string{"X-Role": "admin"})
		require.Equal(t, http.StatusOK, rec.Code)

		var history []queries.OrderResponse
		decodeBody(t, rec, &history)
		assert.Len(t, history, 2)
	})

	t.Run("filters apply", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/history?status=paid&table=4&date=2025-03-14", "",
			map[string]string{"X-Role": "admin"})
		require.Equal(t, http.StatusOK, rec.Code)

		var history []queries.OrderResponse
		decodeBody(t, rec, &history)
		require.Len(t, history, 1)
		assert.Equal(t, "o2", history[0].ID)
	})

	t.Run("malformed date", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/history?date=14-03-2025", "",
			map[string]string{"X-Role": "admin"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("staff below admin is forbidden", func(t *testing.T) {
		rec := f.do(t, http.MethodGet, "/api/v1/orders/history", "", map[string]string{"X-Role": "chef"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestServer_AdvanceOrder(t *testing.T) {
	t.Run("chef readies an ordered order", func(t *testing.T) {
		f := newFixture(t)
		seedOrder(t, f, "o1", order.Ordered)

		rec := f.do(t, http.MethodPost, "/api/v1/orders/o1/advance", `{"next":"ready"}`,
			map[string]string{"X-Role": "chef"})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated queries.OrderResponse
		decodeBody(t, rec, &updated)
		assert.Equal(t, "Ready", updated.Status)
		assert.Equal(t, 2, updated.Version)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		f := newFixture(t)
		seedOrder(t, f, "o1", order.Ready)

		rec := f.do(t, http.MethodPost, "/api/v1/orders/o1/advance", `{"next":"delivered"}`,
			map[string]string{"X-Role": "chef"})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("skipping a step conflicts", func(t *testing.T) {
		f := newFixture(t)
		seedOrder(t, f, "o1", order.Ordered)

		rec := f.do(t, http.MethodPost, "/api/v1/orders/o1/advance", `{"next":"delivered"}`,
			map[string]string{"X-Role": "waiter"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unknown order", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/api/v1/orders/missing/advance", `{"next":"ready"}`,
			map[string]string{"X-Role": "chef"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)
		seedOrder(t, f, "o1", order.Ordered)

		rec := f.do(t, http.MethodPost, "/api/v1/orders/o1/advance", `{"next":"shipped"}`,
			map[string]string{"X-Role": "chef"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
