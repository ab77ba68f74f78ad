package queries_test

import (
	"context"
	"testing"
	"time"

	"tableside/internal/core/application/ordersync"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/role"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) QueueFor(r role.Role) []*order.Order {
	args := m.Called(r)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*order.Order)
}

func (m *MockOrderReader) History(f ordersync.HistoryFilter) []*order.Order {
	args := m.Called(f)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*order.Order)
}

func queueOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()
	pizza, err := order.NewLineItem("Pizza", "Main Course", 200, 2)
	require.NoError(t, err)
	soda, err := order.NewLineItem("Soda", "Drinks", 50, 1)
	require.NoError(t, err)

	o, err := order.RestoreOrder(id, "Asha", "9876543210", 4,
		time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC), status,
		[]order.LineItem{pizza, soda}, 1)
	require.NoError(t, err)
	return o
}

func TestGetRoleQueueQueryHandler_ChefToken(t *testing.T) {
	reader := &MockOrderReader{}
	reader.On("QueueFor", role.Chef).Return([]*order.Order{queueOrder(t, "o1", order.Ordered)})

	handler := queries.NewGetRoleQueueQueryHandler(reader)
	responses, err := handler.Handle(context.Background(), queries.NewGetRoleQueueQuery("chef"))
	require.NoError(t, err)

	require.Len(t, responses, 1)
	assert.Equal(t, "o1", responses[0].ID)
	assert.Equal(t, "Ordered", responses[0].Status)
	assert.Equal(t, 450, responses[0].TotalPrice, "total is derived from the lines")
	require.Len(t, responses[0].Items, 2)
	reader.AssertExpectations(t)
}

func TestGetRoleQueueQueryHandler_CustomerTokenRejected(t *testing.T) {
	handler := queries.NewGetRoleQueueQueryHandler(&MockOrderReader{})

	for _, token := range []string{"", "customer", "gibberish"} {
		_, err := handler.Handle(context.Background(), queries.NewGetRoleQueueQuery(token))
		require.ErrorIs(t, err, queries.ErrActorIsNotStaff, "token %q", token)
	}
}

func TestGetRoleQueueQueryHandler_EmptyQueue(t *testing.T) {
	reader := &MockOrderReader{}
	reader.On("QueueFor", role.Waiter).Return(nil)

	handler := queries.NewGetRoleQueueQueryHandler(reader)
	responses, err := handler.Handle(context.Background(), queries.NewGetRoleQueueQuery("waiter"))
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestGetRoleQueueQuery_ZeroValueFailsValidation(t *testing.T) {
	handler := queries.NewGetRoleQueueQueryHandler(&MockOrderReader{})
	_, err := handler.Handle(context.Background(), queries.GetRoleQueueQuery{})
	require.ErrorIs(t, err, queries.ErrGetRoleQueueQueryIsNotConstructed)
}
