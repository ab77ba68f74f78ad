package commands_test

import (
	"context"
	"time"

	"tableside/internal/core/domain/model/cart"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/core/domain/model/role"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockSessionProvider struct{ mock.Mock }

func (m *MockSessionProvider) Session(id uuid.UUID) (*cart.Session, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Session), args.Error(1)
}

func (m *MockSessionProvider) Remove(id uuid.UUID) {
	m.Called(id)
}

type MockMenuStore struct{ mock.Mock }

func (m *MockMenuStore) FetchAll(ctx context.Context) ([]menu.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]menu.Item), args.Error(1)
}

type MockOrderSubmitter struct{ mock.Mock }

func (m *MockOrderSubmitter) Submit(ctx context.Context, session *cart.Session, orderedAt time.Time) (*order.Order, error) {
	args := m.Called(ctx, session, orderedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockOrderAdvancer struct{ mock.Mock }

func (m *MockOrderAdvancer) Advance(ctx context.Context, orderID string, next order.Status, acting role.Role) (*order.Order, error) {
	args := m.Called(ctx, orderID, next, acting)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
