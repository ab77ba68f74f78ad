package cart_test

import (
	"sync"
	"testing"
	"time"

	"tableside/internal/core/domain/model/cart"
	"tableside/internal/core/domain/model/menu"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, id, name, category string, price int) menu.Item {
	t.Helper()
	item, err := menu.NewItem(id, name, category, price)
	require.NoError(t, err)
	return item
}

func TestNewSession(t *testing.T) {
	s := cart.NewSession()

	require.NoError(t, s.Validate())
	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID()))
	assert.Empty(t, s.Items())
	assert.Zero(t, s.Total())

	t.Run("zero value fails validation", func(t *testing.T) {
		var zero cart.Session
		require.ErrorIs(t, zero.Validate(), cart.ErrSessionIsNotConstructed)

		var nilSession *cart.Session
		require.ErrorIs(t, nilSession.Validate(), cart.ErrSessionIsNotConstructed)
	})
}

func TestSession_AddItem(t *testing.T) {
	pizza := mustItem(t, "m-1", "Pizza", "Main Course", 200)

	t.Run("appends a snapshot of the menu item", func(t *testing.T) {
		s := cart.NewSession()

		require.NoError(t, s.AddItem(pizza, 2))

		items := s.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "Pizza", items[0].ItemName())
		assert.Equal(t, "Main Course", items[0].Category())
		assert.Equal(t, 200, items[0].Price())
		assert.Equal(t, 2, items[0].Quantity())
	})

	t.Run("rejects quantity below 1", func(t *testing.T) {
		s := cart.NewSession()

		err := s.AddItem(pizza, 0)
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
		assert.Empty(t, s.Items())
	})

	t.Run("rejects unconstructed menu items", func(t *testing.T) {
		s := cart.NewSession()

		err := s.AddItem(menu.Item{}, 1)
		require.ErrorIs(t, err, menu.ErrItemIsNotConstructed)
	})
}

func TestSession_ChangeQuantity(t *testing.T) {
	pizza := mustItem(t, "m-1", "Pizza", "Main Course", 200)

	newCart := func(t *testing.T) *cart.Session {
		t.Helper()
		s := cart.NewSession()
		require.NoError(t, s.AddItem(pizza, 2))
		return s
	}

	t.Run("applies a positive delta", func(t *testing.T) {
		s := newCart(t)

		require.NoError(t, s.ChangeQuantity(0, 3))
		assert.Equal(t, 5, s.Items()[0].Quantity())
		assert.Equal(t, 1000, s.Total())
	})

	t.Run("applies a negative delta down to 1", func(t *testing.T) {
		s := newCart(t)

		require.NoError(t, s.ChangeQuantity(0, -1))
		assert.Equal(t, 1, s.Items()[0].Quantity())
	})

	t.Run("never produces a quantity of 0 or below", func(t *testing.T) {
		s := newCart(t)

		err := s.ChangeQuantity(0, -2)
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
		assert.Equal(t, 2, s.Items()[0].Quantity(), "rejected change must not mutate the line")

		err = s.ChangeQuantity(0, -10)
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
		assert.Equal(t, 2, s.Items()[0].Quantity())
	})

	t.Run("rejects an index outside the cart", func(t *testing.T) {
		s := newCart(t)

		require.ErrorIs(t, s.ChangeQuantity(1, 1), errs.ErrObjectNotFound)
		require.ErrorIs(t, s.ChangeQuantity(-1, 1), errs.ErrObjectNotFound)
	})
}

func TestSession_Total(t *testing.T) {
	t.Run("sums price times quantity over all lines", func(t *testing.T) {
		s := cart.NewSession()
		require.NoError(t, s.AddItem(mustItem(t, "m-1", "Pizza", "Main Course", 200), 2))
		require.NoError(t, s.AddItem(mustItem(t, "m-2", "Soda", "Drinks", 50), 1))

		assert.Equal(t, 450, s.Total())
	})

	t.Run("tracks quantity mutations", func(t *testing.T) {
		s := cart.NewSession()
		require.NoError(t, s.AddItem(mustItem(t, "m-1", "Pizza", "Main Course", 200), 1))
		assert.Equal(t, 200, s.Total())

		require.NoError(t, s.ChangeQuantity(0, 2))
		assert.Equal(t, 600, s.Total())
	})
}

func TestSession_BuildOrder(t *testing.T) {
	orderedAt := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
	pizza := mustItem(t, "m-1", "Pizza", "Main Course", 200)

	t.Run("builds a draft order in Ordered status", func(t *testing.T) {
		s := cart.NewSession()
		require.NoError(t, s.AddItem(pizza, 2))
		require.NoError(t, s.SetCustomer("Asha", "9876543210", 4))

		o, err := s.BuildOrder(orderedAt)
		require.NoError(t, err)

		assert.Equal(t, order.Ordered, o.Status())
		assert.Equal(t, "Asha", o.CustomerName())
		assert.Equal(t, orderedAt, o.OrderedAt())
		assert.Equal(t, 400, o.TotalPrice())
		assert.Empty(t, o.ID())
	})

	t.Run("fails without customer name", func(t *testing.T) {
		s := cart.NewSession()
		require.NoError(t, s.AddItem(pizza, 1))
		require.NoError(t, s.SetCustomer("", "9876543210", 4))

		_, err := s.BuildOrder(orderedAt)
		require.ErrorIs(t, err, cart.ErrMissingCustomerInfo)
		assert.Len(t, s.Items(), 1, "session is preserved for retry")
	})

	t.Run("fails without mobile", func(t *testing.T) {
		s := cart.NewSession()
		require.NoError(t, s.AddItem(pizza, 1))
		require.NoError(t, s.SetCustomer("Asha", "", 4))

		_, err := s.BuildOrder(orderedAt)
		require.ErrorIs(t, err, cart.ErrMissingCustomerInfo)
	})

	t.Run("fails with an empty cart", func(t *testing.T) {
		s := cart.NewSession()
		require.NoError(t, s.SetCustomer("Asha", "9876543210", 4))

		_, err := s.BuildOrder(orderedAt)
		require.ErrorIs(t, err, cart.ErrEmptyCart)
	})
}

func TestSession_Clear(t *testing.T) {
	s := cart.NewSession()
	require.NoError(t, s.AddItem(mustItem(t, "m-1", "Pizza", "Main Course", 200), 2))
	require.NoError(t, s.SetCustomer("Asha", "9876543210", 4))
	id := s.ID()

	s.Clear()

	assert.Empty(t, s.Items())
	assert.Zero(t, s.Total())
	assert.Empty(t, s.CustomerName())
	assert.Empty(t, s.Mobile())
	assert.Equal(t, id, s.ID(), "identifier survives clearing")
}

func TestSession_ConcurrentAccess(t *testing.T) {
	pizza := mustItem(t, "m-1", "Pizza", "Main Course", 200)
	s := cart.NewSession()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.AddItem(pizza, 1))
		}()
		go func() {
			defer wg.Done()
			_ = s.Total()
			_ = s.Items()
		}()
	}
	wg.Wait()

	assert.Len(t, s.Items(), 50)
	assert.Equal(t, 50*200, s.Total())
}
