package order_test

import (
	"testing"
	"time"

	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1001", time.Now().UTC())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates booked unassigned order", func(t *testing.T) {
		created := time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC)
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, "ORD-1001", created)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "ORD-1001", o.Code())
		assert.Equal(t, order.StatusBooked, o.Status())
		assert.Nil(t, o.Manager())
		assert.Equal(t, created, o.CreatedAt())
		assert.Nil(t, o.CancelReason())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, "ORD-1001", time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "", time.Now())
		require.Error(t, err)

		_, err = order.NewOrder(kernel.NewUUID(), "ORD-1001", time.Time{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("normalizes legacy status on read", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-1002", "  Under_Inspection ", nil,
			time.Now().UTC(), nil, nil, nil, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusSellerCheckInProgress, o.Status())
	})

	t.Run("keeps unrecognized status raw", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-1003", "mystery_state", nil,
			time.Now().UTC(), nil, nil, nil, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Status("mystery_state"), o.Status())
		require.Error(t, o.TransitionTo(order.StatusCancelled))
	})

	t.Run("restores full state", func(t *testing.T) {
		managerID := kernel.NewUUID()
		supersededBy := kernel.NewUUID()
		reason := order.CancelReasonAboveUpperBound
		snapshot := &order.Snapshot{PriceEUR: 2500}

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-1004", "cancelled", &managerID,
			time.Now().UTC(), ptr(2600), snapshot, &reason, &supersededBy,
		)

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		require.NotNil(t, o.Manager())
		assert.True(t, o.Manager().IsEqual(managerID))
		assert.Equal(t, snapshot, o.Snapshot())
		assert.Equal(t, &reason, o.CancelReason())
		require.NotNil(t, o.SupersededBy())
		assert.True(t, o.SupersededBy().IsEqual(supersededBy))
	})
}

func TestOrder_PriceEUR(t *testing.T) {
	restore := func(listing *float64, snapshot *order.Snapshot) *order.Order {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-2001", "booked", nil,
			time.Now().UTC(), listing, snapshot, nil, nil,
		)
		require.NoError(t, err)
		return o
	}

	t.Run("explicit listing price wins", func(t *testing.T) {
		o := restore(ptr(2600), &order.Snapshot{ListingPriceEUR: 3100})

		price, ok := o.PriceEUR()

		require.True(t, ok)
		assert.InDelta(t, 2600, price, 0.001)
	})

	t.Run("snapshot fields in precedence order", func(t *testing.T) {
		o := restore(nil, &order.Snapshot{
			PriceEUR:   1800,
			Price:      1700,
			Financials: order.Financials{BikePriceEUR: 1600},
		})

		price, ok := o.PriceEUR()

		require.True(t, ok)
		assert.InDelta(t, 1800, price, 0.001)
	})

	t.Run("falls through to nested financials", func(t *testing.T) {
		o := restore(nil, &order.Snapshot{Financials: order.Financials{BikePriceEUR: 1600}})

		price, ok := o.PriceEUR()

		require.True(t, ok)
		assert.InDelta(t, 1600, price, 0.001)
	})

	t.Run("non-positive values are skipped", func(t *testing.T) {
		o := restore(ptr(0), &order.Snapshot{ListingPriceEUR: -5, Price: 900})

		price, ok := o.PriceEUR()

		require.True(t, ok)
		assert.InDelta(t, 900, price, 0.001)
	})

	t.Run("absent everywhere", func(t *testing.T) {
		o := restore(nil, nil)

		_, ok := o.PriceEUR()

		assert.False(t, ok)
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("legal transition updates status", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.TransitionTo(order.StatusSellerCheckInProgress))
		assert.Equal(t, order.StatusSellerCheckInProgress, o.Status())
	})

	t.Run("self transition is a no-op", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.TransitionTo(order.StatusBooked))
		assert.Equal(t, order.StatusBooked, o.Status())
	})

	t.Run("illegal transition is rejected", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.TransitionTo(order.StatusDelivered)

		require.Error(t, err)
		assert.Equal(t, order.StatusBooked, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("sets status and reason", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Cancel(order.CancelReasonAboveUpperBound))

		assert.Equal(t, order.StatusCancelled, o.Status())
		require.NotNil(t, o.CancelReason())
		assert.Equal(t, order.CancelReasonAboveUpperBound, *o.CancelReason())
	})

	t.Run("terminal order cannot be cancelled again with new reason", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), "ORD-3001", "delivered", nil,
			time.Now().UTC(), nil, nil, nil, nil,
		)
		require.NoError(t, err)

		require.Error(t, o.Cancel(order.CancelReasonOther))
		assert.Nil(t, o.CancelReason())
	})
}

func TestOrder_AssignAndClearManager(t *testing.T) {
	o := newTestOrder(t)
	managerID := kernel.NewUUID()

	require.NoError(t, o.Assign(managerID))
	require.NotNil(t, o.Manager())
	assert.True(t, o.Manager().IsEqual(managerID))

	require.Error(t, o.Assign(kernel.UUID{}), "zero manager id is rejected")

	o.ClearManager()
	assert.Nil(t, o.Manager())
}
