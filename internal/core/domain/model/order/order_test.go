package order_test

import (
	"testing"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/order"
	"burgercounter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(t *testing.T) order.Address {
	t.Helper()
	addr, err := order.NewAddress("", "Rua A", "12", "Centro", "", mustMoney(t, "2.00"))
	require.NoError(t, err)
	return addr
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		validAddress(t),
		order.Cash,
		mustMoney(t, "15.00"),
		"no onions",
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("computes_total_from_item_price_and_fee", func(t *testing.T) {
		o := newTestOrder(t)

		assert.Equal(t, order.Accepted, o.Status())
		assert.True(t, o.ItemPrice().IsEqual(mustMoney(t, "15.00")))
		assert.True(t, o.DeliveryFee().IsEqual(mustMoney(t, "2.00")))
		assert.True(t, o.Total().IsEqual(mustMoney(t, "17.00")))
		assert.Equal(t, 1, o.Version())
	})

	t.Run("total_always_equals_item_price_plus_fee", func(t *testing.T) {
		o := newTestOrder(t)
		assert.True(t, o.Total().IsEqual(o.ItemPrice().Add(o.DeliveryFee())))
	})

	t.Run("rejects_non_positive_item_price", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validAddress(t), order.Cash, kernel.ZeroMoney(), "", time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unconstructed_address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			order.Address{}, order.Cash, mustMoney(t, "15.00"), "", time.Now(),
		)
		require.ErrorIs(t, err, order.ErrAddressIsNotConstructed)
	})

	t.Run("rejects_unknown_payment_method", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validAddress(t), order.PaymentUnknown, mustMoney(t, "15.00"), "", time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("walks_the_full_workflow", func(t *testing.T) {
		o := newTestOrder(t)
		later := o.CreatedAt().Add(time.Minute)

		require.NoError(t, o.ChangeStatus(order.Preparing, later))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery, later))
		require.NoError(t, o.ChangeStatus(order.Completed, later))

		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, 4, o.Version())
		assert.Equal(t, later, o.UpdatedAt())
	})

	t.Run("cancel_from_any_non_terminal_state", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Preparing, time.Now()))
		require.NoError(t, o.ChangeStatus(order.Cancelled, time.Now()))
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("completed_order_rejects_further_transitions", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.ChangeStatus(order.Preparing, time.Now()))
		require.NoError(t, o.ChangeStatus(order.OutForDelivery, time.Now()))
		require.NoError(t, o.ChangeStatus(order.Completed, time.Now()))

		err := o.ChangeStatus(order.Completed, time.Now())
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, 4, o.Version())
	})

	t.Run("illegal_transition_leaves_order_untouched", func(t *testing.T) {
		o := newTestOrder(t)
		before := o.UpdatedAt()

		err := o.ChangeStatus(order.Completed, time.Now().Add(time.Hour))
		require.ErrorIs(t, err, errs.ErrInvalidStatusTransition)
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, 1, o.Version())
		assert.Equal(t, before, o.UpdatedAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now()

	restore := func(t *testing.T, total kernel.Money) (*order.Order, error) {
		t.Helper()
		return order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			validAddress(t), order.Preparing, order.Card,
			mustMoney(t, "15.00"), mustMoney(t, "2.00"), total,
			"", now, now.Add(time.Minute), 2,
		)
	}

	t.Run("restores_stored_state", func(t *testing.T) {
		o, err := restore(t, mustMoney(t, "17.00"))

		require.NoError(t, err)
		assert.Equal(t, order.Preparing, o.Status())
		assert.Equal(t, 2, o.Version())
		assert.True(t, o.Total().IsEqual(mustMoney(t, "17.00")))
	})

	t.Run("rejects_total_that_breaks_the_invariant", func(t *testing.T) {
		_, err := restore(t, mustMoney(t, "18.00"))
		require.ErrorIs(t, err, order.ErrTotalMismatch)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero_value_fails", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
