package ledger_test

import (
	"testing"
	"time"

	"burgercounter/internal/core/domain/model/kernel"
	"burgercounter/internal/core/domain/model/ledger"
	"burgercounter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func TestParseKind(t *testing.T) {
	t.Run("parses_all_wire_names", func(t *testing.T) {
		cases := map[string]ledger.Kind{
			"entry":  ledger.Entry,
			"exit":   ledger.Exit,
			"credit": ledger.Credit,
		}

		for wire, expected := range cases {
			got, err := ledger.ParseKind(wire)
			require.NoError(t, err, wire)
			assert.Equal(t, expected, got)
		}
	})

	t.Run("rejects_unknown_values", func(t *testing.T) {
		for _, wire := range []string{"", "Entry", "withdrawal"} {
			_, err := ledger.ParseKind(wire)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid, wire)
		}
	})
}

func TestNewMovement(t *testing.T) {
	now := time.Now()

	t.Run("creates_order_linked_entry", func(t *testing.T) {
		orderID := kernel.NewUUID()
		m, err := ledger.NewMovement(
			kernel.NewUUID(), &orderID, ledger.Entry, mustMoney(t, "17.00"),
			"Order #1 - X-Burger", now,
		)

		require.NoError(t, err)
		require.NotNil(t, m.OrderID())
		assert.True(t, m.OrderID().IsEqual(orderID))
		assert.Equal(t, ledger.Entry, m.Kind())
		assert.True(t, m.Amount().IsEqual(mustMoney(t, "17.00")))
	})

	t.Run("order_link_is_optional", func(t *testing.T) {
		m, err := ledger.NewMovement(
			kernel.NewUUID(), nil, ledger.Exit, mustMoney(t, "50.00"), "gas refill", now,
		)

		require.NoError(t, err)
		assert.Nil(t, m.OrderID())
	})

	t.Run("rejects_zero_amount", func(t *testing.T) {
		_, err := ledger.NewMovement(
			kernel.NewUUID(), nil, ledger.Entry, kernel.ZeroMoney(), "", now,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_unknown_kind", func(t *testing.T) {
		_, err := ledger.NewMovement(
			kernel.NewUUID(), nil, ledger.KindUnknown, mustMoney(t, "10.00"), "", now,
		)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects_invalid_order_id", func(t *testing.T) {
		var zero kernel.UUID
		_, err := ledger.NewMovement(
			kernel.NewUUID(), &zero, ledger.Entry, mustMoney(t, "10.00"), "", now,
		)
		require.Error(t, err)
	})
}

func TestMovement_Validate(t *testing.T) {
	t.Run("zero_value_fails", func(t *testing.T) {
		var m ledger.Movement
		require.ErrorIs(t, m.Validate(), ledger.ErrMovementIsNotConstructed)
	})
}
