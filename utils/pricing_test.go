package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBlockDiscount(t *testing.T) {
	t.Run("three rooms get the volume discount", func(t *testing.T) {
		res := CalculateBlockDiscount(3, decimal.NewFromInt(1000))

		assert.True(t, res.Eligible)
		assert.True(t, res.DiscountPercent.Equal(decimal.NewFromInt(15)))
		assert.True(t, res.DiscountAmount.Equal(decimal.NewFromInt(150)))
		assert.True(t, res.FinalAmount.Equal(decimal.NewFromInt(850)))
		assert.True(t, res.Savings.Equal(decimal.NewFromInt(150)))
	})

	t.Run("two rooms get no discount", func(t *testing.T) {
		res := CalculateBlockDiscount(2, decimal.NewFromInt(1000))

		assert.False(t, res.Eligible)
		assert.True(t, res.DiscountAmount.IsZero())
		assert.True(t, res.FinalAmount.Equal(decimal.NewFromInt(1000)))
	})

	t.Run("discount amount is rounded to cents", func(t *testing.T) {
		res := CalculateBlockDiscount(5, decimal.RequireFromString("999.99"))

		// 15% of 999.99 = 149.9985, rounds to 150.00
		assert.True(t, res.DiscountAmount.Equal(decimal.RequireFromString("150.00")),
			"got %s", res.DiscountAmount)
		assert.True(t, res.FinalAmount.Equal(decimal.RequireFromString("849.99")),
			"got %s", res.FinalAmount)
	})
}

func TestCanCancelBlockBooking(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("eight days out", func(t *testing.T) {
		assert.True(t, CanCancelBlockBooking(now.Add(8*24*time.Hour), now))
	})

	t.Run("exactly seven days out", func(t *testing.T) {
		assert.True(t, CanCancelBlockBooking(now.Add(7*24*time.Hour), now))
	})

	t.Run("six days out is too late", func(t *testing.T) {
		assert.False(t, CanCancelBlockBooking(now.Add(6*24*time.Hour), now))
	})

	t.Run("partial days round up", func(t *testing.T) {
		// 6 days and 1 hour counts as 7 days of notice
		assert.True(t, CanCancelBlockBooking(now.Add(6*24*time.Hour+time.Hour), now))
	})
}

func TestReconcilePayment(t *testing.T) {
	total := decimal.NewFromInt(100)

	t.Run("cash overpayment yields change", func(t *testing.T) {
		res, err := ReconcilePayment("cash", decimal.NewFromInt(120), total, "")
		require.NoError(t, err)

		assert.Equal(t, "cash", res.PaymentMethod)
		assert.True(t, res.AmountPaid.Equal(decimal.NewFromInt(120)))
		assert.True(t, res.ChangeAmount.Equal(decimal.NewFromInt(20)))
	})

	t.Run("cash exact payment has no change", func(t *testing.T) {
		res, err := ReconcilePayment("cash", total, total, "")
		require.NoError(t, err)
		assert.True(t, res.ChangeAmount.IsZero())
	})

	t.Run("cash underpayment fails", func(t *testing.T) {
		_, err := ReconcilePayment("cash", decimal.NewFromInt(99), total, "")
		assert.ErrorIs(t, err, ErrAmountPaidTooLow)
	})

	t.Run("card requires a transaction id", func(t *testing.T) {
		_, err := ReconcilePayment("credit-card", total, total, "  ")
		assert.ErrorIs(t, err, ErrTransactionIDRequired)
	})

	t.Run("card amount is forced to the total", func(t *testing.T) {
		res, err := ReconcilePayment("credit-card", decimal.NewFromInt(150), total, "txn-123")
		require.NoError(t, err)

		assert.True(t, res.AmountPaid.Equal(total))
		assert.True(t, res.ChangeAmount.IsZero())
		assert.Equal(t, "txn-123", res.TransactionID)
	})

	t.Run("card underpayment fails", func(t *testing.T) {
		_, err := ReconcilePayment("credit-card", decimal.NewFromInt(50), total, "txn-123")
		assert.ErrorIs(t, err, ErrAmountPaidTooLow)
	})

	t.Run("unknown method fails", func(t *testing.T) {
		_, err := ReconcilePayment("cheque", total, total, "")
		assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
	})
}
