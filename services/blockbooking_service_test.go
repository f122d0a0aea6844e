package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDedupeIDs(t *testing.T) {
	assert.Equal(t, []uint{1, 2, 3}, dedupeIDs([]uint{1, 2, 2, 3, 1}))
	assert.Equal(t, []uint{5}, dedupeIDs([]uint{0, 5, 0}))
	assert.Empty(t, dedupeIDs([]uint{0}))
	assert.Empty(t, dedupeIDs(nil))
}

func TestConfirmRequiresKnownPaymentMethod(t *testing.T) {
	svc := NewBlockBookingService(newTestDB(t))

	_, err := svc.Confirm(1, ConfirmBlockBookingInput{
		PaymentMethod: "cheque",
		AmountPaid:    decimal.NewFromInt(1000),
	})
	assert.True(t, IsValidation(err))
}
