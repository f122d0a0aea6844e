package utils

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Block-booking volume discount: flat 15% once the booking covers at least
// 3 rooms.
const BlockDiscountMinRooms = 3

var blockDiscountPercent = decimal.NewFromInt(15)

// Cancellation of a block booking needs at least 7 full days of notice
// before check-in.
const BlockCancellationNoticeDays = 7

var (
	ErrAmountPaidTooLow      = errors.New("amount paid cannot be less than total amount")
	ErrTransactionIDRequired = errors.New("transaction id is required for credit-card payments")
	ErrUnknownPaymentMethod  = errors.New("unknown payment method")
)

type DiscountResult struct {
	Eligible        bool            `json:"eligible"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	DiscountAmount  decimal.Decimal `json:"discount_amount"`
	FinalAmount     decimal.Decimal `json:"final_amount"`
	Savings         decimal.Decimal `json:"savings"`
}

// CalculateBlockDiscount applies the volume discount table to an original
// amount. Amounts are rounded to 2 decimal places.
func CalculateBlockDiscount(totalRooms int, originalAmount decimal.Decimal) DiscountResult {
	if totalRooms < BlockDiscountMinRooms {
		return DiscountResult{
			Eligible:        false,
			DiscountPercent: decimal.Zero,
			DiscountAmount:  decimal.Zero,
			FinalAmount:     originalAmount,
			Savings:         decimal.Zero,
		}
	}

	discount := originalAmount.Mul(blockDiscountPercent).Div(decimal.NewFromInt(100)).Round(2)
	return DiscountResult{
		Eligible:        true,
		DiscountPercent: blockDiscountPercent,
		DiscountAmount:  discount,
		FinalAmount:     originalAmount.Sub(discount),
		Savings:         discount,
	}
}

// DaysUntilCheckIn returns the number of days until check-in, rounded up,
// so a check-in exactly 7*24h away counts as 7 days.
func DaysUntilCheckIn(checkIn, now time.Time) int {
	diff := checkIn.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// CanCancelBlockBooking reports whether the cancellation notice window is
// still open.
func CanCancelBlockBooking(checkIn, now time.Time) bool {
	return DaysUntilCheckIn(checkIn, now) >= BlockCancellationNoticeDays
}

type ReconcileResult struct {
	PaymentMethod string          `json:"payment_method"`
	AmountPaid    decimal.Decimal `json:"amount_paid"`
	ChangeAmount  decimal.Decimal `json:"change_amount"`
	TransactionID string          `json:"transaction_id,omitempty"`
}

// ReconcilePayment validates a payment against the total due.
// Card payments require a transaction reference and are force-set to the
// exact total (no overpayment concept for card). Cash may overpay, yielding
// change. Underpayment always fails.
func ReconcilePayment(method string, amountPaid, totalAmount decimal.Decimal, transactionID string) (ReconcileResult, error) {
	switch method {
	case "credit-card":
		if strings.TrimSpace(transactionID) == "" {
			return ReconcileResult{}, ErrTransactionIDRequired
		}
		if amountPaid.LessThan(totalAmount) {
			return ReconcileResult{}, ErrAmountPaidTooLow
		}
		return ReconcileResult{
			PaymentMethod: method,
			AmountPaid:    totalAmount,
			ChangeAmount:  decimal.Zero,
			TransactionID: strings.TrimSpace(transactionID),
		}, nil

	case "cash":
		if amountPaid.LessThan(totalAmount) {
			return ReconcileResult{}, ErrAmountPaidTooLow
		}
		return ReconcileResult{
			PaymentMethod: method,
			AmountPaid:    amountPaid,
			ChangeAmount:  amountPaid.Sub(totalAmount),
		}, nil

	default:
		return ReconcileResult{}, ErrUnknownPaymentMethod
	}
}
