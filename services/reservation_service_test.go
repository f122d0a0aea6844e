package services

import (
	"testing"
	"time"

	"hotel-reservation-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStayDates(t *testing.T) {
	t.Run("plain dates", func(t *testing.T) {
		ci, co, err := ParseStayDates("2026-03-10", "2026-03-12")
		require.NoError(t, err)

		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), ci)
		assert.Equal(t, time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC), co)
	})

	t.Run("rfc3339 is truncated to midnight", func(t *testing.T) {
		ci, co, err := ParseStayDates("2026-03-10T15:04:05Z", "2026-03-12T09:30:00Z")
		require.NoError(t, err)

		assert.Equal(t, 0, ci.Hour())
		assert.Equal(t, 0, co.Hour())
	})

	t.Run("garbage fails validation", func(t *testing.T) {
		_, _, err := ParseStayDates("10/03/2026", "2026-03-12")
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	})
}

func TestValidateStay(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("valid stay", func(t *testing.T) {
		assert.NoError(t, ValidateStay(checkIn, checkOut, 2))
	})

	t.Run("zero dates rejected", func(t *testing.T) {
		err := ValidateStay(time.Time{}, checkOut, 2)
		assert.True(t, IsValidation(err))
	})

	t.Run("checkout before checkin rejected", func(t *testing.T) {
		err := ValidateStay(checkOut, checkIn, 2)
		assert.True(t, IsValidation(err))
	})

	t.Run("same-day stay rejected", func(t *testing.T) {
		err := ValidateStay(checkIn, checkIn, 2)
		assert.True(t, IsValidation(err))
	})

	t.Run("zero guests rejected", func(t *testing.T) {
		err := ValidateStay(checkIn, checkOut, 0)
		assert.True(t, IsValidation(err))
	})
}

func TestRoomHasOverlap(t *testing.T) {
	db := newTestDB(t)
	mar := func(d int) time.Time { return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, db.Create(&models.Reservation{
		ReferenceCode: "RSV-OVERLAP001",
		CustomerID:    1,
		RoomID:        1,
		CheckInDate:   mar(10),
		CheckOutDate:  mar(12),
		Status:        models.ReservationStatusReserved,
		PaymentStatus: models.PaymentStatusUnpaid,
	}).Error)
	require.NoError(t, db.Create(&models.Reservation{
		ReferenceCode: "RSV-CANCELLED1",
		CustomerID:    1,
		RoomID:        2,
		CheckInDate:   mar(10),
		CheckOutDate:  mar(12),
		Status:        models.ReservationStatusCancelled,
		PaymentStatus: models.PaymentStatusUnpaid,
	}).Error)

	t.Run("intersecting range conflicts", func(t *testing.T) {
		busy, err := roomHasOverlap(db, 1, mar(11), mar(13))
		require.NoError(t, err)
		assert.True(t, busy)
	})

	t.Run("adjacent range is free", func(t *testing.T) {
		busy, err := roomHasOverlap(db, 1, mar(12), mar(14))
		require.NoError(t, err)
		assert.False(t, busy)
	})

	t.Run("cancelled bookings do not block", func(t *testing.T) {
		busy, err := roomHasOverlap(db, 2, mar(10), mar(12))
		require.NoError(t, err)
		assert.False(t, busy)
	})

	t.Run("other rooms unaffected", func(t *testing.T) {
		busy, err := roomHasOverlap(db, 3, mar(10), mar(12))
		require.NoError(t, err)
		assert.False(t, busy)
	})
}

func TestDecodeCharges(t *testing.T) {
	t.Run("empty payload is no charges", func(t *testing.T) {
		charges, err := decodeCharges(nil)
		require.NoError(t, err)
		assert.Empty(t, charges)
	})

	t.Run("round trip", func(t *testing.T) {
		charges, err := decodeCharges([]byte(`[{"description":"Minibar","amount":"150","date":"2026-03-11T00:00:00Z"}]`))
		require.NoError(t, err)
		require.Len(t, charges, 1)
		assert.Equal(t, "Minibar", charges[0].Description)
		assert.True(t, charges[0].Amount.Equal(decimal.NewFromInt(150)))
	})

	t.Run("corrupt payload fails", func(t *testing.T) {
		_, err := decodeCharges([]byte(`{not json`))
		assert.Error(t, err)
	})
}
