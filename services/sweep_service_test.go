package services

import (
	"testing"
	"time"

	"hotel-reservation-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedReservation(t *testing.T, db *gorm.DB, code string, blockID *uint, age time.Duration) models.Reservation {
	t.Helper()
	r := models.Reservation{
		ReferenceCode:  code,
		CustomerID:     1,
		RoomID:         1,
		BlockBookingID: blockID,
		CheckInDate:    time.Now().UTC().AddDate(0, 0, 7),
		CheckOutDate:   time.Now().UTC().AddDate(0, 0, 9),
		Status:         models.ReservationStatusReserved,
		PaymentStatus:  models.PaymentStatusUnpaid,
		CreatedAt:      time.Now().UTC().Add(-age),
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func TestRunOnceCancelsStaleStandaloneReservations(t *testing.T) {
	db := newTestDB(t)
	svc := NewSweepService(db, 24*time.Hour)

	stale := seedReservation(t, db, "RSV-STALE00001", nil, 48*time.Hour)
	fresh := seedReservation(t, db, "RSV-FRESH00001", nil, time.Hour)

	swept, err := svc.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, int64(1), swept)

	var got models.Reservation
	require.NoError(t, db.First(&got, stale.ID).Error)
	assert.Equal(t, models.ReservationStatusCancelled, got.Status)
	assert.NotNil(t, got.CancelledAt)

	got = models.Reservation{}
	require.NoError(t, db.First(&got, fresh.ID).Error)
	assert.Equal(t, models.ReservationStatusReserved, got.Status)
}

func TestRunOnceLeavesChildrenOfLiveBlocksAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewSweepService(db, 24*time.Hour)

	block := models.BlockBooking{
		ReferenceCode: "BLK-FRESH00001",
		CustomerID:    1,
		Status:        models.BlockBookingStatusPending,
	}
	require.NoError(t, db.Create(&block).Error)
	// an old unpaid child must survive as long as its block is not stale
	child := seedReservation(t, db, "RSV-CHILD00001", &block.ID, 48*time.Hour)

	swept, err := svc.RunOnce()
	require.NoError(t, err)
	assert.Zero(t, swept)

	var got models.Reservation
	require.NoError(t, db.First(&got, child.ID).Error)
	assert.Equal(t, models.ReservationStatusReserved, got.Status)

	var gotBlock models.BlockBooking
	require.NoError(t, db.First(&gotBlock, block.ID).Error)
	assert.Equal(t, models.BlockBookingStatusPending, gotBlock.Status)
}

func TestRunOnceSweepsStaleBlocksWithTheirChildren(t *testing.T) {
	db := newTestDB(t)
	svc := NewSweepService(db, 24*time.Hour)

	block := models.BlockBooking{
		ReferenceCode: "BLK-STALE00001",
		CustomerID:    1,
		Status:        models.BlockBookingStatusPending,
		CreatedAt:     time.Now().UTC().Add(-48 * time.Hour),
	}
	require.NoError(t, db.Create(&block).Error)
	childA := seedReservation(t, db, "RSV-CHILD0000A", &block.ID, 48*time.Hour)
	childB := seedReservation(t, db, "RSV-CHILD0000B", &block.ID, 48*time.Hour)

	swept, err := svc.RunOnce()
	require.NoError(t, err)
	assert.Equal(t, int64(2), swept)

	var gotBlock models.BlockBooking
	require.NoError(t, db.First(&gotBlock, block.ID).Error)
	assert.Equal(t, models.BlockBookingStatusCancelled, gotBlock.Status)
	assert.NotNil(t, gotBlock.CancelledAt)

	for _, id := range []uint{childA.ID, childB.ID} {
		var got models.Reservation
		require.NoError(t, db.First(&got, id).Error)
		assert.Equal(t, models.ReservationStatusCancelled, got.Status)
	}
}
