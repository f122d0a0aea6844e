package services

import (
	"log"
	"time"

	"hotel-reservation-backend/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SweepService cancels reservations that were never confirmed (still
// Reserved and unpaid) after the grace period. It runs daily in-process and
// is also exposed through an internal endpoint for an external cron.
type SweepService struct {
	DB    *gorm.DB
	Grace time.Duration
	cron  *cron.Cron
}

func NewSweepService(db *gorm.DB, grace time.Duration) *SweepService {
	if grace <= 0 {
		grace = 24 * time.Hour
	}
	return &SweepService{DB: db, Grace: grace}
}

// StartScheduler runs the sweep every day at 03:00.
func (s *SweepService) StartScheduler() {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc("0 3 * * *", func() {
		if _, err := s.RunOnce(); err != nil {
			log.Printf("auto-cancel sweep failed: %v", err)
		}
	}); err != nil {
		log.Printf("failed to schedule auto-cancel sweep: %v", err)
		return
	}
	s.cron.Start()
	log.Println("auto-cancel sweep scheduled (daily 03:00)")
}

func (s *SweepService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunOnce cancels stale unconfirmed bookings and returns how many
// reservations were swept. Standalone reservations are cancelled directly.
// Block children are never swept on their own: a stale Pending block is
// cancelled together with its children in the same transaction, so a block
// can never stay Pending while its rooms are already released.
// Fire-and-forget: failures are logged and surfaced, never retried.
func (s *SweepService) RunOnce() (int64, error) {
	cutoff := time.Now().UTC().Add(-s.Grace)
	now := time.Now().UTC()

	var swept int64
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		standalone := tx.Model(&models.Reservation{}).
			Where("block_booking_id IS NULL AND status = ? AND payment_status = ? AND created_at < ?",
				models.ReservationStatusReserved, models.PaymentStatusUnpaid, cutoff).
			Updates(map[string]interface{}{
				"status":       models.ReservationStatusCancelled,
				"cancelled_at": now,
			})
		if standalone.Error != nil {
			return standalone.Error
		}
		swept = standalone.RowsAffected

		var staleBlockIDs []uint
		if err := tx.Model(&models.BlockBooking{}).
			Where("status = ? AND created_at < ?", models.BlockBookingStatusPending, cutoff).
			Pluck("id", &staleBlockIDs).Error; err != nil {
			return err
		}
		if len(staleBlockIDs) == 0 {
			return nil
		}

		if err := tx.Model(&models.BlockBooking{}).
			Where("id IN ?", staleBlockIDs).
			Updates(map[string]interface{}{
				"status":       models.BlockBookingStatusCancelled,
				"cancelled_at": now,
			}).Error; err != nil {
			return err
		}
		children := tx.Model(&models.Reservation{}).
			Where("block_booking_id IN ? AND status = ?", staleBlockIDs, models.ReservationStatusReserved).
			Updates(map[string]interface{}{
				"status":       models.ReservationStatusCancelled,
				"cancelled_at": now,
			})
		if children.Error != nil {
			return children.Error
		}
		swept += children.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}

	if swept > 0 {
		log.Printf("auto-cancel sweep: cancelled %d stale reservation(s)", swept)
	}
	return swept, nil
}
