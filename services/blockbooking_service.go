package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlockBookingService struct {
	DB *gorm.DB
}

func NewBlockBookingService(db *gorm.DB) *BlockBookingService {
	return &BlockBookingService{DB: db}
}

type CreateBlockBookingInput struct {
	CustomerID      uint
	RoomIDs         []uint
	CheckIn         string
	CheckOut        string
	NumberOfGuests  int
	SpecialRequests string
}

// CreateBlockBooking reserves every requested room for the range in one
// transaction, applying the volume discount when the room count qualifies.
// Each room becomes a child reservation so regular availability checks see
// block-booked rooms too. Any single unavailable room fails the whole block.
func (s *BlockBookingService) CreateBlockBooking(input CreateBlockBookingInput) (*models.BlockBooking, error) {
	if input.CustomerID == 0 || len(input.RoomIDs) == 0 || input.CheckIn == "" || input.CheckOut == "" {
		return nil, validationErrorf("customer_id, room_ids, check_in and check_out are required")
	}

	roomIDs := dedupeIDs(input.RoomIDs)
	checkIn, checkOut, err := ParseStayDates(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}
	if err := ValidateStay(checkIn, checkOut, input.NumberOfGuests); err != nil {
		return nil, err
	}

	var customer models.Customer
	if err := s.DB.First(&customer, input.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("db error checking customer: %w", err)
	}

	var rooms []models.Room
	if err := s.DB.Where("id IN ?", roomIDs).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("db error loading rooms: %w", err)
	}
	if len(rooms) != len(roomIDs) {
		return nil, ErrRoomNotFound
	}

	// Advisory availability pass over each room before starting the write.
	for _, room := range rooms {
		busy, err := roomHasOverlap(s.DB, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, fmt.Errorf("availability check failed: %w", err)
		}
		if busy {
			return nil, ErrRoomUnavailable
		}
	}

	nights := utils.Nights(checkIn, checkOut)
	original := decimal.Zero
	for _, room := range rooms {
		original = original.Add(room.PricePerNight.Mul(decimal.NewFromInt(int64(nights))))
	}
	original = original.Round(2)
	discount := utils.CalculateBlockDiscount(len(rooms), original)

	block := models.BlockBooking{
		ReferenceCode:   utils.NewReferenceCode("BLK"),
		CustomerID:      customer.ID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Nights:          nights,
		TotalRooms:      len(rooms),
		NumberOfGuests:  input.NumberOfGuests,
		SpecialRequests: input.SpecialRequests,
		OriginalAmount:  original,
		DiscountPercent: discount.DiscountPercent,
		DiscountAmount:  discount.DiscountAmount,
		FinalAmount:     discount.FinalAmount,
		Status:          models.BlockBookingStatusPending,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the rooms, re-check all of them, then insert block + children.
		var locked []models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", roomIDs).Find(&locked).Error; err != nil {
			return err
		}
		for _, room := range locked {
			busy, err := roomHasOverlap(tx, room.ID, checkIn, checkOut)
			if err != nil {
				return err
			}
			if busy {
				return ErrRoomUnavailable
			}
		}

		if err := tx.Create(&block).Error; err != nil {
			return fmt.Errorf("failed to create block booking: %w", err)
		}

		for _, room := range locked {
			child := models.Reservation{
				ReferenceCode:   utils.NewReferenceCode("RSV"),
				CustomerID:      customer.ID,
				RoomID:          room.ID,
				BlockBookingID:  &block.ID,
				CheckInDate:     checkIn,
				CheckOutDate:    checkOut,
				Nights:          nights,
				NumberOfGuests:  input.NumberOfGuests,
				SpecialRequests: input.SpecialRequests,
				Status:          models.ReservationStatusReserved,
				PaymentStatus:   models.PaymentStatusUnpaid,
				TotalAmount:     room.PricePerNight.Mul(decimal.NewFromInt(int64(nights))).Round(2),
			}
			if err := tx.Create(&child).Error; err != nil {
				return fmt.Errorf("failed to reserve room %d: %w", room.ID, err)
			}
		}
		return nil
	})
	if txErr != nil {
		if errors.Is(txErr, ErrRoomUnavailable) {
			return nil, ErrRoomUnavailable
		}
		return nil, txErr
	}

	return s.GetByID(block.ID)
}

func (s *BlockBookingService) GetAll() ([]models.BlockBooking, error) {
	var list []models.BlockBooking
	if err := s.DB.
		Preload("Customer").
		Preload("Reservations.Room").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve block bookings: %w", err)
	}
	return list, nil
}

func (s *BlockBookingService) GetByID(id uint) (*models.BlockBooking, error) {
	var b models.BlockBooking
	if err := s.DB.
		Preload("Customer").
		Preload("Reservations.Room").
		First(&b, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockBookingNotFound
		}
		return nil, fmt.Errorf("failed to retrieve block booking: %w", err)
	}
	return &b, nil
}

type ConfirmBlockBookingInput struct {
	PaymentMethod string
	AmountPaid    decimal.Decimal
	TransactionID string
}

// Confirm moves a block booking from Pending to Confirmed, reconciling the
// payment against the discounted final amount and recording it on the block.
// Only children still Reserved flip to paid; a child cancelled in the
// meantime stays cancelled.
func (s *BlockBookingService) Confirm(id uint, input ConfirmBlockBookingInput) (*models.BlockBooking, error) {
	if input.PaymentMethod != models.PaymentMethodCash && input.PaymentMethod != models.PaymentMethodCreditCard {
		return nil, validationErrorf("payment_method must be cash or credit-card")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var b models.BlockBooking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBlockBookingNotFound
			}
			return err
		}
		if b.Status != models.BlockBookingStatusPending {
			return ErrInvalidTransition
		}

		reconciled, err := utils.ReconcilePayment(input.PaymentMethod, input.AmountPaid, b.FinalAmount, input.TransactionID)
		if err != nil {
			return validationErrorf(err.Error())
		}

		now := time.Now().UTC()
		if err := tx.Model(&b).Updates(map[string]interface{}{
			"status":         models.BlockBookingStatusConfirmed,
			"confirmed_at":   now,
			"payment_method": reconciled.PaymentMethod,
			"amount_paid":    reconciled.AmountPaid,
			"change_amount":  reconciled.ChangeAmount,
			"transaction_id": reconciled.TransactionID,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Reservation{}).
			Where("block_booking_id = ? AND status = ?", b.ID, models.ReservationStatusReserved).
			Updates(map[string]interface{}{
				"payment_status": models.PaymentStatusPaid,
				"payment_method": reconciled.PaymentMethod,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Cancel releases the whole block, allowed only while at least 7 days
// remain before check-in.
func (s *BlockBookingService) Cancel(id uint) (*models.BlockBooking, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var b models.BlockBooking
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&b, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBlockBookingNotFound
			}
			return err
		}
		if b.Status == models.BlockBookingStatusCancelled {
			return ErrInvalidTransition
		}
		if !utils.CanCancelBlockBooking(b.CheckInDate, time.Now().UTC()) {
			return ErrCancellationWindowClosed
		}

		now := time.Now().UTC()
		if err := tx.Model(&b).Updates(map[string]interface{}{
			"status":       models.BlockBookingStatusCancelled,
			"cancelled_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Reservation{}).
			Where("block_booking_id = ? AND status = ?", b.ID, models.ReservationStatusReserved).
			Updates(map[string]interface{}{
				"status":       models.ReservationStatusCancelled,
				"cancelled_at": now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func dedupeIDs(ids []uint) []uint {
	seen := map[uint]struct{}{}
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
