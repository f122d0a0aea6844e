package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type CreateReservationInput struct {
	CustomerID      uint
	RoomID          uint
	CheckIn         string
	CheckOut        string
	NumberOfGuests  int
	SpecialRequests string
}

// ParseStayDates accepts "2006-01-02" or RFC3339 and truncates to midnight.
func ParseStayDates(checkIn, checkOut string) (time.Time, time.Time, error) {
	parse := func(v string) (time.Time, error) {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return utils.BeginningOfDay(t), nil
		}
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", v)
	}

	ci, err := parse(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, validationErrorf(err.Error())
	}
	co, err := parse(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, validationErrorf(err.Error())
	}
	return ci, co, nil
}

// ValidateStay enforces the local booking constraints in order: dates
// present and well-formed, check-out strictly after check-in, at least one
// guest. The room availability check comes after, against the booking set.
func ValidateStay(checkIn, checkOut time.Time, numberOfGuests int) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return validationErrorf("check_in and check_out are required")
	}
	if !checkOut.After(checkIn) {
		return validationErrorf("check_out must be after check_in")
	}
	if numberOfGuests < 1 {
		return validationErrorf("number_of_guests must be at least 1")
	}
	return nil
}

// roomHasOverlap checks the room's current non-cancelled booking set for an
// intersection with [checkIn, checkOut).
func roomHasOverlap(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := tx.Model(&models.Reservation{}).
		Where("room_id = ? AND status <> ?", roomID, models.ReservationStatusCancelled).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateReservation validates the request, runs an advisory availability
// check, then re-checks and inserts inside one transaction. The pre-check
// is best effort; a concurrent booker losing the race surfaces as
// ErrRoomUnavailable from the transactional re-check.
func (s *ReservationService) CreateReservation(input CreateReservationInput) (*models.Reservation, error) {
	if input.CustomerID == 0 || input.RoomID == 0 || input.CheckIn == "" || input.CheckOut == "" {
		return nil, validationErrorf("customer_id, room_id, check_in and check_out are required")
	}

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

	var room models.Room
	if err := s.DB.First(&room, input.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("db error checking room: %w", err)
	}
	if room.MaxOccupancy > 0 && input.NumberOfGuests > room.MaxOccupancy {
		return nil, validationErrorf(fmt.Sprintf("room %s holds at most %d guests", room.RoomNumber, room.MaxOccupancy))
	}

	// Advisory pre-check so obvious conflicts fail before the write path.
	if busy, err := roomHasOverlap(s.DB, room.ID, checkIn, checkOut); err != nil {
		return nil, fmt.Errorf("availability check failed: %w", err)
	} else if busy {
		return nil, ErrRoomUnavailable
	}

	nights := utils.Nights(checkIn, checkOut)
	total := room.PricePerNight.Mul(decimal.NewFromInt(int64(nights))).Round(2)

	reservation := models.Reservation{
		ReferenceCode:   utils.NewReferenceCode("RSV"),
		CustomerID:      customer.ID,
		RoomID:          room.ID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Nights:          nights,
		NumberOfGuests:  input.NumberOfGuests,
		SpecialRequests: input.SpecialRequests,
		Status:          models.ReservationStatusReserved,
		PaymentStatus:   models.PaymentStatusUnpaid,
		TotalAmount:     total,
	}

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		// Lock the room row so two writers re-check serially, then make the
		// authoritative availability decision inside the transaction.
		var locked models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&locked, room.ID).Error; err != nil {
			return err
		}
		busy, err := roomHasOverlap(tx, room.ID, checkIn, checkOut)
		if err != nil {
			return err
		}
		if busy {
			return ErrRoomUnavailable
		}
		return tx.Create(&reservation).Error
	})
	if txErr != nil {
		if errors.Is(txErr, ErrRoomUnavailable) {
			return nil, ErrRoomUnavailable
		}
		return nil, fmt.Errorf("failed to create reservation: %w", txErr)
	}

	var result models.Reservation
	if err := s.DB.Preload("Customer").Preload("Room.RoomType").First(&result, reservation.ID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var list []models.Reservation
	if err := s.DB.
		Preload("Customer").
		Preload("Room.RoomType").
		Order("created_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reservations: %w", err)
	}
	return list, nil
}

func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	var r models.Reservation
	if err := s.DB.Preload("Customer").Preload("Room.RoomType").First(&r, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to retrieve reservation: %w", err)
	}
	return &r, nil
}

// CheckIn moves a reservation from Reserved to Checked-In and marks the
// room occupied.
func (s *ReservationService) CheckIn(id uint) (*models.Reservation, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var r models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&r, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if r.Status != models.ReservationStatusReserved {
			return ErrInvalidTransition
		}

		now := time.Now().UTC()
		if err := tx.Model(&r).Updates(map[string]interface{}{
			"status":        models.ReservationStatusCheckedIn,
			"checked_in_at": now,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).
			Where("id = ?", r.RoomID).
			Update("status", models.RoomStatusOccupied).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Cancel is only valid from Reserved; Cancelled is terminal.
func (s *ReservationService) Cancel(id uint) (*models.Reservation, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var r models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&r, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if r.Status != models.ReservationStatusReserved {
			return ErrInvalidTransition
		}

		now := time.Now().UTC()
		return tx.Model(&r).Updates(map[string]interface{}{
			"status":       models.ReservationStatusCancelled,
			"cancelled_at": now,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// AddCharge appends an additional charge to a stay that has not checked out.
func (s *ReservationService) AddCharge(id uint, description string, amount decimal.Decimal, date time.Time) (*models.Reservation, error) {
	if description == "" {
		return nil, validationErrorf("description is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, validationErrorf("amount must be positive")
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var r models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&r, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if r.Status == models.ReservationStatusCheckedOut || r.Status == models.ReservationStatusCancelled {
			return ErrInvalidTransition
		}

		charges, err := decodeCharges(r.AdditionalCharges)
		if err != nil {
			return err
		}
		charges = append(charges, models.AdditionalCharge{
			Description: description,
			Amount:      amount,
			Date:        date,
		})
		raw, err := json.Marshal(charges)
		if err != nil {
			return err
		}
		return tx.Model(&r).Update("additional_charges", datatypes.JSON(raw)).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func decodeCharges(raw datatypes.JSON) ([]models.AdditionalCharge, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var charges []models.AdditionalCharge
	if err := json.Unmarshal(raw, &charges); err != nil {
		return nil, fmt.Errorf("corrupt additional_charges payload: %w", err)
	}
	return charges, nil
}
