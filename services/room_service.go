package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-reservation-backend/models"

	"gorm.io/gorm"
)

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func (s *RoomService) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	if err := s.DB.Preload("RoomType").Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	return rooms, nil
}

// AvailableRooms returns rooms with no non-cancelled reservation
// overlapping [checkIn, checkOut). Rooms under maintenance are excluded.
func (s *RoomService) AvailableRooms(checkIn, checkOut string) ([]models.Room, error) {
	ci, co, err := ParseStayDates(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !co.After(ci) {
		return nil, validationErrorf("check_out must be after check_in")
	}

	var rooms []models.Room
	err = s.DB.Preload("RoomType").
		Where("status <> ?", models.RoomStatusMaintenance).
		Where(`id NOT IN (
			SELECT room_id FROM reservations
			WHERE deleted_at IS NULL
			  AND status <> ?
			  AND check_in_date < ? AND check_out_date > ?
		)`, models.ReservationStatusCancelled, co, ci).
		Order("room_number").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) Create(room *models.Room) error {
	room.RoomNumber = strings.TrimSpace(room.RoomNumber)
	if room.RoomNumber == "" {
		return validationErrorf("room_number is required")
	}
	if room.RoomTypeID != nil {
		var rt models.RoomType
		if err := s.DB.First(&rt, *room.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return validationErrorf("invalid room_type_id")
			}
			return err
		}
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	return s.DB.Create(room).Error
}

func (s *RoomService) Update(id string, fields map[string]interface{}) error {
	// Protect immutable columns.
	delete(fields, "id")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	result := s.DB.Model(&models.Room{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (s *RoomService) Delete(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Room{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}
