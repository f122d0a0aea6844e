package services

import (
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

type DashboardSummary struct {
	TotalRooms         int64 `json:"total_rooms"`
	OccupiedRooms      int64 `json:"occupied_rooms"`
	TodayArrivals      int64 `json:"today_arrivals"`
	TodayDepartures    int64 `json:"today_departures"`
	PendingBlocks      int64 `json:"pending_block_bookings"`
	ActiveReservations int64 `json:"active_reservations"`
}

// Summary aggregates the counts the back-office dashboard shows.
func (s *DashboardService) Summary() (*DashboardSummary, error) {
	today := utils.BeginningOfDay(time.Now().UTC())
	tomorrow := today.AddDate(0, 0, 1)

	var out DashboardSummary
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&out.TotalRooms, s.DB.Model(&models.Room{})},
		{&out.OccupiedRooms, s.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusOccupied)},
		{&out.TodayArrivals, s.DB.Model(&models.Reservation{}).
			Where("status = ? AND check_in_date >= ? AND check_in_date < ?",
				models.ReservationStatusReserved, today, tomorrow)},
		{&out.TodayDepartures, s.DB.Model(&models.Reservation{}).
			Where("status = ? AND check_out_date >= ? AND check_out_date < ?",
				models.ReservationStatusCheckedIn, today, tomorrow)},
		{&out.PendingBlocks, s.DB.Model(&models.BlockBooking{}).
			Where("status = ?", models.BlockBookingStatusPending)},
		{&out.ActiveReservations, s.DB.Model(&models.Reservation{}).
			Where("status IN ?", []string{models.ReservationStatusReserved, models.ReservationStatusCheckedIn})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, err
		}
	}
	return &out, nil
}
