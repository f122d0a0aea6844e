package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Room physical statuses shown in the back office. Availability for a date
// range is never derived from this field; it is computed against the
// reservation set.
const (
	RoomStatusAvailable   = "Available"
	RoomStatusOccupied    = "Occupied"
	RoomStatusMaintenance = "Maintenance"
)

type Room struct {
	gorm.Model

	// Nullable so a payload without a valid FK doesn't insert 0.
	RoomTypeID *uint  `json:"room_type_id,omitempty" gorm:"column:room_type_id"`
	RoomNumber string `json:"room_number" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`

	Floor         string          `json:"floor" gorm:"type:varchar(10)"`
	Status        string          `json:"status" gorm:"size:32;default:Available"`
	PricePerNight decimal.Decimal `json:"price_per_night" gorm:"column:price_per_night;type:decimal(10,2)"`
	MaxOccupancy  int             `json:"max_occupancy" gorm:"column:max_occupancy"`
	Description   string          `json:"description" gorm:"type:text"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`
}
