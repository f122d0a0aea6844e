package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reservation statuses. Transitions are one-way:
// Reserved -> Checked-In -> Checked-Out, and Reserved -> Cancelled.
const (
	ReservationStatusReserved   = "Reserved"
	ReservationStatusCheckedIn  = "Checked-In"
	ReservationStatusCheckedOut = "Checked-Out"
	ReservationStatusCancelled  = "Cancelled"
)

const (
	PaymentStatusUnpaid = "Unpaid"
	PaymentStatusPaid   = "Paid"
)

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode  string `gorm:"column:reference_code;uniqueIndex;size:32" json:"reference_code"`
	CustomerID     uint   `gorm:"index;column:customer_id" json:"customer_id"`
	RoomID         uint   `gorm:"index;column:room_id" json:"room_id"`
	BlockBookingID *uint  `gorm:"index;column:block_booking_id" json:"block_booking_id,omitempty"`

	// Half-open stay interval: the room is occupied on [CheckInDate, CheckOutDate).
	CheckInDate  time.Time `gorm:"column:check_in_date;index" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date;index" json:"check_out_date"`
	Nights       int       `gorm:"column:nights" json:"nights"`

	NumberOfGuests  int    `gorm:"column:number_of_guests" json:"number_of_guests"`
	SpecialRequests string `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`

	Status        string `gorm:"column:status;size:32;index" json:"status"`
	PaymentStatus string `gorm:"column:payment_status;size:32;default:Unpaid" json:"payment_status"`
	PaymentMethod string `gorm:"column:payment_method;size:32" json:"payment_method,omitempty"`

	TotalAmount       decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2)" json:"total_amount"`
	AdditionalCharges datatypes.JSON  `gorm:"column:additional_charges" json:"additional_charges,omitempty"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checked_in_at,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checked_out_at,omitempty"`
	CancelledAt  *time.Time `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`

	Customer Customer `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Room     Room     `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}

// AdditionalCharge is one entry of Reservation.AdditionalCharges.
type AdditionalCharge struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
}
