package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Block booking statuses.
const (
	BlockBookingStatusPending   = "Pending"
	BlockBookingStatusConfirmed = "Confirmed"
	BlockBookingStatusCancelled = "Cancelled"
)

// BlockBooking reserves several rooms for one agency customer in a single
// transaction. Each room gets its own child Reservation row so availability
// checks see block-booked rooms the same way as regular ones.
type BlockBooking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ReferenceCode string `gorm:"column:reference_code;uniqueIndex;size:32" json:"reference_code"`
	CustomerID    uint   `gorm:"index;column:customer_id" json:"customer_id"`

	CheckInDate  time.Time `gorm:"column:check_in_date" json:"check_in_date"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"check_out_date"`
	Nights       int       `gorm:"column:nights" json:"nights"`

	TotalRooms      int    `gorm:"column:total_rooms" json:"total_rooms"`
	NumberOfGuests  int    `gorm:"column:number_of_guests" json:"number_of_guests"`
	SpecialRequests string `gorm:"column:special_requests;type:text" json:"special_requests,omitempty"`

	OriginalAmount  decimal.Decimal `gorm:"column:original_amount;type:decimal(10,2)" json:"original_amount"`
	DiscountPercent decimal.Decimal `gorm:"column:discount_percent;type:decimal(5,2)" json:"discount_percent"`
	DiscountAmount  decimal.Decimal `gorm:"column:discount_amount;type:decimal(10,2)" json:"discount_amount"`
	FinalAmount     decimal.Decimal `gorm:"column:final_amount;type:decimal(10,2)" json:"final_amount"`

	PaymentMethod string          `gorm:"column:payment_method;size:32" json:"payment_method,omitempty"`
	AmountPaid    decimal.Decimal `gorm:"column:amount_paid;type:decimal(10,2)" json:"amount_paid"`
	ChangeAmount  decimal.Decimal `gorm:"column:change_amount;type:decimal(10,2)" json:"change_amount"`
	TransactionID string          `gorm:"column:transaction_id;size:128" json:"transaction_id,omitempty"`

	Status      string     `gorm:"column:status;size:32;index" json:"status"`
	ConfirmedAt *time.Time `gorm:"column:confirmed_at" json:"confirmed_at,omitempty"`
	CancelledAt *time.Time `gorm:"column:cancelled_at" json:"cancelled_at,omitempty"`

	Customer     Customer      `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:BlockBookingID" json:"reservations"`
}
