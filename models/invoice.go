package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCash       = "cash"
	PaymentMethodCreditCard = "credit-card"
)

type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	InvoiceNumber string `gorm:"column:invoice_number;uniqueIndex;size:64" json:"invoice_number"`
	ReservationID uint   `gorm:"index;column:reservation_id" json:"reservation_id"`

	Subtotal      decimal.Decimal `gorm:"column:subtotal;type:decimal(10,2)" json:"subtotal"`
	PaymentMethod string          `gorm:"column:payment_method;size:32" json:"payment_method"`
	AmountPaid    decimal.Decimal `gorm:"column:amount_paid;type:decimal(10,2)" json:"amount_paid"`
	ChangeAmount  decimal.Decimal `gorm:"column:change_amount;type:decimal(10,2)" json:"change_amount"`
	TransactionID string          `gorm:"column:transaction_id;size:128" json:"transaction_id,omitempty"`

	DueDate  *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	IssuedAt time.Time  `gorm:"column:issued_at" json:"issued_at"`

	Items       []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items"`
	Reservation Reservation   `gorm:"foreignKey:ReservationID;references:ID" json:"reservation,omitempty"`
}

type InvoiceItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"index;column:invoice_id" json:"invoice_id"`

	Description   string          `gorm:"column:description;size:255" json:"description"`
	Amount        decimal.Decimal `gorm:"column:amount;type:decimal(10,2)" json:"amount"`
	ServiceTypeID *uint           `gorm:"column:service_type_id" json:"service_type_id,omitempty"`
}
