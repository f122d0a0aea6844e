package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ServiceType is a billable extra (minibar, laundry, spa) referenced by
// invoice line items and additional charges.
type ServiceType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string          `gorm:"size:150;uniqueIndex" json:"name"`
	Description string          `gorm:"size:255" json:"description"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:decimal(10,2)" json:"unit_price"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
