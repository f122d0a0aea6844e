package models

import (
	"gorm.io/gorm"
)

// Customer is either an individual guest or an agency booking blocks of
// rooms on behalf of its clients.
type Customer struct {
	gorm.Model

	FullName string `gorm:"size:255" json:"full_name"`
	Email    string `gorm:"size:150;index" json:"email"`
	Phone    string `gorm:"size:50" json:"phone,omitempty"`
	IsAgency bool   `gorm:"column:is_agency;default:false" json:"is_agency"`
}
