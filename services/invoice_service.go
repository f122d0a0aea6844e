package services

import (
	"errors"
	"fmt"

	"hotel-reservation-backend/models"

	"gorm.io/gorm"
)

type InvoiceService struct {
	DB *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{DB: db}
}

func (s *InvoiceService) GetAll() ([]models.Invoice, error) {
	var list []models.Invoice
	if err := s.DB.
		Preload("Items").
		Preload("Reservation.Customer").
		Order("issued_at DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}
	return list, nil
}

func (s *InvoiceService) GetByID(id uint) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.DB.
		Preload("Items").
		Preload("Reservation.Customer").
		Preload("Reservation.Room").
		First(&inv, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to retrieve invoice: %w", err)
	}
	return &inv, nil
}
