package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-reservation-backend/models"

	"gorm.io/gorm"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

func (s *CustomerService) Create(customer *models.Customer) error {
	customer.FullName = strings.TrimSpace(customer.FullName)
	customer.Email = strings.TrimSpace(customer.Email)
	if customer.FullName == "" {
		return validationErrorf("full_name is required")
	}
	if customer.Email == "" {
		return validationErrorf("email is required")
	}
	return s.DB.Create(customer).Error
}

func (s *CustomerService) GetAll() ([]models.Customer, error) {
	var list []models.Customer
	if err := s.DB.Order("full_name").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve customers: %w", err)
	}
	return list, nil
}

func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.DB.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve customer: %w", err)
	}
	return &c, nil
}
