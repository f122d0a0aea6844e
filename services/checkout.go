package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-reservation-backend/models"
	"hotel-reservation-backend/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CheckoutLineItem struct {
	Description   string
	Amount        decimal.Decimal
	ServiceTypeID *uint
}

type CheckoutInput struct {
	PaymentMethod string
	AmountPaid    decimal.Decimal
	TransactionID string
	DueDate       *time.Time
	LineItems     []CheckoutLineItem
}

// Checkout reconciles the payment against everything owed (room total,
// recorded additional charges, extra line items), then atomically writes
// the invoice, transitions the reservation to Checked-Out/Paid and frees
// the room. Underpayment and a missing card transaction reference fail
// validation before anything is written.
func (s *ReservationService) Checkout(id uint, input CheckoutInput) (*models.Invoice, error) {
	if input.PaymentMethod != models.PaymentMethodCash && input.PaymentMethod != models.PaymentMethodCreditCard {
		return nil, validationErrorf("payment_method must be cash or credit-card")
	}

	var invoice models.Invoice

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var r models.Reservation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&r, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if r.Status != models.ReservationStatusCheckedIn {
			return ErrInvalidTransition
		}

		items, subtotal, err := s.buildInvoiceItems(tx, &r, input.LineItems)
		if err != nil {
			return err
		}

		reconciled, err := utils.ReconcilePayment(input.PaymentMethod, input.AmountPaid, subtotal, input.TransactionID)
		if err != nil {
			return validationErrorf(err.Error())
		}

		now := time.Now().UTC()
		invoice = models.Invoice{
			InvoiceNumber: utils.NewReferenceCode("INV"),
			ReservationID: r.ID,
			Subtotal:      subtotal,
			PaymentMethod: reconciled.PaymentMethod,
			AmountPaid:    reconciled.AmountPaid,
			ChangeAmount:  reconciled.ChangeAmount,
			TransactionID: reconciled.TransactionID,
			DueDate:       input.DueDate,
			IssuedAt:      now,
			Items:         items,
		}
		if err := tx.Create(&invoice).Error; err != nil {
			return fmt.Errorf("failed to create invoice: %w", err)
		}

		if err := tx.Model(&r).Updates(map[string]interface{}{
			"status":         models.ReservationStatusCheckedOut,
			"payment_status": models.PaymentStatusPaid,
			"payment_method": reconciled.PaymentMethod,
			"checked_out_at": now,
		}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Room{}).
			Where("id = ?", r.RoomID).
			Update("status", models.RoomStatusAvailable).Error
	})
	if err != nil {
		return nil, err
	}

	var result models.Invoice
	if err := s.DB.Preload("Items").First(&result, invoice.ID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

// buildInvoiceItems assembles the bill: room charge, charges recorded
// during the stay, then the request's extra line items. Items naming a
// service type take their price from the catalogue.
func (s *ReservationService) buildInvoiceItems(tx *gorm.DB, r *models.Reservation, extra []CheckoutLineItem) ([]models.InvoiceItem, decimal.Decimal, error) {
	items := []models.InvoiceItem{{
		Description: fmt.Sprintf("Room %d x %d night(s)", r.RoomID, r.Nights),
		Amount:      r.TotalAmount,
	}}
	subtotal := r.TotalAmount

	charges, err := decodeCharges(r.AdditionalCharges)
	if err != nil {
		return nil, decimal.Zero, err
	}
	for _, ch := range charges {
		items = append(items, models.InvoiceItem{
			Description: ch.Description,
			Amount:      ch.Amount,
		})
		subtotal = subtotal.Add(ch.Amount)
	}

	for _, li := range extra {
		amount := li.Amount
		description := li.Description
		if li.ServiceTypeID != nil {
			var st models.ServiceType
			if err := tx.First(&st, *li.ServiceTypeID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, decimal.Zero, validationErrorf(fmt.Sprintf("service type %d not found", *li.ServiceTypeID))
				}
				return nil, decimal.Zero, err
			}
			if amount.IsZero() {
				amount = st.UnitPrice
			}
			if description == "" {
				description = st.Name
			}
		}
		if description == "" {
			return nil, decimal.Zero, validationErrorf("line item description is required")
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			return nil, decimal.Zero, validationErrorf("line item amount must be positive")
		}
		items = append(items, models.InvoiceItem{
			Description:   description,
			Amount:        amount,
			ServiceTypeID: li.ServiceTypeID,
		})
		subtotal = subtotal.Add(amount)
	}

	return items, subtotal.Round(2), nil
}
