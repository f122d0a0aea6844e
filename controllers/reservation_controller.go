package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotel-reservation-backend/services"
	"hotel-reservation-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateReservationRequest struct {
	CustomerID      uint   `json:"customer_id" binding:"required"`
	RoomID          uint   `json:"room_id" binding:"required"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

type AddChargeRequest struct {
	Description string          `json:"description" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        *time.Time      `json:"date"`
}

type CheckoutLineItemRequest struct {
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	ServiceTypeID *uint           `json:"service_type_id"`
}

type CheckoutRequest struct {
	PaymentMethod string                    `json:"payment_method" binding:"required"`
	AmountPaid    decimal.Decimal           `json:"amount_paid" binding:"required"`
	TransactionID string                    `json:"transaction_id"`
	DueDate       *time.Time                `json:"due_date"`
	LineItems     []CheckoutLineItemRequest `json:"line_items"`
}

type ReservationController struct {
	Svc *services.ReservationService
}

func NewReservationController(svc *services.ReservationService) *ReservationController {
	return &ReservationController{Svc: svc}
}

func reservationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid reservation id"})
		return 0, false
	}
	return uint(id), true
}

func (ctrl *ReservationController) Create(c *gin.Context) {
	var payload CreateReservationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	reservation, err := ctrl.Svc.CreateReservation(services.CreateReservationInput{
		CustomerID:      payload.CustomerID,
		RoomID:          payload.RoomID,
		CheckIn:         payload.CheckIn,
		CheckOut:        payload.CheckOut,
		NumberOfGuests:  payload.NumberOfGuests,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "reservation created",
		"reservation": reservation,
	})
}

func (ctrl *ReservationController) List(c *gin.Context) {
	reservations, err := ctrl.Svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func (ctrl *ReservationController) Detail(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	reservation, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (ctrl *ReservationController) CheckIn(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	reservation, err := ctrl.Svc.CheckIn(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "checked in", "reservation": reservation})
}

func (ctrl *ReservationController) Cancel(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}
	reservation, err := ctrl.Svc.Cancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reservation cancelled", "reservation": reservation})
}

func (ctrl *ReservationController) AddCharge(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var payload AddChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date := time.Now().UTC()
	if payload.Date != nil {
		date = utils.BeginningOfDay(*payload.Date)
	}

	reservation, err := ctrl.Svc.AddCharge(id, payload.Description, payload.Amount, date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "charge added", "reservation": reservation})
}

func (ctrl *ReservationController) Checkout(c *gin.Context) {
	id, ok := reservationID(c)
	if !ok {
		return
	}

	var payload CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	items := make([]services.CheckoutLineItem, 0, len(payload.LineItems))
	for _, li := range payload.LineItems {
		items = append(items, services.CheckoutLineItem{
			Description:   li.Description,
			Amount:        li.Amount,
			ServiceTypeID: li.ServiceTypeID,
		})
	}

	invoice, err := ctrl.Svc.Checkout(id, services.CheckoutInput{
		PaymentMethod: payload.PaymentMethod,
		AmountPaid:    payload.AmountPaid,
		TransactionID: payload.TransactionID,
		DueDate:       payload.DueDate,
		LineItems:     items,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "checkout completed", "invoice": invoice})
}
