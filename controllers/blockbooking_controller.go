package controllers

import (
	"net/http"
	"strconv"

	"hotel-reservation-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateBlockBookingRequest struct {
	AgencyID        uint   `json:"agency_id" binding:"required"`
	RoomIDs         []uint `json:"room_ids" binding:"required,min=1"`
	CheckIn         string `json:"check_in" binding:"required"`
	CheckOut        string `json:"check_out" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required"`
	SpecialRequests string `json:"special_requests"`
}

type ConfirmBlockBookingRequest struct {
	PaymentMethod string          `json:"payment_method" binding:"required"`
	AmountPaid    decimal.Decimal `json:"amount_paid" binding:"required"`
	TransactionID string          `json:"transaction_id"`
}

type BlockBookingController struct {
	Svc *services.BlockBookingService
}

func NewBlockBookingController(svc *services.BlockBookingService) *BlockBookingController {
	return &BlockBookingController{Svc: svc}
}

func blockBookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid block booking id"})
		return 0, false
	}
	return uint(id), true
}

func (ctrl *BlockBookingController) Create(c *gin.Context) {
	var payload CreateBlockBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	block, err := ctrl.Svc.CreateBlockBooking(services.CreateBlockBookingInput{
		CustomerID:      payload.AgencyID,
		RoomIDs:         payload.RoomIDs,
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
		"message":       "block booking created",
		"block_booking": block,
	})
}

func (ctrl *BlockBookingController) List(c *gin.Context) {
	blocks, err := ctrl.Svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocks)
}

func (ctrl *BlockBookingController) Detail(c *gin.Context) {
	id, ok := blockBookingID(c)
	if !ok {
		return
	}
	block, err := ctrl.Svc.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, block)
}

func (ctrl *BlockBookingController) Confirm(c *gin.Context) {
	id, ok := blockBookingID(c)
	if !ok {
		return
	}

	var payload ConfirmBlockBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	block, err := ctrl.Svc.Confirm(id, services.ConfirmBlockBookingInput{
		PaymentMethod: payload.PaymentMethod,
		AmountPaid:    payload.AmountPaid,
		TransactionID: payload.TransactionID,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "block booking confirmed", "block_booking": block})
}

func (ctrl *BlockBookingController) Cancel(c *gin.Context) {
	id, ok := blockBookingID(c)
	if !ok {
		return
	}
	block, err := ctrl.Svc.Cancel(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "block booking cancelled", "block_booking": block})
}
