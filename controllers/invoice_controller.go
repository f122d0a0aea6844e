package controllers

import (
	"net/http"
	"strconv"

	"hotel-reservation-backend/services"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	Svc *services.InvoiceService
}

func NewInvoiceController(svc *services.InvoiceService) *InvoiceController {
	return &InvoiceController{Svc: svc}
}

func (ctrl *InvoiceController) List(c *gin.Context) {
	invoices, err := ctrl.Svc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func (ctrl *InvoiceController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice id"})
		return
	}

	invoice, err := ctrl.Svc.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}
