package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-reservation-backend/services"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto the HTTP taxonomy:
// validation 400, not found 404, availability/state conflicts 409,
// everything else 500 with the detail kept server-side.
func respondServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})

	case errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrBlockBookingNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, services.ErrRoomUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "room is not available for the requested dates"})

	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "operation not allowed in the current status"})

	case errors.Is(err, services.ErrCancellationWindowClosed):
		c.JSON(http.StatusConflict, gin.H{"error": "cancellation window closed: less than 7 days before check-in"})

	default:
		log.Printf("internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
