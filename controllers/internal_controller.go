package controllers

import (
	"net/http"

	"hotel-reservation-backend/services"

	"github.com/gin-gonic/gin"
)

// SweepController exposes the auto-cancel sweep to external schedulers.
// The same logic runs in-process on a cron; this endpoint lets an
// infrastructure cron trigger it on demand.
type SweepController struct {
	Svc *services.SweepService
}

func NewSweepController(svc *services.SweepService) *SweepController {
	return &SweepController{Svc: svc}
}

func (ctrl *SweepController) RunSweep(c *gin.Context) {
	cancelled, err := ctrl.Svc.RunOnce()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sweep failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": cancelled})
}
