package controllers

import (
	"net/http"

	"hotel-reservation-backend/services"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Svc *services.DashboardService
}

func NewDashboardController(svc *services.DashboardService) *DashboardController {
	return &DashboardController{Svc: svc}
}

func (ctrl *DashboardController) Summary(c *gin.Context) {
	summary, err := ctrl.Svc.Summary()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
