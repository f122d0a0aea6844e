package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-reservation-backend/controllers"
	"hotel-reservation-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	rc *controllers.ReservationController,
	bbc *controllers.BlockBookingController,
	roomc *controllers.RoomController,
	cc *controllers.CustomerController,
	ic *controllers.InvoiceController,
	dc *controllers.DashboardController,
	sc *controllers.SweepController,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Guest-facing routes, no session required
		api.POST("/reservations", rc.Create)
		api.POST("/customers", cc.Create)
		api.GET("/rooms", roomc.List)
		api.GET("/rooms/availability", roomc.Availability)

		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.GET("/me", middleware.Auth(), controllers.Me)
		}

		staff := api.Group("")
		staff.Use(middleware.Auth())
		{
			reservations := staff.Group("/reservations")
			{
				reservations.GET("", middleware.RequirePermission("reservationManagement.view"), rc.List)
				reservations.GET("/:id", middleware.RequirePermission("reservationManagement.view"), rc.Detail)
				reservations.POST("/:id/check-in", middleware.RequirePermission("reservationManagement.checkIn"), rc.CheckIn)
				reservations.POST("/:id/cancel", middleware.RequirePermission("reservationManagement.cancel"), rc.Cancel)
				reservations.POST("/:id/charges", middleware.RequirePermission("reservationManagement.checkOut"), rc.AddCharge)
				reservations.POST("/:id/checkout", middleware.RequirePermission("reservationManagement.checkOut"), rc.Checkout)
			}

			blocks := staff.Group("/block-bookings")
			{
				blocks.GET("", middleware.RequirePermission("blockBooking.view"), bbc.List)
				blocks.GET("/:id", middleware.RequirePermission("blockBooking.view"), bbc.Detail)
				blocks.POST("", middleware.RequirePermission("blockBooking.create"), bbc.Create)
				blocks.POST("/:id/confirm", middleware.RequirePermission("blockBooking.confirm"), bbc.Confirm)
				blocks.POST("/:id/cancel", middleware.RequirePermission("blockBooking.cancel"), bbc.Cancel)
			}

			rooms := staff.Group("/rooms")
			{
				rooms.POST("", middleware.RequirePermission("roomManagement.create"), roomc.Create)
				rooms.PATCH("/:id", middleware.RequirePermission("roomManagement.edit"), roomc.Update)
				rooms.PUT("/:id", middleware.RequirePermission("roomManagement.edit"), roomc.Update)
				rooms.DELETE("/:id", middleware.RequirePermission("roomManagement.delete"), roomc.Delete)
			}

			roomTypes := staff.Group("/room-types")
			{
				roomTypes.GET("", middleware.RequirePermission("roomManagement.view"), controllers.GetRoomTypes)
				roomTypes.POST("", middleware.RequirePermission("roomManagement.create"), controllers.CreateRoomType)
				roomTypes.DELETE("/:id", middleware.RequirePermission("roomManagement.delete"), controllers.DeleteRoomType)
			}

			customers := staff.Group("/customers")
			{
				customers.GET("", middleware.RequirePermission("customerList.view"), cc.List)
				customers.GET("/:id", middleware.RequirePermission("customerList.view"), cc.Detail)
			}

			invoices := staff.Group("/invoices")
			{
				invoices.GET("", middleware.RequirePermission("invoices.view"), ic.List)
				invoices.GET("/:id", middleware.RequirePermission("invoices.view"), ic.Detail)
			}

			roles := staff.Group("/roles")
			{
				roles.GET("", middleware.RequirePermission("rolesAndPermissions.view"), controllers.GetRoles)
				roles.PUT("/:id/permissions", middleware.RequirePermission("rolesAndPermissions.edit"), controllers.UpdateRolePermissions)
			}

			admins := staff.Group("/admins")
			{
				admins.GET("", middleware.RequirePermission("rolesAndPermissions.view"), controllers.GetAdmins)
				admins.POST("", middleware.RequirePermission("rolesAndPermissions.create"), controllers.CreateAdmin)
				admins.DELETE("/:id", middleware.RequirePermission("rolesAndPermissions.delete"), controllers.DeleteAdmin)
			}

			settings := staff.Group("/settings")
			{
				settings.GET("/hotel", middleware.RequirePermission("settings.view"), controllers.GetHotelSettings)
				settings.PUT("/hotel", middleware.RequirePermission("settings.edit"), controllers.UpdateHotelSettings)
			}

			staff.GET("/dashboard/summary", middleware.RequirePermission("dashboard.view"), dc.Summary)
		}

		api.POST("/internal/sweep", middleware.SweepAuth(os.Getenv("SWEEP_SECRET")), sc.RunSweep)
	}

	return r
}
