package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/controllers"
	"hotel-reservation-backend/routes"
	"hotel-reservation-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	// Services
	reservationService := services.NewReservationService(db)
	blockBookingService := services.NewBlockBookingService(db)
	roomService := services.NewRoomService(db)
	customerService := services.NewCustomerService(db)
	invoiceService := services.NewInvoiceService(db)
	dashboardService := services.NewDashboardService(db)

	grace := 24 * time.Hour
	if raw := os.Getenv("SWEEP_GRACE_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			grace = time.Duration(hours) * time.Hour
		} else {
			log.Printf("warning: invalid SWEEP_GRACE_HOURS %q, using default", raw)
		}
	}
	sweepService := services.NewSweepService(db, grace)
	sweepService.StartScheduler()

	// Controllers
	reservationController := controllers.NewReservationController(reservationService)
	blockBookingController := controllers.NewBlockBookingController(blockBookingService)
	roomController := controllers.NewRoomController(roomService)
	customerController := controllers.NewCustomerController(customerService)
	invoiceController := controllers.NewInvoiceController(invoiceService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	sweepController := controllers.NewSweepController(sweepService)

	router := routes.SetupRouter(
		reservationController,
		blockBookingController,
		roomController,
		customerController,
		invoiceController,
		dashboardController,
		sweepController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	sweepService.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
