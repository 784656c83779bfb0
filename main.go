package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-management/config"
	"hotel-management/controllers"
	"hotel-management/routes"
	"hotel-management/services"
	"hotel-management/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Required signing secret (fatal if missing)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue staff sessions.")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied.")

	// Periodic availability refresher
	refreshMinutes := utils.EnvIntOrDefault("ROOM_REFRESH_MINUTES", 15)
	refresher := services.NewAvailabilityRefresher(db, time.Duration(refreshMinutes)*time.Minute)
	if err := refresher.Start(); err != nil {
		log.Fatalf("❌ Failed to start availability refresher: %v", err)
	}

	// Initialize services
	bookingService := services.NewBookingService(db)
	portalService := services.NewPortalService(db)
	reservationService := services.NewReservationService(db)
	statisticsService := services.NewStatisticsService(db)
	authService := services.NewAuthService(db, []byte(jwtSecret))

	// Initialize controllers
	ctrl := routes.Controllers{
		Booking:      controllers.NewBookingController(bookingService, refresher),
		Portal:       controllers.NewPortalController(portalService),
		Auth:         controllers.NewAuthController(authService),
		Customers:    controllers.NewCustomerController(db),
		Employees:    controllers.NewEmployeeController(db),
		Rooms:        controllers.NewRoomController(db, refresher),
		RoomTypes:    controllers.NewRoomTypeController(db),
		Reservations: controllers.NewReservationController(reservationService, refresher),
		Services:     controllers.NewServiceController(db),
		Usages:       controllers.NewServiceUsageController(db),
		Statistics:   controllers.NewStatisticsController(statisticsService),
	}

	// Build router
	router := routes.SetupRouter(db, ctrl, []byte(jwtSecret))

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	if err := refresher.Shutdown(); err != nil {
		log.Printf("⚠️  Refresher shutdown: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
