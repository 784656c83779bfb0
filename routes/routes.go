package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-management/controllers"
	"hotel-management/middleware"
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

// Controllers bundles everything SetupRouter wires up.
type Controllers struct {
	Booking      *controllers.BookingController
	Portal       *controllers.PortalController
	Auth         *controllers.AuthController
	Customers    *controllers.CustomerController
	Employees    *controllers.EmployeeController
	Rooms        *controllers.RoomController
	RoomTypes    *controllers.RoomTypeController
	Reservations *controllers.ReservationController
	Services     *controllers.ServiceController
	Usages       *controllers.ServiceUsageController
	Statistics   *controllers.StatisticsController
}

// SetupRouter builds the gin engine: public booking + self-service routes,
// and staff CRUD/statistics routes behind the JWT gate.
func SetupRouter(db *gorm.DB, ctrl Controllers, jwtSecret []byte) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	r.Static("/uploads", "./uploads")

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
		// Public booking workflow. The room-type list is public (workflow
		// step 1) and honors the admin table's ?sort= keys.
		api.GET("/room-types", ctrl.RoomTypes.GetRoomTypes)
		api.GET("/hotel-room/room/:id", ctrl.Booking.GetRoom)

		booking := api.Group("/booking")
		{
			booking.GET("/select-date", ctrl.Booking.SelectDateForm)
			booking.POST("/select-date", ctrl.Booking.SelectDate)
			booking.GET("/select-room", ctrl.Booking.SelectRoom)
			booking.POST("/select-customer", ctrl.Booking.SelectCustomer)
			booking.POST("/create-reservation", ctrl.Booking.CreateReservation)
			booking.GET("/confirmation", ctrl.Booking.Confirmation)
		}

		// Customer self-service
		my := api.Group("/my")
		{
			my.POST("/reservations", ctrl.Portal.FindReservations)
			my.GET("/reservations/:id/services", ctrl.Portal.ReservationServices)
			my.POST("/services/order", ctrl.Portal.OrderService)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", ctrl.Auth.Login)
			auth.POST("/logout", ctrl.Auth.Logout)
		}

		// Staff-only management
		staff := api.Group("")
		staff.Use(middleware.RequireStaff(db, jwtSecret))
		{
			customers := staff.Group("/customers")
			{
				customers.GET("", ctrl.Customers.GetCustomers)
				customers.GET("/:id", ctrl.Customers.GetCustomer)
				customers.POST("", ctrl.Customers.CreateCustomer)
				customers.PUT("/:id", ctrl.Customers.UpdateCustomer)
				customers.DELETE("/:id", ctrl.Customers.DeleteCustomer)
			}

			employees := staff.Group("/employees")
			{
				employees.GET("", ctrl.Employees.GetEmployees)
				employees.GET("/:id", ctrl.Employees.GetEmployee)
				employees.POST("", ctrl.Employees.CreateEmployee)
				employees.PUT("/:id", ctrl.Employees.UpdateEmployee)
				employees.DELETE("/:id", ctrl.Employees.DeleteEmployee)
			}

			rooms := staff.Group("/rooms")
			{
				rooms.GET("", ctrl.Rooms.GetRooms)
				rooms.GET("/:id", ctrl.Rooms.GetRoom)
				rooms.POST("", ctrl.Rooms.CreateRoom)
				rooms.PUT("/:id", ctrl.Rooms.UpdateRoom)
				rooms.PATCH("/:id", ctrl.Rooms.UpdateRoom)
				rooms.DELETE("/:id", ctrl.Rooms.DeleteRoom)
			}

			roomTypes := staff.Group("/room-types")
			{
				roomTypes.GET("/:id", ctrl.RoomTypes.GetRoomType)
				roomTypes.POST("", ctrl.RoomTypes.CreateRoomType)
				roomTypes.PUT("/:id", ctrl.RoomTypes.UpdateRoomType)
				roomTypes.DELETE("/:id", ctrl.RoomTypes.DeleteRoomType)
			}

			reservations := staff.Group("/reservations")
			{
				reservations.GET("", ctrl.Reservations.GetReservations)
				reservations.GET("/:id", ctrl.Reservations.GetReservation)
				reservations.POST("", ctrl.Reservations.CreateReservation)
				reservations.PUT("/:id", ctrl.Reservations.UpdateReservation)
				reservations.DELETE("/:id", ctrl.Reservations.DeleteReservation)
			}

			servicesRoutes := staff.Group("/services")
			{
				servicesRoutes.GET("", ctrl.Services.GetServices)
				servicesRoutes.GET("/:id", ctrl.Services.GetService)
				servicesRoutes.POST("", ctrl.Services.CreateService)
				servicesRoutes.PUT("/:id", ctrl.Services.UpdateService)
				servicesRoutes.DELETE("/:id", ctrl.Services.DeleteService)
			}

			usages := staff.Group("/service-usages")
			{
				usages.GET("", ctrl.Usages.GetServiceUsages)
				usages.GET("/:id", ctrl.Usages.GetServiceUsage)
				usages.POST("", ctrl.Usages.CreateServiceUsage)
				usages.DELETE("/:id", ctrl.Usages.DeleteServiceUsage)
			}

			statistics := staff.Group("/statistics")
			{
				statistics.GET("/income", ctrl.Statistics.IncomeByPeriod)
				statistics.GET("/top-services", ctrl.Statistics.TopServices)
				statistics.GET("/top-employees", ctrl.Statistics.TopEmployees)
			}
		}
	}

	return r
}
