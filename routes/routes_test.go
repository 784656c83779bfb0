package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-management/controllers"
	"hotel-management/models"
	"hotel-management/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouterTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.RoomType{},
		&models.Room{},
		&models.Customer{},
		&models.Reservation{},
		&models.Service{},
		&models.ServiceUsage{},
	))

	secret := []byte("router-test-secret")
	refresher := services.NewAvailabilityRefresher(db, time.Minute)
	ctrl := Controllers{
		Booking:      controllers.NewBookingController(services.NewBookingService(db), refresher),
		Portal:       controllers.NewPortalController(services.NewPortalService(db)),
		Auth:         controllers.NewAuthController(services.NewAuthService(db, secret)),
		Customers:    controllers.NewCustomerController(db),
		Employees:    controllers.NewEmployeeController(db),
		Rooms:        controllers.NewRoomController(db, refresher),
		RoomTypes:    controllers.NewRoomTypeController(db),
		Reservations: controllers.NewReservationController(services.NewReservationService(db), refresher),
		Services:     controllers.NewServiceController(db),
		Usages:       controllers.NewServiceUsageController(db),
		Statistics:   controllers.NewStatisticsController(services.NewStatisticsService(db)),
	}
	return SetupRouter(db, ctrl, secret), db
}

// The room-type list is public and reachable with the admin sort keys.
func TestRoomTypeListPublicAndSortable(t *testing.T) {
	r, db := setupRouterTest(t)

	types := []models.RoomType{
		{TypeName: "Deluxe", Price: decimal.NewFromInt(2200), Capacity: 4},
		{TypeName: "Standard", Price: decimal.NewFromInt(1000), Capacity: 2},
		{TypeName: "Superior", Price: decimal.NewFromInt(1500), Capacity: 3},
	}
	require.NoError(t, db.Create(&types).Error)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/room-types?sort=price", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data []models.RoomType `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, "Standard", body.Data[0].TypeName)
	assert.Equal(t, "Superior", body.Data[1].TypeName)
	assert.Equal(t, "Deluxe", body.Data[2].TypeName)

	// default ordering is by type name
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/room-types", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, "Deluxe", body.Data[0].TypeName)
}

func TestStaffRoutesRequireToken(t *testing.T) {
	r, _ := setupRouterTest(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/reservations", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
