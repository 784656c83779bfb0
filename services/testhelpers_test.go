package services

import (
	"testing"
	"time"

	"hotel-management/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema.
// The pool is pinned to one connection so :memory: survives across queries.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createRoomType(t *testing.T, db *gorm.DB, name string, price int64) models.RoomType {
	t.Helper()
	rt := models.RoomType{TypeName: name, Price: decimal.NewFromInt(price), Capacity: 2}
	require.NoError(t, db.Create(&rt).Error)
	return rt
}

func createRoom(t *testing.T, db *gorm.DB, number string, roomTypeID uint) models.Room {
	t.Helper()
	room := models.Room{RoomNumber: number, RoomTypeID: roomTypeID, IsAvailable: true}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func createCustomer(t *testing.T, db *gorm.DB, passport string) models.Customer {
	t.Helper()
	customer := models.Customer{
		FirstName:      "Anna",
		LastName:       "Schmidt",
		Phone:          "+49-170-0000000",
		Email:          "anna@example.com",
		PassportNumber: passport,
		Address:        "Hauptstrasse 1",
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func createReservation(t *testing.T, db *gorm.DB, customerID, roomID uint, checkIn, checkOut time.Time, price int64) models.Reservation {
	t.Helper()
	res := models.Reservation{
		CustomerID:   customerID,
		RoomID:       roomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   decimal.NewFromInt(price),
	}
	require.NoError(t, db.Create(&res).Error)
	return res
}
