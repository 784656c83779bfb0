package services

import (
	"testing"
	"time"

	"hotel-management/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomeByPeriod(t *testing.T) {
	db := setupTestDB(t)
	rt := createRoomType(t, db, "Standard", 1000)
	room := createRoom(t, db, "101", rt.ID)
	customer := createCustomer(t, db, "P-100")

	// inside the window
	createReservation(t, db, customer.ID, room.ID, day(2025, 3, 5), day(2025, 3, 8), 3000)
	createReservation(t, db, customer.ID, room.ID, day(2025, 3, 20), day(2025, 3, 22), 2000)
	// starts outside the window
	createReservation(t, db, customer.ID, room.ID, day(2025, 4, 1), day(2025, 4, 3), 9999)

	spa := models.Service{ServicesName: "Spa", Price: decimal.NewFromInt(500)}
	require.NoError(t, db.Create(&spa).Error)

	res := models.Reservation{}
	require.NoError(t, db.First(&res).Error)
	usages := []models.ServiceUsage{
		{ReservationID: res.ID, ServicesID: spa.ID, ExecutionDate: day(2025, 3, 6)},
		{ReservationID: res.ID, ServicesID: spa.ID, ExecutionDate: day(2025, 3, 31)},
		// outside the window
		{ReservationID: res.ID, ServicesID: spa.ID, ExecutionDate: day(2025, 4, 2)},
	}
	require.NoError(t, db.Create(&usages).Error)

	svc := NewStatisticsService(db)
	income, err := svc.IncomeByPeriod(day(2025, 3, 1), day(2025, 3, 31))
	require.NoError(t, err)

	assert.True(t, income.ReservationIncome.Equal(decimal.NewFromInt(5000)), "got %s", income.ReservationIncome)
	assert.True(t, income.ServiceIncome.Equal(decimal.NewFromInt(1000)), "got %s", income.ServiceIncome)
	assert.True(t, income.TotalIncome.Equal(decimal.NewFromInt(6000)), "got %s", income.TotalIncome)
}

// Rows dated on the last day of the window count even when their timestamp
// carries a time-of-day component.
func TestIncomeByPeriodEndDateWithTime(t *testing.T) {
	db := setupTestDB(t)
	rt := createRoomType(t, db, "Standard", 1000)
	room := createRoom(t, db, "101", rt.ID)
	customer := createCustomer(t, db, "P-100")

	lateCheckIn := time.Date(2025, 3, 31, 15, 30, 0, 0, time.UTC)
	createReservation(t, db, customer.ID, room.ID, lateCheckIn, day(2025, 4, 2), 2000)

	spa := models.Service{ServicesName: "Spa", Price: decimal.NewFromInt(500)}
	require.NoError(t, db.Create(&spa).Error)
	res := models.Reservation{}
	require.NoError(t, db.First(&res).Error)
	usage := models.ServiceUsage{
		ReservationID: res.ID,
		ServicesID:    spa.ID,
		ExecutionDate: time.Date(2025, 3, 31, 18, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.Create(&usage).Error)

	svc := NewStatisticsService(db)
	income, err := svc.IncomeByPeriod(day(2025, 3, 1), day(2025, 3, 31))
	require.NoError(t, err)

	assert.True(t, income.ReservationIncome.Equal(decimal.NewFromInt(2000)), "got %s", income.ReservationIncome)
	assert.True(t, income.ServiceIncome.Equal(decimal.NewFromInt(500)), "got %s", income.ServiceIncome)
}

func TestIncomeByPeriodEmpty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatisticsService(db)

	income, err := svc.IncomeByPeriod(day(2025, 3, 1), day(2025, 3, 31))
	require.NoError(t, err)
	assert.True(t, income.ReservationIncome.IsZero())
	assert.True(t, income.ServiceIncome.IsZero())
	assert.True(t, income.TotalIncome.IsZero())
}

func TestTopServices(t *testing.T) {
	db := setupTestDB(t)
	rt := createRoomType(t, db, "Standard", 1000)
	room := createRoom(t, db, "101", rt.ID)
	customer := createCustomer(t, db, "P-100")
	res := createReservation(t, db, customer.ID, room.ID, day(2025, 3, 1), day(2025, 3, 4), 3000)

	spa := models.Service{ServicesName: "Spa", Price: decimal.NewFromInt(500)}
	laundry := models.Service{ServicesName: "Laundry", Price: decimal.NewFromInt(200)}
	unused := models.Service{ServicesName: "Breakfast", Price: decimal.NewFromInt(150)}
	require.NoError(t, db.Create(&spa).Error)
	require.NoError(t, db.Create(&laundry).Error)
	require.NoError(t, db.Create(&unused).Error)

	usages := []models.ServiceUsage{
		{ReservationID: res.ID, ServicesID: spa.ID, ExecutionDate: day(2025, 3, 1)},
		{ReservationID: res.ID, ServicesID: spa.ID, ExecutionDate: day(2025, 3, 2)},
		{ReservationID: res.ID, ServicesID: spa.ID, ExecutionDate: day(2025, 3, 3)},
		{ReservationID: res.ID, ServicesID: laundry.ID, ExecutionDate: day(2025, 3, 2)},
	}
	require.NoError(t, db.Create(&usages).Error)

	svc := NewStatisticsService(db)
	top, err := svc.TopServices()
	require.NoError(t, err)

	require.Len(t, top, 2, "never-used services don't appear")
	assert.Equal(t, TopService{ServicesName: "Spa", UsageCount: 3}, top[0])
	assert.Equal(t, TopService{ServicesName: "Laundry", UsageCount: 1}, top[1])
}

func TestTopEmployees(t *testing.T) {
	db := setupTestDB(t)
	rt := createRoomType(t, db, "Standard", 1000)
	room := createRoom(t, db, "101", rt.ID)
	customer := createCustomer(t, db, "P-100")
	res := createReservation(t, db, customer.ID, room.ID, day(2025, 3, 1), day(2025, 3, 4), 3000)

	spa := models.Service{ServicesName: "Spa", Price: decimal.NewFromInt(500)}
	require.NoError(t, db.Create(&spa).Error)

	maria := models.Employee{FirstName: "Maria", LastName: "Novak", Email: "maria@hotel.local"}
	josef := models.Employee{FirstName: "Josef", LastName: "Svoboda", Email: "josef@hotel.local"}
	require.NoError(t, db.Create(&maria).Error)
	require.NoError(t, db.Create(&josef).Error)

	usages := []models.ServiceUsage{
		{ReservationID: res.ID, ServicesID: spa.ID, EmployeeID: &maria.ID, ExecutionDate: day(2025, 3, 1)},
		{ReservationID: res.ID, ServicesID: spa.ID, EmployeeID: &maria.ID, ExecutionDate: day(2025, 3, 2)},
		{ReservationID: res.ID, ServicesID: spa.ID, EmployeeID: &josef.ID, ExecutionDate: day(2025, 3, 2)},
		// unattributed usage counts toward nobody
		{ReservationID: res.ID, ServicesID: spa.ID, ExecutionDate: day(2025, 3, 3)},
	}
	require.NoError(t, db.Create(&usages).Error)

	svc := NewStatisticsService(db)
	top, err := svc.TopEmployees()
	require.NoError(t, err)

	require.Len(t, top, 2)
	assert.Equal(t, TopEmployee{EmployeeName: "Maria Novak", ServiceCount: 2}, top[0])
	assert.Equal(t, TopEmployee{EmployeeName: "Josef Svoboda", ServiceCount: 1}, top[1])
}
