package services

import (
	"testing"

	"hotel-management/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationServiceCreate(t *testing.T) {
	db := setupTestDB(t)
	rt := createRoomType(t, db, "Superior", 1500)
	room := createRoom(t, db, "201", rt.ID)
	customer := createCustomer(t, db, "P-900")

	svc := NewReservationService(db)
	res, err := svc.Create(customer.ID, room.ID, day(2025, 3, 1), day(2025, 3, 3))
	require.NoError(t, err)
	assert.True(t, res.TotalPrice.Equal(decimal.NewFromInt(3000)), "got %s", res.TotalPrice)

	_, err = svc.Create(customer.ID, room.ID, day(2025, 3, 2), day(2025, 3, 4))
	assert.ErrorIs(t, err, ErrRoomConflict)

	_, err = svc.Create(9999, room.ID, day(2025, 4, 1), day(2025, 4, 3))
	assert.ErrorIs(t, err, ErrCustomerNotFound)

	_, err = svc.Create(customer.ID, 9999, day(2025, 4, 1), day(2025, 4, 3))
	assert.ErrorIs(t, err, ErrRoomNotFound)

	_, err = svc.Create(customer.ID, room.ID, day(2025, 4, 1), day(2025, 4, 1))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestReservationServiceUpdate(t *testing.T) {
	db := setupTestDB(t)
	standard := createRoomType(t, db, "Standard", 1000)
	deluxe := createRoomType(t, db, "Deluxe", 2200)
	r101 := createRoom(t, db, "101", standard.ID)
	r301 := createRoom(t, db, "301", deluxe.ID)
	customer := createCustomer(t, db, "P-900")

	svc := NewReservationService(db)
	res, err := svc.Create(customer.ID, r101.ID, day(2025, 3, 1), day(2025, 3, 3))
	require.NoError(t, err)

	// move the stay to a pricier room: total recomputed from the new rate
	updated, err := svc.Update(res.ID, customer.ID, r301.ID, day(2025, 3, 1), day(2025, 3, 4))
	require.NoError(t, err)
	assert.Equal(t, r301.ID, updated.RoomID)
	assert.True(t, updated.TotalPrice.Equal(decimal.NewFromInt(6600)), "got %s", updated.TotalPrice)
}

// Editing a stay without moving it must not collide with itself.
func TestReservationServiceUpdateExcludesSelf(t *testing.T) {
	db := setupTestDB(t)
	rt := createRoomType(t, db, "Standard", 1000)
	room := createRoom(t, db, "101", rt.ID)
	customer := createCustomer(t, db, "P-900")

	svc := NewReservationService(db)
	res, err := svc.Create(customer.ID, room.ID, day(2025, 3, 1), day(2025, 3, 3))
	require.NoError(t, err)

	_, err = svc.Update(res.ID, customer.ID, room.ID, day(2025, 3, 1), day(2025, 3, 4))
	assert.NoError(t, err)
}

func TestReservationServiceUpdateConflict(t *testing.T) {
	db := setupTestDB(t)
	rt := createRoomType(t, db, "Standard", 1000)
	room := createRoom(t, db, "101", rt.ID)
	customer := createCustomer(t, db, "P-900")

	svc := NewReservationService(db)
	_, err := svc.Create(customer.ID, room.ID, day(2025, 3, 1), day(2025, 3, 3))
	require.NoError(t, err)
	second, err := svc.Create(customer.ID, room.ID, day(2025, 3, 10), day(2025, 3, 12))
	require.NoError(t, err)

	_, err = svc.Update(second.ID, customer.ID, room.ID, day(2025, 3, 2), day(2025, 3, 5))
	assert.ErrorIs(t, err, ErrRoomConflict)

	_, err = svc.Update(9999, customer.ID, room.ID, day(2025, 4, 1), day(2025, 4, 3))
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestReservationServiceDelete(t *testing.T) {
	db := setupTestDB(t)
	rt := createRoomType(t, db, "Standard", 1000)
	room := createRoom(t, db, "101", rt.ID)
	customer := createCustomer(t, db, "P-900")

	svc := NewReservationService(db)
	res, err := svc.Create(customer.ID, room.ID, day(2025, 3, 1), day(2025, 3, 3))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(res.ID))
	assert.ErrorIs(t, svc.Delete(res.ID), ErrReservationNotFound)

	var count int64
	db.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestReservationServiceListAndDetails(t *testing.T) {
	db := setupTestDB(t)
	rt := createRoomType(t, db, "Standard", 1000)
	room := createRoom(t, db, "101", rt.ID)
	customer := createCustomer(t, db, "P-900")

	svc := NewReservationService(db)
	res, err := svc.Create(customer.ID, room.ID, day(2025, 3, 1), day(2025, 3, 3))
	require.NoError(t, err)

	list, err := svc.ListScoped()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Anna", list[0].Customer.FirstName)
	assert.Equal(t, "Standard", list[0].Room.RoomType.TypeName)

	details, err := svc.GetDetails(res.ID)
	require.NoError(t, err)
	assert.Equal(t, "101", details.Room.RoomNumber)

	_, err = svc.GetDetails(9999)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}
