package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hotel-management/models"
	"hotel-management/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Deleting a room removes its reservations and their usages; the room row is
// soft-deleted, so nothing cascades on its own.
func TestDeleteRoomRemovesReservations(t *testing.T) {
	db := setupAdminTest(t)
	_, room, _ := seedStay(t, db)

	refresher := services.NewAvailabilityRefresher(db, time.Minute)
	ctrl := NewRoomController(db, refresher)
	r := gin.New()
	r.DELETE("/api/rooms/:id", ctrl.DeleteRoom)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/rooms/%d", room.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var reservations, usages, rooms int64
	db.Model(&models.Reservation{}).Count(&reservations)
	db.Model(&models.ServiceUsage{}).Count(&usages)
	db.Model(&models.Room{}).Count(&rooms)
	assert.EqualValues(t, 0, reservations)
	assert.EqualValues(t, 0, usages)
	assert.EqualValues(t, 0, rooms)

	// the customer survives the room deletion
	var customers int64
	db.Model(&models.Customer{}).Count(&customers)
	assert.EqualValues(t, 1, customers)
}

func TestDeleteRoomUnknownID(t *testing.T) {
	db := setupAdminTest(t)

	ctrl := NewRoomController(db, services.NewAvailabilityRefresher(db, time.Minute))
	r := gin.New()
	r.DELETE("/api/rooms/:id", ctrl.DeleteRoom)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/rooms/424242", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
