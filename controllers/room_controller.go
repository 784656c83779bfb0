// controllers/room_controller.go
package controllers

import (
	"log"
	"net/http"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Room listings sort on the owning type's name, capacity or price, or on the
// cached availability flag; default is type name ascending.
var roomSorts = utils.NewSortingDictionary(
	func(db *gorm.DB) *gorm.DB { return db.Order("room_types.type_name") },
	map[string]func(*gorm.DB) *gorm.DB{
		"roomtype_desc":    func(db *gorm.DB) *gorm.DB { return db.Order("room_types.type_name DESC") },
		"capacity":         func(db *gorm.DB) *gorm.DB { return db.Order("room_types.capacity") },
		"capacity_desc":    func(db *gorm.DB) *gorm.DB { return db.Order("room_types.capacity DESC") },
		"price":            func(db *gorm.DB) *gorm.DB { return db.Order("room_types.price") },
		"price_desc":       func(db *gorm.DB) *gorm.DB { return db.Order("room_types.price DESC") },
		"isavailable":      func(db *gorm.DB) *gorm.DB { return db.Order("rooms.is_available") },
		"isavailable_desc": func(db *gorm.DB) *gorm.DB { return db.Order("rooms.is_available DESC") },
	},
)

type RoomPayload struct {
	RoomNumber string `json:"roomNumber" binding:"required"`
	RoomTypeID uint   `json:"roomTypeId" binding:"required"`
}

type RoomController struct {
	Rooms     *services.EntityService[models.Room]
	Refresher *services.AvailabilityRefresher
}

func NewRoomController(db *gorm.DB, refresher *services.AvailabilityRefresher) *RoomController {
	return &RoomController{
		Rooms:     services.NewEntityService[models.Room](db),
		Refresher: refresher,
	}
}

// GetRooms lists rooms with their type. The availability flag comes from the
// refresher's cache; listings don't recompute it per request.
func (rc *RoomController) GetRooms(c *gin.Context) {
	sortOrder := c.Query("sort")
	rooms, err := rc.Rooms.List(
		func(db *gorm.DB) *gorm.DB {
			return db.
				Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
				Preload("RoomType")
		},
		func(db *gorm.DB) *gorm.DB { return roomSorts.Apply(db, sortOrder) },
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := rc.Rooms.GetByID(id, func(db *gorm.DB) *gorm.DB { return db.Preload("RoomType") })
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room number and room type are required")
		return
	}
	room := models.Room{
		RoomNumber:  payload.RoomNumber,
		RoomTypeID:  payload.RoomTypeID,
		IsAvailable: true,
	}
	if err := rc.Rooms.Create(&room); err != nil {
		respondServiceError(c, err)
		return
	}
	rc.refresh()
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload RoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "room number and room type are required")
		return
	}
	room := models.Room{RoomNumber: payload.RoomNumber, RoomTypeID: payload.RoomTypeID}
	if err := rc.Rooms.Update(id, &room); err != nil {
		respondServiceError(c, err)
		return
	}
	rc.refresh()
	updated, err := rc.Rooms.GetByID(id, func(db *gorm.DB) *gorm.DB { return db.Preload("RoomType") })
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// DeleteRoom removes the room and its reservations (plus their service
// usages). The room row is soft-deleted, so the dependents are removed
// explicitly rather than relying on the FK cascade.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	reservationIDs := rc.Rooms.DB.Model(&models.Reservation{}).
		Select("id").
		Where("room_id = ?", id)
	if err := rc.Rooms.DB.
		Where("reservation_id IN (?)", reservationIDs).
		Delete(&models.ServiceUsage{}).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if err := rc.Rooms.DB.
		Where("room_id = ?", id).
		Delete(&models.Reservation{}).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if err := rc.Rooms.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	rc.refresh()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (rc *RoomController) refresh() {
	if rc.Refresher == nil {
		return
	}
	if err := rc.Refresher.RefreshOnce(); err != nil {
		log.Printf("⚠️  availability refresh after room change failed: %v", err)
	}
}
