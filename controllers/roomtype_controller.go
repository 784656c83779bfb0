// controllers/roomtype_controller.go
package controllers

import (
	"net/http"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var roomTypeSorts = utils.NewSortingDictionary(
	func(db *gorm.DB) *gorm.DB { return db.Order("type_name") },
	map[string]func(*gorm.DB) *gorm.DB{
		"price":      func(db *gorm.DB) *gorm.DB { return db.Order("price") },
		"price_desc": func(db *gorm.DB) *gorm.DB { return db.Order("price DESC") },
		"capacity":   func(db *gorm.DB) *gorm.DB { return db.Order("capacity") },
	},
)

type RoomTypePayload struct {
	TypeName    string          `json:"typeName" binding:"required"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Description string          `json:"description"`
	Capacity    uint            `json:"capacity"`
	ImageURL    string          `json:"imageUrl"`
	Amenities   datatypes.JSON  `json:"amenities"`
}

type RoomTypeController struct {
	RoomTypes *services.EntityService[models.RoomType]
}

func NewRoomTypeController(db *gorm.DB) *RoomTypeController {
	return &RoomTypeController{RoomTypes: services.NewEntityService[models.RoomType](db)}
}

func (rtc *RoomTypeController) GetRoomTypes(c *gin.Context) {
	sortOrder := c.Query("sort")
	types, err := rtc.RoomTypes.List(
		func(db *gorm.DB) *gorm.DB { return roomTypeSorts.Apply(db, sortOrder) },
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

func (rtc *RoomTypeController) GetRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rt, err := rtc.RoomTypes.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

func (rtc *RoomTypeController) CreateRoomType(c *gin.Context) {
	var payload RoomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "type name and price are required")
		return
	}
	if payload.Price.IsNegative() {
		utils.JSONError(c, http.StatusBadRequest, "price must not be negative")
		return
	}
	rt := models.RoomType{
		TypeName:    payload.TypeName,
		Price:       payload.Price,
		Description: payload.Description,
		Capacity:    payload.Capacity,
		ImageURL:    payload.ImageURL,
		Amenities:   payload.Amenities,
	}
	if err := rtc.RoomTypes.Create(&rt); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

// UpdateRoomType edits a type in place. Existing reservations keep the total
// they were priced at; only future bookings see the new nightly price.
func (rtc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload RoomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "type name and price are required")
		return
	}
	if payload.Price.IsNegative() {
		utils.JSONError(c, http.StatusBadRequest, "price must not be negative")
		return
	}
	rt := models.RoomType{
		TypeName:    payload.TypeName,
		Price:       payload.Price,
		Description: payload.Description,
		Capacity:    payload.Capacity,
		ImageURL:    payload.ImageURL,
		Amenities:   payload.Amenities,
	}
	if err := rtc.RoomTypes.Update(id, &rt); err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := rtc.RoomTypes.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (rtc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := rtc.RoomTypes.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
