// controllers/service_controller.go
package controllers

import (
	"net/http"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var serviceSorts = utils.NewSortingDictionary(
	func(db *gorm.DB) *gorm.DB { return db.Order("services_name") },
	map[string]func(*gorm.DB) *gorm.DB{
		"price":      func(db *gorm.DB) *gorm.DB { return db.Order("price") },
		"price_desc": func(db *gorm.DB) *gorm.DB { return db.Order("price DESC") },
	},
)

type ServicePayload struct {
	ServicesName string          `json:"servicesName" binding:"required"`
	Price        decimal.Decimal `json:"price"`
	Description  string          `json:"description"`
	ImageURL     string          `json:"imageUrl"`
}

type ServiceController struct {
	Services *services.EntityService[models.Service]
}

func NewServiceController(db *gorm.DB) *ServiceController {
	return &ServiceController{Services: services.NewEntityService[models.Service](db)}
}

func (sc *ServiceController) GetServices(c *gin.Context) {
	sortOrder := c.Query("sort")
	list, err := sc.Services.List(
		func(db *gorm.DB) *gorm.DB { return serviceSorts.Apply(db, sortOrder) },
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (sc *ServiceController) GetService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	service, err := sc.Services.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, service)
}

func (sc *ServiceController) CreateService(c *gin.Context) {
	var payload ServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "service name is required")
		return
	}
	if payload.Price.IsNegative() {
		utils.JSONError(c, http.StatusBadRequest, "price must not be negative")
		return
	}
	service := models.Service{
		ServicesName: payload.ServicesName,
		Price:        payload.Price,
		Description:  payload.Description,
		ImageURL:     payload.ImageURL,
	}
	if err := sc.Services.Create(&service); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, service)
}

func (sc *ServiceController) UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload ServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "service name is required")
		return
	}
	service := models.Service{
		ServicesName: payload.ServicesName,
		Price:        payload.Price,
		Description:  payload.Description,
		ImageURL:     payload.ImageURL,
	}
	if err := sc.Services.Update(id, &service); err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := sc.Services.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (sc *ServiceController) DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := sc.Services.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
