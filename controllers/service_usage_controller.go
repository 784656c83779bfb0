// controllers/service_usage_controller.go
package controllers

import (
	"net/http"
	"time"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var serviceUsageSorts = utils.NewSortingDictionary(
	func(db *gorm.DB) *gorm.DB { return db.Order("execution_date DESC") },
	map[string]func(*gorm.DB) *gorm.DB{
		"date": func(db *gorm.DB) *gorm.DB { return db.Order("execution_date") },
	},
)

type ServiceUsagePayload struct {
	ReservationID uint   `json:"reservationId" binding:"required"`
	ServicesID    uint   `json:"servicesId" binding:"required"`
	EmployeeID    *uint  `json:"employeeId"`
	ExecutionDate string `json:"executionDate"`
}

type ServiceUsageController struct {
	Usages *services.EntityService[models.ServiceUsage]
}

func NewServiceUsageController(db *gorm.DB) *ServiceUsageController {
	return &ServiceUsageController{Usages: services.NewEntityService[models.ServiceUsage](db)}
}

func (suc *ServiceUsageController) GetServiceUsages(c *gin.Context) {
	sortOrder := c.Query("sort")
	usages, err := suc.Usages.List(
		func(db *gorm.DB) *gorm.DB {
			return db.Preload("Services").Preload("Employee")
		},
		func(db *gorm.DB) *gorm.DB { return serviceUsageSorts.Apply(db, sortOrder) },
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, usages)
}

func (suc *ServiceUsageController) GetServiceUsage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	usage, err := suc.Usages.GetByID(id, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Services").Preload("Employee")
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, usage)
}

func (suc *ServiceUsageController) CreateServiceUsage(c *gin.Context) {
	var payload ServiceUsagePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "reservation and service are required")
		return
	}

	executionDate := time.Now()
	if payload.ExecutionDate != "" {
		parsed, err := time.Parse(time.RFC3339, payload.ExecutionDate)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid execution date, expected RFC 3339")
			return
		}
		executionDate = parsed
	}

	usage := models.ServiceUsage{
		ReservationID: payload.ReservationID,
		ServicesID:    payload.ServicesID,
		EmployeeID:    payload.EmployeeID,
		ExecutionDate: executionDate,
	}
	if err := suc.Usages.Create(&usage); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, usage)
}

func (suc *ServiceUsageController) DeleteServiceUsage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := suc.Usages.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
