// controllers/portal_controller.go
package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type FindReservationsPayload struct {
	PassportNumber string `json:"passportNumber" binding:"required"`
}

type OrderServicePayload struct {
	CustomerID uint `json:"customerId" binding:"required"`
	ServiceID  uint `json:"serviceId" binding:"required"`
}

// PortalController serves the customer self-service pages.
type PortalController struct {
	PortalSvc *services.PortalService
}

func NewPortalController(svc *services.PortalService) *PortalController {
	return &PortalController{PortalSvc: svc}
}

// FindReservations lists a customer's stays by passport number.
func (pc *PortalController) FindReservations(c *gin.Context) {
	var payload FindReservationsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "passport number is required")
		return
	}

	customer, reservations, err := pc.PortalSvc.ReservationsByPassport(payload.PassportNumber)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"customer":     customer,
		"reservations": reservations,
	})
}

// ReservationServices shows the service bill of one stay.
func (pc *PortalController) ReservationServices(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	used, err := pc.PortalSvc.ServicesForReservation(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, used)
}

// OrderService records a service usage for the customer's active stay.
func (pc *PortalController) OrderService(c *gin.Context) {
	var payload OrderServicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	usage, err := pc.PortalSvc.OrderService(payload.CustomerID, payload.ServiceID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, usage)
}
