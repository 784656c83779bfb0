// controllers/reservation_controller.go
package controllers

import (
	"log"
	"net/http"
	"time"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Sort keys mirror the columns the reservations table exposes; default is
// check-in ascending. Built once, shared read-only across requests.
var reservationSorts = utils.NewSortingDictionary(
	func(db *gorm.DB) *gorm.DB { return db.Order("check_in_date") },
	map[string]func(*gorm.DB) *gorm.DB{
		"checkin_desc":    func(db *gorm.DB) *gorm.DB { return db.Order("check_in_date DESC") },
		"totalprice":      func(db *gorm.DB) *gorm.DB { return db.Order("total_price") },
		"totalprice_desc": func(db *gorm.DB) *gorm.DB { return db.Order("total_price DESC") },
	},
)

type ReservationPayload struct {
	CustomerID   uint   `json:"customerId" binding:"required"`
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

type ReservationController struct {
	ReservationSvc *services.ReservationService
	Refresher      *services.AvailabilityRefresher
}

func NewReservationController(svc *services.ReservationService, refresher *services.AvailabilityRefresher) *ReservationController {
	return &ReservationController{ReservationSvc: svc, Refresher: refresher}
}

// GetReservations lists reservations, sortable with ?sort= and filterable by
// customer name with ?search=.
func (rc *ReservationController) GetReservations(c *gin.Context) {
	sortOrder := c.Query("sort")
	search := c.Query("search")

	scopes := []func(*gorm.DB) *gorm.DB{
		func(db *gorm.DB) *gorm.DB { return reservationSorts.Apply(db, sortOrder) },
	}
	if search != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.
				Joins("JOIN customers ON customers.id = reservations.customer_id").
				Where("customers.first_name LIKE ? OR customers.last_name LIKE ?",
					"%"+search+"%", "%"+search+"%")
		})
	}

	list, err := rc.ReservationSvc.ListScoped(scopes...)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (rc *ReservationController) GetReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.GetDetails(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	payload, checkIn, checkOut, ok := rc.bindPayload(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.Create(payload.CustomerID, payload.RoomID, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	rc.refresh()
	utils.JSONSuccess(c, http.StatusCreated, res)
}

func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	payload, checkIn, checkOut, ok := rc.bindPayload(c)
	if !ok {
		return
	}
	res, err := rc.ReservationSvc.Update(id, payload.CustomerID, payload.RoomID, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	rc.refresh()
	utils.JSONSuccess(c, http.StatusOK, res)
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := rc.ReservationSvc.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	rc.refresh()
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (rc *ReservationController) bindPayload(c *gin.Context) (ReservationPayload, time.Time, time.Time, bool) {
	var payload ReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return payload, time.Time{}, time.Time{}, false
	}
	checkIn, err := parseDate(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check-in date, expected YYYY-MM-DD")
		return payload, time.Time{}, time.Time{}, false
	}
	checkOut, err := parseDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check-out date, expected YYYY-MM-DD")
		return payload, time.Time{}, time.Time{}, false
	}
	return payload, checkIn, checkOut, true
}

// refresh recomputes the availability cache after a mutation, best-effort.
func (rc *ReservationController) refresh() {
	if rc.Refresher == nil {
		return
	}
	if err := rc.Refresher.RefreshOnce(); err != nil {
		log.Printf("⚠️  availability refresh after reservation change failed: %v", err)
	}
}
