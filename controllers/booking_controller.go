// controllers/booking_controller.go
package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

type SelectDatePayload struct {
	RoomTypeID   uint   `json:"roomTypeId" binding:"required"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type CustomerPayload struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Birthday       string `json:"birthday"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	PassportNumber string `json:"passportNumber"`
	Address        string `json:"address"`
}

type CreateReservationPayload struct {
	RoomID       uint            `json:"roomId"`
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	Customer     CustomerPayload `json:"customer"`
}

func (p CustomerPayload) toInput() (services.CustomerInput, error) {
	input := services.CustomerInput{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		Email:          p.Email,
		PassportNumber: p.PassportNumber,
		Address:        p.Address,
	}
	if p.Birthday != "" {
		birthday, err := parseDate(p.Birthday)
		if err != nil {
			return input, err
		}
		input.Birthday = &birthday
	}
	return input, nil
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	BookingSvc *services.BookingService
	Refresher  *services.AvailabilityRefresher
}

func NewBookingController(svc *services.BookingService, refresher *services.AvailabilityRefresher) *BookingController {
	return &BookingController{BookingSvc: svc, Refresher: refresher}
}

// GetRoom shows one room with its type for the public room page.
func (bc *BookingController) GetRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	room, err := bc.BookingSvc.RoomByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// SelectDateForm echoes the chosen room type back so the frontend can render
// the date step; the type id survives a failed validation round-trip.
func (bc *BookingController) SelectDateForm(c *gin.Context) {
	typeID, err := strconv.ParseUint(c.Query("roomType"), 10, 64)
	if err != nil || typeID == 0 {
		respondServiceError(c, services.ErrRoomTypeNotFound)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"roomTypeId": uint(typeID)})
}

// SelectDate validates the chosen dates (workflow step 2). On failure the
// response keeps the room type so the frontend re-enters the date step.
func (bc *BookingController) SelectDate(c *gin.Context) {
	var payload SelectDatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	checkIn, checkOut, ok := bc.parseStay(c, payload.CheckInDate, payload.CheckOutDate)
	if !ok {
		return
	}
	if err := services.ValidateStayDates(checkIn, checkOut); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"roomTypeId":   payload.RoomTypeID,
		"checkInDate":  checkIn.Format(dateLayout),
		"checkOutDate": checkOut.Format(dateLayout),
	})
}

// SelectRoom lists free rooms of the chosen type for the chosen dates
// (workflow step 3). An empty result returns the user to the date step.
func (bc *BookingController) SelectRoom(c *gin.Context) {
	typeID, err := strconv.ParseUint(c.Query("roomType"), 10, 64)
	if err != nil || typeID == 0 {
		respondServiceError(c, services.ErrRoomTypeNotFound)
		return
	}
	checkIn, checkOut, ok := bc.parseStay(c, c.Query("checkInDate"), c.Query("checkOutDate"))
	if !ok {
		return
	}

	rooms, err := bc.BookingSvc.RoomsForStay(uint(typeID), checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// SelectCustomer identifies or creates the customer by passport number
// (workflow step 4).
func (bc *BookingController) SelectCustomer(c *gin.Context) {
	var payload CustomerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	input, err := payload.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid birthday format, expected YYYY-MM-DD")
		return
	}

	customer, err := bc.BookingSvc.IdentifyOrCreateCustomer(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

// CreateReservation persists the stay (workflow step 5) and refreshes the
// availability cache afterwards, best-effort.
func (bc *BookingController) CreateReservation(c *gin.Context) {
	var payload CreateReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	checkIn, checkOut, ok := bc.parseStay(c, payload.CheckInDate, payload.CheckOutDate)
	if !ok {
		return
	}
	input, err := payload.Customer.toInput()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid birthday format, expected YYYY-MM-DD")
		return
	}

	reservation, err := bc.BookingSvc.CreateReservation(payload.RoomID, input, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	if bc.Refresher != nil {
		if rErr := bc.Refresher.RefreshOnce(); rErr != nil {
			log.Printf("⚠️  availability refresh after booking failed: %v", rErr)
		}
	}

	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

// Confirmation shows the booked stay (workflow step 6).
func (bc *BookingController) Confirmation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("reservationId"), 10, 64)
	if err != nil || id == 0 {
		respondServiceError(c, services.ErrReservationNotFound)
		return
	}
	confirmation, err := bc.BookingSvc.Confirmation(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, confirmation)
}

func (bc *BookingController) parseStay(c *gin.Context, rawIn, rawOut string) (time.Time, time.Time, bool) {
	checkIn, err := parseDate(rawIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check-in date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	checkOut, err := parseDate(rawOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid check-out date, expected YYYY-MM-DD")
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}
