package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

var errInvalidDateField = errors.New("invalid date format, expected YYYY-MM-DD")

// parseDate accepts the form's date-only format; empty input maps to the
// zero time, which the services treat as "missing".
func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, raw)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// respondServiceError maps the service-layer sentinel errors onto HTTP
// statuses. Anything unexpected is logged and reported generically so a
// persistence failure never crashes a request with a raw fault.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrMissingDates),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrMissingRoom),
		errors.Is(err, services.ErrMissingPassport),
		errors.Is(err, services.ErrCustomerIncomplete):
		utils.JSONErrorCode(c, http.StatusBadRequest, err.Error(), validationMessage(err))
	case errors.Is(err, services.ErrNoRoomsAvailable),
		errors.Is(err, services.ErrRoomConflict),
		errors.Is(err, services.ErrDuplicateKey),
		errors.Is(err, services.ErrNoActiveReservation):
		utils.JSONErrorCode(c, http.StatusConflict, err.Error(), conflictMessage(err))
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrRoomTypeNotFound),
		errors.Is(err, services.ErrCustomerNotFound),
		errors.Is(err, services.ErrReservationNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrNotFound):
		utils.JSONErrorCode(c, http.StatusNotFound, err.Error(), "not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
	default:
		log.Printf("unexpected error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal error")
	}
}

func validationMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrMissingDates):
		return "check-in and check-out dates are required"
	case errors.Is(err, services.ErrInvalidDateRange):
		return "check-out date must be after check-in date"
	case errors.Is(err, services.ErrMissingRoom):
		return "a room must be selected"
	case errors.Is(err, services.ErrMissingPassport):
		return "passport number is required"
	case errors.Is(err, services.ErrCustomerIncomplete):
		return "first name, last name, phone, email and address are required for a new customer"
	}
	return "invalid input"
}

func conflictMessage(err error) string {
	switch {
	case errors.Is(err, services.ErrNoRoomsAvailable):
		return "no rooms of this type are available for the selected dates"
	case errors.Is(err, services.ErrRoomConflict):
		return "the room was booked by someone else while you were deciding"
	case errors.Is(err, services.ErrNoActiveReservation):
		return "no active reservation for today"
	case errors.Is(err, services.ErrDuplicateKey):
		return "a record with this value already exists"
	}
	return "conflict"
}
