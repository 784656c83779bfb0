package services

import (
	"errors"
	"strings"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Sentinel errors surfaced to controllers, which map them onto HTTP statuses.
// Validation and conflict errors keep the booking flow on its current step;
// not-found errors become a 404 instead of a raw fault.
var (
	ErrMissingDates        = errors.New("missing_dates")
	ErrInvalidDateRange    = errors.New("invalid_date_range")
	ErrMissingRoom         = errors.New("missing_room")
	ErrMissingPassport     = errors.New("missing_passport")
	ErrCustomerIncomplete  = errors.New("customer_fields_required")
	ErrNoRoomsAvailable    = errors.New("no_rooms_available")
	ErrRoomConflict        = errors.New("room_no_longer_available")
	ErrRoomNotFound        = errors.New("room_not_found")
	ErrRoomTypeNotFound    = errors.New("room_type_not_found")
	ErrCustomerNotFound    = errors.New("customer_not_found")
	ErrReservationNotFound = errors.New("reservation_not_found")
	ErrServiceNotFound     = errors.New("service_not_found")
	ErrNoActiveReservation = errors.New("no_active_reservation")
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrDuplicateKey        = errors.New("duplicate_value")
	ErrNotFound            = errors.New("record_not_found")
)

const mysqlDuplicateEntry = 1062

// isDuplicateKey recognizes unique-constraint violations from the drivers we
// run against: mysql in production, sqlite in tests.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *gomysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return true
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
