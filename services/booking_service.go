// services/booking_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hotel-management/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingService drives the public reservation flow: pick a room type, pick
// dates, pick a free room, identify the customer by passport, persist the
// reservation, show the confirmation.
type BookingService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db, Availability: NewAvailabilityService(db)}
}

// CustomerInput is what the booking form collects on the customer step.
type CustomerInput struct {
	FirstName      string
	LastName       string
	Birthday       *time.Time
	Phone          string
	Email          string
	PassportNumber string
	Address        string
}

// BookingConfirmation joins the persisted reservation with everything the
// confirmation page displays.
type BookingConfirmation struct {
	ReservationID uint                `json:"reservationId"`
	CustomerName  string              `json:"customerName"`
	RoomNumber    string              `json:"roomNumber"`
	TypeName      string              `json:"typeName"`
	NightlyPrice  decimal.Decimal     `json:"nightlyPrice"`
	CheckInDate   time.Time           `json:"checkInDate"`
	CheckOutDate  time.Time           `json:"checkOutDate"`
	Nights        int                 `json:"nights"`
	Reservation   *models.Reservation `json:"reservation"`
}

// ValidateStayDates enforces the date step: both dates present (zero value
// means missing) and check-in strictly before check-out. Equal dates are a
// zero-length stay and are rejected here, before any reservation query runs.
func ValidateStayDates(checkIn, checkOut time.Time) error {
	if checkIn.IsZero() || checkOut.IsZero() {
		return ErrMissingDates
	}
	if !DateOnly(checkIn).Before(DateOnly(checkOut)) {
		return ErrInvalidDateRange
	}
	return nil
}

// RoomByID loads one room with its type for the public room page.
func (s *BookingService) RoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	return &room, nil
}

// RoomsForStay validates the dates and lists free rooms of the chosen type.
// An empty result is a conflict, not a success: the caller returns the user
// to the date step with an explanatory message.
func (s *BookingService) RoomsForStay(roomTypeID uint, checkIn, checkOut time.Time) ([]models.Room, error) {
	if roomTypeID == 0 {
		return nil, ErrRoomTypeNotFound
	}
	if err := ValidateStayDates(checkIn, checkOut); err != nil {
		return nil, err
	}

	var rt models.RoomType
	if err := s.DB.First(&rt, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to load room type: %w", err)
	}

	rooms, err := s.Availability.AvailableRoomsByType(roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return nil, ErrNoRoomsAvailable
	}
	return rooms, nil
}

// IdentifyOrCreateCustomer resolves a customer by passport number. An
// existing passport always wins: any other supplied fields are ignored. A new
// passport requires first/last name, phone, email and address to be
// non-blank; otherwise nothing is created.
func (s *BookingService) IdentifyOrCreateCustomer(input CustomerInput) (*models.Customer, error) {
	return identifyOrCreateCustomer(s.DB, input)
}

func identifyOrCreateCustomer(db *gorm.DB, input CustomerInput) (*models.Customer, error) {
	passport := strings.TrimSpace(input.PassportNumber)
	if passport == "" {
		return nil, ErrMissingPassport
	}

	var existing models.Customer
	err := db.Where("passport_number = ?", passport).First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	for _, field := range []string{input.FirstName, input.LastName, input.Phone, input.Email, input.Address} {
		if strings.TrimSpace(field) == "" {
			return nil, ErrCustomerIncomplete
		}
	}

	customer := models.Customer{
		FirstName:      strings.TrimSpace(input.FirstName),
		LastName:       strings.TrimSpace(input.LastName),
		Birthday:       input.Birthday,
		Phone:          strings.TrimSpace(input.Phone),
		Email:          strings.TrimSpace(input.Email),
		PassportNumber: passport,
		Address:        strings.TrimSpace(input.Address),
	}
	if err := db.Create(&customer).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return &customer, nil
}

// CreateReservation persists the stay. Customer resolution is re-run here so
// the endpoint is safe to call without having gone through the customer step
// first. The whole thing runs in one transaction that locks the room row and
// re-checks the overlap before inserting, which closes the window where two
// concurrent bookings for the same room and dates could both succeed.
func (s *BookingService) CreateReservation(roomID uint, customer CustomerInput, checkIn, checkOut time.Time) (*models.Reservation, error) {
	if roomID == 0 {
		return nil, ErrMissingRoom
	}
	if strings.TrimSpace(customer.PassportNumber) == "" {
		return nil, ErrMissingPassport
	}
	if err := ValidateStayDates(checkIn, checkOut); err != nil {
		return nil, err
	}

	in := DateOnly(checkIn)
	out := DateOnly(checkOut)

	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, roomType, err := lockRoomWithType(tx, roomID)
		if err != nil {
			return err
		}

		cust, err := identifyOrCreateCustomer(tx, customer)
		if err != nil {
			return err
		}

		// Re-check the overlap under the room lock: the free-room listing ran
		// outside this transaction and may be stale.
		var conflicts int64
		if err := overlapScope(tx, room.ID, in, out).Count(&conflicts).Error; err != nil {
			return fmt.Errorf("failed to re-check availability: %w", err)
		}
		if conflicts > 0 {
			return ErrRoomConflict
		}

		reservation = models.Reservation{
			CustomerID:   cust.ID,
			RoomID:       roomID,
			CheckInDate:  in,
			CheckOutDate: out,
			TotalPrice:   TotalPrice(in, out, roomType.Price),
		}
		if err := tx.Create(&reservation).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Confirmation fetches the created reservation joined with customer name,
// room number and type details. An unknown id reports reservation_not_found
// rather than surfacing a raw fault.
func (s *BookingService) Confirmation(reservationID uint) (*BookingConfirmation, error) {
	var res models.Reservation
	err := s.DB.
		Preload("Customer").
		Preload("Room.RoomType").
		First(&res, reservationID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}

	return &BookingConfirmation{
		ReservationID: res.ID,
		CustomerName:  res.Customer.FullName(),
		RoomNumber:    res.Room.RoomNumber,
		TypeName:      res.Room.RoomType.TypeName,
		NightlyPrice:  res.Room.RoomType.Price,
		CheckInDate:   res.CheckInDate,
		CheckOutDate:  res.CheckOutDate,
		Nights:        Nights(res.CheckInDate, res.CheckOutDate),
		Reservation:   &res,
	}, nil
}
