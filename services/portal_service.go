// services/portal_service.go
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

// PortalService backs the customer self-service pages: look up your stays by
// passport number, see the services consumed during a stay, and order a
// service while your reservation is active.
type PortalService struct {
	DB *gorm.DB
}

func NewPortalService(db *gorm.DB) *PortalService {
	return &PortalService{DB: db}
}

// ReservationsByPassport returns a customer's stays ordered by check-in, with
// room and type preloaded for display.
func (s *PortalService) ReservationsByPassport(passportNumber string) (*models.Customer, []models.Reservation, error) {
	passport := strings.TrimSpace(passportNumber)
	if passport == "" {
		return nil, nil, ErrMissingPassport
	}

	var customer models.Customer
	if err := s.DB.Where("passport_number = ?", passport).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCustomerNotFound
		}
		return nil, nil, fmt.Errorf("failed to look up customer: %w", err)
	}

	var reservations []models.Reservation
	err := s.DB.
		Preload("Room.RoomType").
		Where("customer_id = ?", customer.ID).
		Order("check_in_date").
		Find(&reservations).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return &customer, reservations, nil
}

// UsedService is one line of a stay's service bill.
type UsedService struct {
	ServicesName  string          `json:"servicesName"`
	Price         decimal.Decimal `json:"price"`
	ExecutionDate time.Time       `json:"executionDate"`
}

// ServicesForReservation lists what a stay consumed, or reservation_not_found
// for an unknown id.
func (s *PortalService) ServicesForReservation(reservationID uint) ([]UsedService, error) {
	var res models.Reservation
	if err := s.DB.First(&res, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}

	var usages []models.ServiceUsage
	err := s.DB.
		Preload("Services").
		Where("reservation_id = ?", reservationID).
		Order("execution_date").
		Find(&usages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list service usages: %w", err)
	}

	used := make([]UsedService, 0, len(usages))
	for _, u := range usages {
		used = append(used, UsedService{
			ServicesName:  u.Services.ServicesName,
			Price:         u.Services.Price,
			ExecutionDate: u.ExecutionDate,
		})
	}
	return used, nil
}

// OrderService records a service usage for the customer's reservation that is
// active today. No stay covering today means the order is refused.
func (s *PortalService) OrderService(customerID, serviceID uint) (*models.ServiceUsage, error) {
	today := DateOnly(time.Now())

	var active models.Reservation
	err := s.DB.
		Where("customer_id = ?", customerID).
		Where("check_in_date <= ? AND check_out_date >= ?", today, today).
		First(&active).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoActiveReservation
		}
		return nil, fmt.Errorf("failed to look up active reservation: %w", err)
	}

	var service models.Service
	if err := s.DB.First(&service, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to load service: %w", err)
	}

	usage := models.ServiceUsage{
		ReservationID: active.ID,
		ServicesID:    service.ID,
		ExecutionDate: time.Now(),
	}
	if err := s.DB.Create(&usage).Error; err != nil {
		return nil, fmt.Errorf("failed to record service usage: %w", err)
	}
	return &usage, nil
}
