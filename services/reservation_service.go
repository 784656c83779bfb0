// services/reservation_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"hotel-management/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService is the admin-side CRUD over reservations. It enforces
// the same rules as the public booking flow: strict date ordering, price
// fixed at write time, and no overlapping stays for a room. Creates and
// edits run under the room row lock exactly like BookingService does.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// ListScoped returns reservations with customer and room/type preloaded,
// shaped by the caller's scopes (ordering and name filter).
func (s *ReservationService) ListScoped(scopes ...func(*gorm.DB) *gorm.DB) ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.
		Preload("Customer").
		Preload("Room.RoomType").
		Scopes(scopes...).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return list, nil
}

func (s *ReservationService) GetDetails(id uint) (*models.Reservation, error) {
	var res models.Reservation
	err := s.DB.
		Preload("Customer").
		Preload("Room.RoomType").
		First(&res, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	return &res, nil
}

// Create books a stay for an existing customer, admin-side.
func (s *ReservationService) Create(customerID, roomID uint, checkIn, checkOut time.Time) (*models.Reservation, error) {
	if err := ValidateStayDates(checkIn, checkOut); err != nil {
		return nil, err
	}
	if roomID == 0 {
		return nil, ErrMissingRoom
	}

	in := DateOnly(checkIn)
	out := DateOnly(checkOut)

	var reservation models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		room, roomType, err := lockRoomWithType(tx, roomID)
		if err != nil {
			return err
		}

		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("failed to load customer: %w", err)
		}

		var conflicts int64
		if err := overlapScope(tx, room.ID, in, out).Count(&conflicts).Error; err != nil {
			return fmt.Errorf("failed to check for overlapping stays: %w", err)
		}
		if conflicts > 0 {
			return ErrRoomConflict
		}

		reservation = models.Reservation{
			CustomerID:   customer.ID,
			RoomID:       room.ID,
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

// Update rewrites a stay and recomputes its price from the room's current
// nightly rate. The reservation itself is excluded from the overlap check.
func (s *ReservationService) Update(id, customerID, roomID uint, checkIn, checkOut time.Time) (*models.Reservation, error) {
	if err := ValidateStayDates(checkIn, checkOut); err != nil {
		return nil, err
	}
	if roomID == 0 {
		return nil, ErrMissingRoom
	}

	in := DateOnly(checkIn)
	out := DateOnly(checkOut)

	var updated models.Reservation
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Reservation
		if err := tx.First(&existing, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("failed to load reservation: %w", err)
		}

		room, roomType, err := lockRoomWithType(tx, roomID)
		if err != nil {
			return err
		}

		var customer models.Customer
		if err := tx.First(&customer, customerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCustomerNotFound
			}
			return fmt.Errorf("failed to load customer: %w", err)
		}

		var conflicts int64
		if err := overlapScope(tx, room.ID, in, out).
			Where("id <> ?", existing.ID).
			Count(&conflicts).Error; err != nil {
			return fmt.Errorf("failed to check for overlapping stays: %w", err)
		}
		if conflicts > 0 {
			return ErrRoomConflict
		}

		existing.CustomerID = customer.ID
		existing.RoomID = room.ID
		existing.CheckInDate = in
		existing.CheckOutDate = out
		existing.TotalPrice = TotalPrice(in, out, roomType.Price)
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update reservation: %w", err)
		}
		updated = existing
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ReservationService) Delete(id uint) error {
	res := s.DB.Delete(&models.Reservation{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete reservation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func lockRoomWithType(tx *gorm.DB, roomID uint) (*models.Room, *models.RoomType, error) {
	var room models.Room
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRoomNotFound
		}
		return nil, nil, fmt.Errorf("failed to load room: %w", err)
	}
	var roomType models.RoomType
	if err := tx.First(&roomType, room.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRoomTypeNotFound
		}
		return nil, nil, fmt.Errorf("failed to load room type: %w", err)
	}
	return &room, &roomType, nil
}
