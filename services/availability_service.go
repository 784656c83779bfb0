package services

import (
	"fmt"
	"time"

	"hotel-management/models"

	"gorm.io/gorm"
)

// AvailabilityService answers whether a room is free for a candidate stay.
// It only reads reservations; Room.IsAvailable is never consulted here.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// overlapScope matches reservations for roomID whose [check_in, check_out)
// intersects [checkIn, checkOut): a1 < b2 AND b1 < a2.
func overlapScope(db *gorm.DB, roomID uint, checkIn, checkOut time.Time) *gorm.DB {
	return db.Model(&models.Reservation{}).
		Where("room_id = ?", roomID).
		Where("check_in_date < ? AND ? < check_out_date", DateOnly(checkOut), DateOnly(checkIn))
}

// IsRoomAvailable reports whether no existing reservation overlaps the
// candidate interval. Callers must have rejected checkIn >= checkOut already;
// this is a pure read.
func (s *AvailabilityService) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	if err := overlapScope(s.DB, roomID, checkIn, checkOut).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check room availability: %w", err)
	}
	return count == 0, nil
}

// AvailableRoomsByType lists rooms of the given type with no reservation
// overlapping the candidate interval, with their type preloaded for display.
func (s *AvailabilityService) AvailableRoomsByType(roomTypeID uint, checkIn, checkOut time.Time) ([]models.Room, error) {
	busy := s.DB.Model(&models.Reservation{}).
		Select("room_id").
		Where("check_in_date < ? AND ? < check_out_date", DateOnly(checkOut), DateOnly(checkIn))

	var rooms []models.Room
	err := s.DB.
		Preload("RoomType").
		Where("room_type_id = ?", roomTypeID).
		Where("id NOT IN (?)", busy).
		Order("room_number").
		Find(&rooms).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return rooms, nil
}
