package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber string `json:"roomNumber" gorm:"column:room_number;uniqueIndex;type:varchar(50)"`
	RoomTypeID uint   `json:"roomTypeId" gorm:"column:room_type_id;index"`

	// IsAvailable is a display cache maintained by the availability refresher
	// and recomputed after room/reservation writes. Conflict detection always
	// queries reservations directly; never trust this flag for booking.
	IsAvailable bool `json:"isAvailable" gorm:"column:is_available;default:true"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	RoomType     RoomType      `gorm:"foreignKey:RoomTypeID" json:"roomType,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:RoomID;constraint:OnDelete:CASCADE" json:"-"`
}

// TypeAndNumber is the display label used in admin pick lists.
func (r Room) TypeAndNumber() string {
	return fmt.Sprintf("%s - %s", r.RoomNumber, r.RoomType.TypeName)
}
