package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomType holds the nightly price. Reservations charge the price that was
// current at booking time, so edits here never rewrite an existing TotalPrice.
type RoomType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeName    string          `gorm:"size:100" json:"typeName"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	Capacity    uint            `json:"capacity"`
	ImageURL    string          `gorm:"size:255" json:"imageUrl,omitempty"`
	Amenities   datatypes.JSON  `json:"amenities,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Rooms []Room `gorm:"foreignKey:RoomTypeID" json:"-"`
}
