package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reservation is a stay of [CheckInDate, CheckOutDate) for one room. Check-out
// day is exclusive: a guest leaving on day X does not conflict with a guest
// arriving on day X. TotalPrice is fixed at create/edit time from the room
// type's nightly price and is not recomputed when that price later changes.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CustomerID uint `gorm:"column:customer_id;index" json:"customerId"`
	RoomID     uint `gorm:"column:room_id;index" json:"roomId"`

	CheckInDate  time.Time       `gorm:"column:check_in_date;type:date" json:"checkInDate"`
	CheckOutDate time.Time       `gorm:"column:check_out_date;type:date" json:"checkOutDate"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalPrice"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Customer      Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Room          Room           `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	ServiceUsages []ServiceUsage `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE" json:"-"`
}
