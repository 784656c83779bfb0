package models

import (
	"time"

	"gorm.io/gorm"
)

// Customer is deduplicated by passport number during booking: an existing
// passport always wins over whatever other fields the request carried.
type Customer struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName      string     `gorm:"size:100" json:"firstName"`
	LastName       string     `gorm:"size:100" json:"lastName"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	Phone          string     `gorm:"size:50" json:"phone"`
	Email          string     `gorm:"size:150" json:"email"`
	PassportNumber string     `gorm:"column:passport_number;uniqueIndex;size:64" json:"passportNumber"`
	Address        string     `gorm:"size:255" json:"address"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Reservations []Reservation `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"-"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
