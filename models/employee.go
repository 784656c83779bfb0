package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FirstName string     `gorm:"size:100" json:"firstName"`
	LastName  string     `gorm:"size:100" json:"lastName"`
	Position  string     `gorm:"size:100" json:"position"`
	Birthday  *time.Time `json:"birthday,omitempty"`
	Phone     string     `gorm:"size:50" json:"phone"`
	Email     string     `gorm:"uniqueIndex;size:150" json:"email"`

	// store hashed password, never return in JSON
	PasswordHash string `gorm:"size:255" json:"-"`

	HireDate       *time.Time      `gorm:"column:hire_date" json:"hireDate,omitempty"`
	ResidencePlace string          `gorm:"column:residence_place;size:255" json:"residencePlace"`
	Education      string          `gorm:"size:255" json:"education"`
	Salary         decimal.Decimal `gorm:"type:decimal(10,2)" json:"salary"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ServiceUsages []ServiceUsage `gorm:"foreignKey:EmployeeID" json:"-"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
