package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ServicesName string          `gorm:"column:services_name;size:150" json:"servicesName"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	Description  string          `gorm:"type:text" json:"description"`
	ImageURL     string          `gorm:"size:255" json:"imageUrl,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ServiceUsages []ServiceUsage `gorm:"foreignKey:ServicesID" json:"-"`
}
