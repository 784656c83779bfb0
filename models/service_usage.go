package models

import "time"

// ServiceUsage ties a consumed service to a stay, not directly to a customer.
// EmployeeID is nullable: a usage may be unattributed, and deleting an
// employee nulls it out rather than deleting the usage.
type ServiceUsage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReservationID uint  `gorm:"column:reservation_id;index" json:"reservationId"`
	ServicesID    uint  `gorm:"column:services_id;index" json:"servicesId"`
	EmployeeID    *uint `gorm:"column:employee_id;index" json:"employeeId,omitempty"`

	ExecutionDate time.Time `gorm:"column:execution_date" json:"executionDate"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Reservation Reservation `gorm:"foreignKey:ReservationID" json:"-"`
	Services    Service     `gorm:"foreignKey:ServicesID" json:"services,omitempty"`
	Employee    *Employee   `gorm:"foreignKey:EmployeeID;constraint:OnDelete:SET NULL" json:"employee,omitempty"`
}
