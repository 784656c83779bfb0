// services/statistics_service.go
package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// StatisticsService reimplements the reporting routines as plain aggregate
// queries: income by period, most-used services, busiest employees.
type StatisticsService struct {
	DB *gorm.DB
}

func NewStatisticsService(db *gorm.DB) *StatisticsService {
	return &StatisticsService{DB: db}
}

type IncomeResult struct {
	ReservationIncome decimal.Decimal `json:"reservationIncome"`
	ServiceIncome     decimal.Decimal `json:"serviceIncome"`
	TotalIncome       decimal.Decimal `json:"totalIncome"`
}

type TopService struct {
	ServicesName string `json:"servicesName"`
	UsageCount   int    `json:"usageCount"`
}

type TopEmployee struct {
	EmployeeName string `json:"employeeName"`
	ServiceCount int    `json:"serviceCount"`
}

// IncomeByPeriod sums reservation income for stays starting in [start, end]
// and service income for usages executed in the same window. Both queries use
// the half-open range [start, end+1day) so rows whose timestamp carries a
// time-of-day component still land inside the end date.
func (s *StatisticsService) IncomeByPeriod(start, end time.Time) (IncomeResult, error) {
	var out IncomeResult
	var row struct {
		ReservationIncome decimal.Decimal
		ServiceIncome     decimal.Decimal
	}
	windowStart := DateOnly(start)
	windowEnd := DateOnly(end).AddDate(0, 0, 1)

	err := s.DB.Raw(`
SELECT COALESCE(SUM(total_price), 0) AS reservation_income
FROM reservations
WHERE check_in_date >= ? AND check_in_date < ?`,
		windowStart, windowEnd).Scan(&row).Error
	if err != nil {
		return out, fmt.Errorf("failed to compute reservation income: %w", err)
	}
	out.ReservationIncome = row.ReservationIncome

	err = s.DB.Raw(`
SELECT COALESCE(SUM(services.price), 0) AS service_income
FROM service_usages
JOIN services ON services.id = service_usages.services_id
WHERE service_usages.execution_date >= ? AND service_usages.execution_date < ?`,
		windowStart, windowEnd).Scan(&row).Error
	if err != nil {
		return out, fmt.Errorf("failed to compute service income: %w", err)
	}
	out.ServiceIncome = row.ServiceIncome

	out.TotalIncome = out.ReservationIncome.Add(out.ServiceIncome)
	return out, nil
}

// TopServices lists services by usage count, busiest first.
func (s *StatisticsService) TopServices() ([]TopService, error) {
	var list []TopService
	err := s.DB.Raw(`
SELECT services.services_name AS services_name, COUNT(service_usages.id) AS usage_count
FROM services
JOIN service_usages ON service_usages.services_id = services.id
GROUP BY services.id, services.services_name
ORDER BY usage_count DESC, services.services_name
LIMIT 10`).Scan(&list).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute top services: %w", err)
	}
	return list, nil
}

// TopEmployees ranks employees by attributed service usages. Unattributed
// usages (employee deleted or never set) don't count toward anyone.
func (s *StatisticsService) TopEmployees() ([]TopEmployee, error) {
	var rows []struct {
		FirstName    string
		LastName     string
		ServiceCount int
	}
	err := s.DB.Raw(`
SELECT employees.first_name AS first_name, employees.last_name AS last_name,
       COUNT(service_usages.id) AS service_count
FROM employees
JOIN service_usages ON service_usages.employee_id = employees.id
GROUP BY employees.id, employees.first_name, employees.last_name
ORDER BY service_count DESC, employees.last_name, employees.first_name
LIMIT 10`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute top employees: %w", err)
	}
	list := make([]TopEmployee, 0, len(rows))
	for _, r := range rows {
		list = append(list, TopEmployee{
			EmployeeName: r.FirstName + " " + r.LastName,
			ServiceCount: r.ServiceCount,
		})
	}
	return list, nil
}
