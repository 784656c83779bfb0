// controllers/employee_controller.go
package controllers

import (
	"net/http"
	"time"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var employeeSorts = utils.NewSortingDictionary(
	func(db *gorm.DB) *gorm.DB { return db.Order("last_name, first_name") },
	map[string]func(*gorm.DB) *gorm.DB{
		"position":    func(db *gorm.DB) *gorm.DB { return db.Order("position") },
		"hiredate":    func(db *gorm.DB) *gorm.DB { return db.Order("hire_date") },
		"salary":      func(db *gorm.DB) *gorm.DB { return db.Order("salary") },
		"salary_desc": func(db *gorm.DB) *gorm.DB { return db.Order("salary DESC") },
	},
)

type EmployeePayload struct {
	FirstName      string          `json:"firstName" binding:"required"`
	LastName       string          `json:"lastName" binding:"required"`
	Position       string          `json:"position"`
	Birthday       string          `json:"birthday"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email" binding:"required"`
	Password       string          `json:"password"`
	HireDate       string          `json:"hireDate"`
	ResidencePlace string          `json:"residencePlace"`
	Education      string          `json:"education"`
	Salary         decimal.Decimal `json:"salary"`
}

type EmployeeController struct {
	Employees *services.EntityService[models.Employee]
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{Employees: services.NewEntityService[models.Employee](db)}
}

func (ec *EmployeeController) GetEmployees(c *gin.Context) {
	sortOrder := c.Query("sort")
	employees, err := ec.Employees.List(
		func(db *gorm.DB) *gorm.DB { return employeeSorts.Apply(db, sortOrder) },
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, employees)
}

func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	employee, err := ec.Employees.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, employee)
}

func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var payload EmployeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "first name, last name and email are required")
		return
	}
	if payload.Password == "" {
		utils.JSONError(c, http.StatusBadRequest, "password is required")
		return
	}

	employee, err := payload.toModel()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ec.Employees.Create(employee); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, employee)
}

func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var payload EmployeePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "first name, last name and email are required")
		return
	}
	employee, err := payload.toModel()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := ec.Employees.Update(id, employee); err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := ec.Employees.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// DeleteEmployee removes the employee. Their service usages stay, with the
// attribution nulled out.
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ec.Employees.DB.Model(&models.ServiceUsage{}).
		Where("employee_id = ?", id).
		Update("employee_id", nil).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if err := ec.Employees.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (p EmployeePayload) toModel() (*models.Employee, error) {
	employee := models.Employee{
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Position:       p.Position,
		Phone:          p.Phone,
		Email:          p.Email,
		ResidencePlace: p.ResidencePlace,
		Education:      p.Education,
		Salary:         p.Salary,
	}
	if p.Birthday != "" {
		birthday, err := time.Parse(dateLayout, p.Birthday)
		if err != nil {
			return nil, errInvalidDateField
		}
		employee.Birthday = &birthday
	}
	if p.HireDate != "" {
		hireDate, err := time.Parse(dateLayout, p.HireDate)
		if err != nil {
			return nil, errInvalidDateField
		}
		employee.HireDate = &hireDate
	}
	if p.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		employee.PasswordHash = string(hash)
	}
	return &employee, nil
}
