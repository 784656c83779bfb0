// controllers/customer_controller.go
package controllers

import (
	"net/http"

	"hotel-management/models"
	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var customerSorts = utils.NewSortingDictionary(
	func(db *gorm.DB) *gorm.DB { return db.Order("last_name, first_name") },
	map[string]func(*gorm.DB) *gorm.DB{
		"name_desc": func(db *gorm.DB) *gorm.DB { return db.Order("last_name DESC, first_name DESC") },
		"birthday":  func(db *gorm.DB) *gorm.DB { return db.Order("birthday") },
	},
)

type CustomerController struct {
	Customers *services.EntityService[models.Customer]
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{Customers: services.NewEntityService[models.Customer](db)}
}

func (cc *CustomerController) GetCustomers(c *gin.Context) {
	sortOrder := c.Query("sort")
	search := c.Query("search")

	scopes := []func(*gorm.DB) *gorm.DB{
		func(db *gorm.DB) *gorm.DB { return customerSorts.Apply(db, sortOrder) },
	}
	if search != "" {
		scopes = append(scopes, func(db *gorm.DB) *gorm.DB {
			return db.Where("first_name LIKE ? OR last_name LIKE ? OR passport_number LIKE ?",
				"%"+search+"%", "%"+search+"%", "%"+search+"%")
		})
	}

	customers, err := cc.Customers.List(scopes...)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}

func (cc *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	customer, err := cc.Customers.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

func (cc *CustomerController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	customer.ID = 0
	if err := cc.Customers.Create(&customer); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

func (cc *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}
	customer.ID = 0
	if err := cc.Customers.Update(id, &customer); err != nil {
		respondServiceError(c, err)
		return
	}
	updated, err := cc.Customers.GetByID(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

// DeleteCustomer removes the customer together with their reservations and
// those reservations' service usages. The customer row is soft-deleted, so
// the dependents are removed explicitly; otherwise an orphaned reservation
// would keep its room blocked.
func (cc *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	reservationIDs := cc.Customers.DB.Model(&models.Reservation{}).
		Select("id").
		Where("customer_id = ?", id)
	if err := cc.Customers.DB.
		Where("reservation_id IN (?)", reservationIDs).
		Delete(&models.ServiceUsage{}).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if err := cc.Customers.DB.
		Where("customer_id = ?", id).
		Delete(&models.Reservation{}).Error; err != nil {
		respondServiceError(c, err)
		return
	}
	if err := cc.Customers.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
