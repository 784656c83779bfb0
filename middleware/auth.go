package middleware

import (
	"log"
	"net/http"
	"strings"

	"hotel-management/models"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const EmployeeIDKey = "employeeId"

// RequireStaff gates staff-only routes on a valid Bearer token (or the
// session cookie set at login) belonging to an existing employee.
func RequireStaff(db *gorm.DB, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := bearerToken(c)
		if raw == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := utils.ParseStaffToken(secret, raw)
		if err != nil {
			log.Printf("token error: %v", err)
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		id, err := claims.EmployeeID()
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		var employee models.Employee
		if err := db.First(&employee, id).Error; err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(EmployeeIDKey, employee.ID)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	if cookie, err := c.Cookie("staff_token"); err == nil {
		return cookie
	}
	return ""
}
