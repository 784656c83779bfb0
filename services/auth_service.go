package services

import (
	"errors"
	"fmt"
	"strings"

	"hotel-management/models"
	"hotel-management/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService checks employee credentials and issues session tokens. Staff
// routes consume only "is this request authenticated"; no per-role logic.
type AuthService struct {
	DB     *gorm.DB
	Secret []byte
}

func NewAuthService(db *gorm.DB, secret []byte) *AuthService {
	return &AuthService{DB: db, Secret: secret}
}

// Login verifies email + password against the stored bcrypt hash and returns
// a signed token with the employee. Unknown email and wrong password both
// report invalid_credentials.
func (s *AuthService) Login(email, password string) (string, *models.Employee, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	var employee models.Employee
	if err := s.DB.Where("email = ?", email).First(&employee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("failed to look up employee: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.SignStaffToken(s.Secret, employee.ID, employee.FullName())
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, &employee, nil
}
