package services

import (
	"testing"

	"hotel-management/models"
	"hotel-management/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testSecret = []byte("test-signing-secret")

func createEmployee(t *testing.T, db *gorm.DB, email, password string) models.Employee {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	emp := models.Employee{
		FirstName:    "Karel",
		LastName:     "Dvorak",
		Position:     "Receptionist",
		Email:        email,
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(&emp).Error)
	return emp
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	emp := createEmployee(t, db, "karel@hotel.local", "s3cret")

	svc := NewAuthService(db, testSecret)
	token, got, err := svc.Login("karel@hotel.local", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, emp.ID, got.ID)

	claims, err := utils.ParseStaffToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "Karel Dvorak", claims.FullName)

	id, err := claims.EmployeeID()
	require.NoError(t, err)
	assert.Equal(t, emp.ID, id)
}

// Unknown email and wrong password are indistinguishable to the caller.
func TestLoginInvalidCredentials(t *testing.T) {
	db := setupTestDB(t)
	createEmployee(t, db, "karel@hotel.local", "s3cret")

	svc := NewAuthService(db, testSecret)

	_, _, err := svc.Login("karel@hotel.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("nobody@hotel.local", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login("", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginTokenRejectsWrongSecret(t *testing.T) {
	db := setupTestDB(t)
	createEmployee(t, db, "karel@hotel.local", "s3cret")

	svc := NewAuthService(db, testSecret)
	token, _, err := svc.Login("karel@hotel.local", "s3cret")
	require.NoError(t, err)

	_, err = utils.ParseStaffToken([]byte("other-secret"), token)
	assert.Error(t, err)
}
