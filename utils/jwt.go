package utils

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// StaffClaims identifies a logged-in employee on staff-only routes. Subject
// carries the employee ID.
type StaffClaims struct {
	FullName string `json:"fullName"`
	jwt.RegisteredClaims
}

const staffTokenTTL = 24 * time.Hour

// SignStaffToken issues a signed session token for an employee.
func SignStaffToken(secret []byte, employeeID uint, fullName string) (string, error) {
	if len(secret) == 0 {
		return "", errors.New("jwt secret not configured")
	}
	now := time.Now().UTC()
	claims := StaffClaims{
		FullName: fullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(employeeID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(staffTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseStaffToken validates a session token and returns its claims.
func ParseStaffToken(secret []byte, raw string) (*StaffClaims, error) {
	claims := &StaffClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// EmployeeID extracts the numeric subject from validated claims.
func (c *StaffClaims) EmployeeID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
