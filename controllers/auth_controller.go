package controllers

import (
	"net/http"

	"hotel-management/services"
	"hotel-management/utils"

	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	AuthSvc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{AuthSvc: svc}
}

// Login checks employee credentials and issues the session token, both in
// the body and as a cookie for browser clients.
func (ac *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "email and password required")
		return
	}

	token, employee, err := ac.AuthSvc.Login(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.SetCookie("staff_token", token, 24*3600, "/", "", false, true)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token":    token,
		"fullName": employee.FullName(),
	})
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie("staff_token", "", -1, "/", "", false, true)
	utils.JSONSuccess(c, http.StatusOK, gin.H{"loggedOut": true})
}
