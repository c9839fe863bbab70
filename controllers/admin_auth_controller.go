package controllers

import (
	"net/http"

	"vitrine/services"

	"github.com/gin-gonic/gin"
)

// AdminAuthController handles admin login and invitations.
type AdminAuthController struct {
	auth *services.AuthService
}

func NewAdminAuthController(auth *services.AuthService) *AdminAuthController {
	return &AdminAuthController{auth: auth}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /admin_panel/login
func (ac *AdminAuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	token, svcErr := ac.auth.Login(c.Request.Context(), req.Email, req.Password)
	if svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

type inviteRequest struct {
	Email string `json:"email" binding:"required"`
}

// Invite handles POST /admin_panel/invite_admin
func (ac *AdminAuthController) Invite(c *gin.Context) {
	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	if svcErr := ac.auth.Invite(c.Request.Context(), req.Email); svcErr != nil {
		abortWithServiceError(c, svcErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Invitation sent"})
}
