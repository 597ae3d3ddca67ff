package handlers

import (
	"errors"
	"net/http"

	"expertbook/middleware"
	"expertbook/services/admin"
	"expertbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes admin signup, login and logout.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

type adminSignUpPayload struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// SignUp registers a new admin account.
func (h *AdminHandler) SignUp(c *gin.Context) {
	var payload adminSignUpPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	created, err := h.Service.SignUp(payload.Name, payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, admin.ErrAlreadyExists) {
			utils.JSONError(c, http.StatusConflict, "Admin already exists", "")
			return
		}
		zap.L().Error("admin signup failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin registered successfully",
		"id":      created.ID.Hex(),
	})
}

type adminSignInPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignIn verifies credentials and returns a bearer token.
func (h *AdminHandler) SignIn(c *gin.Context) {
	var payload adminSignInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONValidationError(c, utils.ExtractFieldErrors(err))
		return
	}

	resp, err := h.Service.SignIn(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		zap.L().Error("admin signin failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SignOut revokes the caller's cached token. Requires the admin auth
// middleware to have run.
func (h *AdminHandler) SignOut(c *gin.Context) {
	adminID := c.GetString(middleware.AdminIDKey)
	if adminID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Unauthorized", "")
		return
	}

	if err := h.Service.RevokeToken(adminID); err != nil {
		zap.L().Error("token revocation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Signed out"})
}
