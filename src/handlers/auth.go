package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vwoinilowicz/portfolio-backend/src/middleware"
	"github.com/vwoinilowicz/portfolio-backend/src/services"
)

// AuthHandler handles login, one-time setup and identity lookup
type AuthHandler struct {
	adminService *services.AdminService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(adminService *services.AdminService) *AuthHandler {
	return &AuthHandler{adminService: adminService}
}

// LoginRequest is the login request body. Empty fields are reported as
// field-level validation errors, so no binding tags here.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HandleLogin authenticates the administrator and returns a session token
// plus the public user fields.
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	admin, err := h.adminService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err, "")
		return
	}

	token, err := middleware.GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user":    admin.Public(),
	})
}

// HandleMe returns the account behind the presented token.
func (h *AuthHandler) HandleMe(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	admin, err := h.adminService.GetByID(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Usuario no encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    admin.Public(),
	})
}

// HandleSetup creates the first administrator account. It succeeds exactly
// once per store.
func (h *AuthHandler) HandleSetup(c *gin.Context) {
	var req services.SetupInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}

	if _, err := h.adminService.Setup(c.Request.Context(), req); err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Usuario administrador creado exitosamente",
	})
}
