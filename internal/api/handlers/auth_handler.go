package handlers

import (
	"net/http"

	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/dto"
	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/config"
	"github.com/Pmanetas/M-S-Algorithms--sub001/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler implements the portal's trivial credential gate. There
// are no sessions or tokens; the frontend only needs a yes/no.
type AuthHandler struct {
	auth   config.AuthConfig
	logger *logger.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(auth config.AuthConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: log}
}

// Login checks the posted credentials against the configured pair.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.LoginResponse{
			Success: false,
			Message: "Invalid request format",
		})
		return
	}

	if req.Username != h.auth.Username || req.Password != h.auth.Password {
		h.logger.Info("login failed", zap.String("username", req.Username))
		c.JSON(http.StatusUnauthorized, dto.LoginResponse{
			Success: false,
			Message: "Invalid username or password",
		})
		return
	}

	h.logger.Info("login successful", zap.String("username", req.Username))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Success:  true,
		Message:  "Login successful",
		Username: req.Username,
	})
}

// Logout always succeeds; the client holds the only session state.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}
