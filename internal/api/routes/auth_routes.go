package routes

import (
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/handlers"
	"github.com/gin-gonic/gin"
)

// AuthRoutes handles the setup of auth-related routes
type AuthRoutes struct {
	handler *handlers.AuthHandler
}

// NewAuthRoutes creates a new AuthRoutes instance
func NewAuthRoutes(handler *handlers.AuthHandler) *AuthRoutes {
	return &AuthRoutes{handler: handler}
}

// RegisterRoutes registers all auth-related routes
func (ar *AuthRoutes) RegisterRoutes(router *gin.Engine) {
	router.POST("/api/login", ar.handler.Login)
	router.POST("/api/logout", ar.handler.Logout)
}
