package routes

import (
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/handlers"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

const principlesPath = "/api/principles"

// PrinciplesRoutes handles the setup of principles-related routes
type PrinciplesRoutes struct {
	handler *handlers.PrinciplesHandler
	cache   *middleware.CacheMiddleware
}

// NewPrinciplesRoutes creates a new PrinciplesRoutes instance
func NewPrinciplesRoutes(handler *handlers.PrinciplesHandler, cache *middleware.CacheMiddleware) *PrinciplesRoutes {
	return &PrinciplesRoutes{handler: handler, cache: cache}
}

// RegisterRoutes registers all principles-related routes
func (pr *PrinciplesRoutes) RegisterRoutes(router *gin.Engine) {
	invalidate := pr.cache.CacheInvalidate(principlesPath)

	router.GET(principlesPath, pr.cache.CacheResponse(), pr.handler.List)
	router.POST(principlesPath, invalidate, pr.handler.Create)
	router.DELETE(principlesPath, invalidate, pr.handler.Delete)
}
