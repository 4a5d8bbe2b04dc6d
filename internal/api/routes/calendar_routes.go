package routes

import (
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/handlers"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/middleware"
	"github.com/gin-gonic/gin"
)

const calendarEventsPath = "/api/calendar-events"

// CalendarRoutes handles the setup of calendar-related routes
type CalendarRoutes struct {
	handler *handlers.CalendarHandler
	cache   *middleware.CacheMiddleware
}

// NewCalendarRoutes creates a new CalendarRoutes instance
func NewCalendarRoutes(handler *handlers.CalendarHandler, cache *middleware.CacheMiddleware) *CalendarRoutes {
	return &CalendarRoutes{handler: handler, cache: cache}
}

// RegisterRoutes registers all calendar-related routes
func (cr *CalendarRoutes) RegisterRoutes(router *gin.Engine) {
	invalidate := cr.cache.CacheInvalidate(calendarEventsPath)

	router.GET(calendarEventsPath, cr.cache.CacheResponse(), cr.handler.GetEvents)
	router.POST(calendarEventsPath, invalidate, cr.handler.ReplaceEvents)
	router.DELETE(calendarEventsPath, invalidate, cr.handler.DeleteEvent)

	// Server-side save path: expansion and country detection happen here
	// instead of in the client.
	router.POST(calendarEventsPath+"/event", invalidate, cr.handler.CreateEvent)
}
