package handlers

import (
	"errors"
	"net/http"

	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/dto"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/domain/calendar"
	"github.com/gin-gonic/gin"
)

// CalendarHandler handles HTTP requests for calendar events
type CalendarHandler struct {
	service calendar.Service
}

// NewCalendarHandler creates a new calendar handler instance
func NewCalendarHandler(service calendar.Service) *CalendarHandler {
	return &CalendarHandler{service: service}
}

// GetEvents returns the full persisted mapping of date keys to events.
func (h *CalendarHandler) GetEvents(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Events(c.Request.Context()))
}

// ReplaceEvents overwrites the whole calendar document with the posted
// mapping. This is the save path for clients that expand recurrence
// locally; last write wins.
func (h *CalendarHandler) ReplaceEvents(c *gin.Context) {
	var events calendar.EventMap
	if err := c.ShouldBindJSON(&events); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{
			Success: false,
			Message: "Invalid request format",
		})
		return
	}

	if err := h.service.ReplaceAll(c.Request.Context(), events); err != nil {
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{
			Success: false,
			Message: "Failed to save calendar events",
		})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: "Calendar events saved successfully",
	})
}

// CreateEvent runs the server-side save path: recurrence expansion,
// country detection, one stored occurrence per expanded date, reminder
// scheduling.
func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	var req calendar.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{
			Success: false,
			Message: "Invalid request format",
		})
		return
	}

	result, err := h.service.CreateEvent(c.Request.Context(), req)
	if err != nil {
		var domainErr *calendar.Error
		if errors.As(err, &domainErr) {
			c.JSON(http.StatusBadRequest, dto.StatusResponse{
				Success: false,
				Message: domainErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{
			Success: false,
			Message: "Failed to save calendar event",
		})
		return
	}

	c.JSON(http.StatusCreated, dto.CreateEventResponse{
		Success: true,
		Message: "Calendar event saved successfully",
		Result:  result,
	})
}

// DeleteEvent removes one occurrence by date key and event id.
func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	dateKey := c.Query("dateKey")
	eventID := c.Query("eventId")

	if dateKey == "" || eventID == "" {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{
			Success: false,
			Message: "dateKey and eventId are required",
		})
		return
	}

	if err := h.service.DeleteOccurrence(c.Request.Context(), dateKey, eventID); err != nil {
		if errors.Is(err, calendar.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.StatusResponse{
				Success: false,
				Message: "Event not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{
			Success: false,
			Message: "Failed to delete calendar event",
		})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: "Event deleted successfully",
	})
}
