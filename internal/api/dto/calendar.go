package dto

import "github.com/Pmanetas/M-S-Algorithms--sub001/internal/domain/calendar"

// CreateEventResponse wraps the status envelope with the dates and ids
// a server-side create expanded into.
type CreateEventResponse struct {
	Success bool                        `json:"success"`
	Message string                      `json:"message"`
	Result  *calendar.CreateEventResult `json:"result"`
}
