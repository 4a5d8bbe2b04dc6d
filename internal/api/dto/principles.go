package dto

import "github.com/Pmanetas/M-S-Algorithms--sub001/internal/domain/principles"

// CreatePrincipleResponse wraps the status envelope with the stored
// principle, including its assigned id and chapter number.
type CreatePrincipleResponse struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message"`
	Principle principles.Principle `json:"principle"`
}
