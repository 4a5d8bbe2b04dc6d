package handlers

import (
	"errors"
	"net/http"

	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/api/dto"
	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/domain/principles"
	"github.com/gin-gonic/gin"
)

// PrinciplesHandler handles HTTP requests for the principles notebook
type PrinciplesHandler struct {
	service principles.Service
}

// NewPrinciplesHandler creates a new principles handler instance
func NewPrinciplesHandler(service principles.Service) *PrinciplesHandler {
	return &PrinciplesHandler{service: service}
}

// List returns every stored principle in insertion order.
func (h *PrinciplesHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.List(c.Request.Context()))
}

// Create stores a new principle and assigns its chapter number.
func (h *PrinciplesHandler) Create(c *gin.Context) {
	var req principles.CreatePrincipleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{
			Success: false,
			Message: "Invalid request format",
		})
		return
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var domainErr *principles.Error
		if errors.As(err, &domainErr) {
			c.JSON(http.StatusBadRequest, dto.StatusResponse{
				Success: false,
				Message: domainErr.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{
			Success: false,
			Message: "Failed to save principle",
		})
		return
	}

	c.JSON(http.StatusOK, dto.CreatePrincipleResponse{
		Success:   true,
		Message:   "Principle saved successfully",
		Principle: *p,
	})
}

// Delete removes a principle by id.
func (h *PrinciplesHandler) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.StatusResponse{
			Success: false,
			Message: "Principle ID is required",
		})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, principles.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.StatusResponse{
				Success: false,
				Message: "Principle not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.StatusResponse{
			Success: false,
			Message: "Failed to delete principle",
		})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		Success: true,
		Message: "Principle deleted successfully",
	})
}
