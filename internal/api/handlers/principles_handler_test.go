package handlers

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/domain/principles"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPrinciplesService struct {
	list      []principles.Principle
	created   *principles.Principle
	createErr error
	deleteErr error
}

func (s *stubPrinciplesService) Load(_ context.Context) error { return nil }

func (s *stubPrinciplesService) List(_ context.Context) []principles.Principle {
	return s.list
}

func (s *stubPrinciplesService) Create(_ context.Context, _ principles.CreatePrincipleRequest) (*principles.Principle, error) {
	return s.created, s.createErr
}

func (s *stubPrinciplesService) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func newPrinciplesRouter(svc principles.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPrinciplesHandler(svc)
	router.GET("/api/principles", h.List)
	router.POST("/api/principles", h.Create)
	router.DELETE("/api/principles", h.Delete)
	return router
}

func TestListPrinciples(t *testing.T) {
	svc := &stubPrinciplesService{list: []principles.Principle{
		{ID: "1", Content: "Cut losses early", Category: principles.CategoryEconomic, Number: "1.1"},
	}}
	router := newPrinciplesRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/principles", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Cut losses early")
	assert.Contains(t, w.Body.String(), "1.1")
}

func TestCreatePrinciple(t *testing.T) {
	svc := &stubPrinciplesService{created: &principles.Principle{
		ID: "1", Content: "Cut losses early", Category: principles.CategoryEconomic, Number: "1.1",
	}}
	router := newPrinciplesRouter(svc)

	body := `{"text":"Cut losses early","category":"Economic"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/principles", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Principle saved successfully")
	assert.Contains(t, w.Body.String(), "1.1")
}

func TestCreatePrincipleEmptyText(t *testing.T) {
	svc := &stubPrinciplesService{createErr: principles.ErrEmptyText}
	router := newPrinciplesRouter(svc)

	// The binding:"required" tag rejects the empty text before the
	// service is reached.
	body := `{"text":"","category":"Economic"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/principles", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePrinciple(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		svcErr   error
		expected int
		message  string
	}{
		{
			name:     "Successful delete",
			query:    "?id=1",
			expected: http.StatusOK,
			message:  "Principle deleted successfully",
		},
		{
			name:     "Missing id",
			query:    "",
			expected: http.StatusBadRequest,
			message:  "Principle ID is required",
		},
		{
			name:     "Unknown id",
			query:    "?id=missing",
			svcErr:   principles.ErrNotFound,
			expected: http.StatusNotFound,
			message:  "Principle not found",
		},
		{
			name:     "Persistence failure",
			query:    "?id=1",
			svcErr:   errors.New("disk full"),
			expected: http.StatusInternalServerError,
			message:  "Failed to delete principle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newPrinciplesRouter(&stubPrinciplesService{deleteErr: tt.svcErr})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodDelete, "/api/principles"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expected, w.Code)
			assert.Contains(t, w.Body.String(), tt.message)
		})
	}
}
