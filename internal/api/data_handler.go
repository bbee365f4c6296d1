package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/core"
)

// DataHandler handles the read-only feedback and issue endpoints.
type DataHandler struct {
	data core.DataService
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(ds core.DataService) *DataHandler {
	return &DataHandler{data: ds}
}

// Feedback handles GET /api/data/feedback.
func (h *DataHandler) Feedback(c *gin.Context) {
	entries, err := h.data.Feedback(c.Request.Context())
	if err != nil {
		if errors.Is(err, core.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Data store unavailable"})
			return
		}
		log.Printf("failed to fetch feedback: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch feedback"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Issues handles GET /api/data/issues.
func (h *DataHandler) Issues(c *gin.Context) {
	reports, err := h.data.Issues(c.Request.Context())
	if err != nil {
		if errors.Is(err, core.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Data store unavailable"})
			return
		}
		log.Printf("failed to fetch issues: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch issues"})
		return
	}
	c.JSON(http.StatusOK, reports)
}
