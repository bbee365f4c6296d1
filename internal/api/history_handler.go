package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/core"
)

// HistoryHandler handles the per-account conversion history endpoint.
type HistoryHandler struct {
	history core.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(hs core.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: hs}
}

// History handles GET /api/history/:accountId.
func (h *HistoryHandler) History(c *gin.Context) {
	entries, err := h.history.ForAccount(c.Request.Context(), c.Param("accountId"))
	if err != nil {
		if errors.Is(err, core.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Account ID is required"})
			return
		}
		if errors.Is(err, core.ErrAccountNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Account not found"})
			return
		}
		if errors.Is(err, core.ErrStoreUnavailable) {
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "Data store unavailable"})
			return
		}
		log.Printf("failed to fetch history: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, entries)
}
