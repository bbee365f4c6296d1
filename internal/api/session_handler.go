package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/middleware"
)

// SessionHandler describes the authenticated caller to the dashboard client.
type SessionHandler struct{}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Current handles GET /api/session. It requires only a valid token; the
// client uses the resolved role to drive its route guard.
func (h *SessionHandler) Current(c *gin.Context) {
	c.JSON(http.StatusOK, SessionResponse{
		ID:    middleware.CallerID(c),
		Email: middleware.CallerEmail(c),
		Role:  middleware.CallerRole(c).String(),
	})
}
