package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/core"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/middleware"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
)

// AccountHandler handles account administration endpoints.
type AccountHandler struct {
	accounts core.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(as core.AccountService) *AccountHandler {
	return &AccountHandler{accounts: as}
}

// mapAccountError maps errors from core.AccountService to HTTP status codes
// and ErrorResponse bodies.
func mapAccountError(c *gin.Context, err error) {
	var statusCode int
	var errResponse ErrorResponse

	switch {
	case errors.Is(err, core.ErrIdentityUnavailable):
		statusCode = http.StatusServiceUnavailable
		errResponse = ErrorResponse{Error: "Identity provider not initialized"}
	case errors.Is(err, core.ErrSelfDelete):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: "Cannot delete yourself"}
	case errors.Is(err, core.ErrSuperAdminTarget):
		statusCode = http.StatusForbidden
		errResponse = ErrorResponse{Error: "Cannot delete Super Admin"}
	case errors.Is(err, core.ErrAccountNotFound):
		statusCode = http.StatusNotFound
		errResponse = ErrorResponse{Error: "Account not found"}
	case errors.Is(err, core.ErrEmailExists):
		statusCode = http.StatusConflict
		errResponse = ErrorResponse{Error: "Email already in use"}
	case errors.Is(err, core.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errResponse = ErrorResponse{Error: "Missing or invalid required fields"}
	default:
		log.Printf("account handler internal error: %v", err)
		statusCode = http.StatusInternalServerError
		errResponse = ErrorResponse{Error: "An unexpected internal server error occurred"}
	}
	c.JSON(statusCode, errResponse)
}

// ListUsers handles GET /api/users.
func (h *AccountHandler) ListUsers(c *gin.Context) {
	accounts, err := h.accounts.List(c.Request.Context())
	if err != nil {
		mapAccountError(c, err)
		return
	}
	c.JSON(http.StatusOK, accounts)
}

// DeleteUser handles DELETE /api/users/:id.
func (h *AccountHandler) DeleteUser(c *gin.Context) {
	if err := h.accounts.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		mapAccountError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "User deleted successfully"})
}

// ListAdmins handles GET /api/admins.
func (h *AccountHandler) ListAdmins(c *gin.Context) {
	admins, err := h.accounts.ListAdmins(c.Request.Context())
	if err != nil {
		mapAccountError(c, err)
		return
	}
	c.JSON(http.StatusOK, admins)
}

// CreateAdmin handles POST /api/admins.
func (h *AccountHandler) CreateAdmin(c *gin.Context) {
	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing or invalid required fields", Details: err.Error()})
		return
	}

	id, err := h.accounts.CreateAdmin(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		mapAccountError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Admin created successfully", ID: id})
}

// DeleteAdmin handles DELETE /api/admins/:id. The deletion rules are the
// same as for users; only the route guard differs.
func (h *AccountHandler) DeleteAdmin(c *gin.Context) {
	if err := h.accounts.Delete(c.Request.Context(), middleware.CallerID(c), c.Param("id")); err != nil {
		mapAccountError(c, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Message: "Admin deleted successfully"})
}

// Stats handles GET /api/stats.
func (h *AccountHandler) Stats(c *gin.Context) {
	stats, err := h.accounts.Stats(c.Request.Context())
	if err != nil {
		mapAccountError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
