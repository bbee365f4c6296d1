package middleware

import (
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/roles"
)

// ErrorResponse is a local definition for sending standardized error
// messages. It mirrors the one in internal/api to avoid an import cycle.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Context keys populated by the auth middleware for downstream handlers.
const (
	ContextCallerID    = "callerID"
	ContextCallerEmail = "callerEmail"
	ContextCallerRole  = "callerRole"
)

// TokenVerifier verifies a Firebase ID token. *auth.Client satisfies it;
// tests substitute a stub.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// AuthMiddleware provides Gin middleware for Firebase token authentication
// and role gating. Claims are resolved once per request from the verified
// token, never from a store lookup, so the decision always reflects the
// token's issued-at privilege snapshot.
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware instance. It panics on a
// nil verifier, as the application cannot gate routes without one.
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	if verifier == nil {
		panic("AuthMiddleware requires a non-nil TokenVerifier")
	}
	return &AuthMiddleware{verifier: verifier}
}

// authenticate verifies the bearer token and attaches the caller's id,
// email, and derived role to the context. On any failure it aborts the
// request with 401 and returns false. There is no warn-and-continue path:
// authorization that cannot be positively established is denied.
func (m *AuthMiddleware) authenticate(c *gin.Context) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "No token provided"})
		return false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"})
		return false
	}

	token, err := m.verifier.VerifyIDToken(c.Request.Context(), parts[1])
	if err != nil {
		// Generic message to the client; the request logger records the
		// failure server-side.
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid or expired authentication token"})
		return false
	}

	claims := roles.ClaimsFromToken(token.Claims)
	c.Set(ContextCallerID, token.UID)
	c.Set(ContextCallerRole, roles.FromClaims(claims))
	if email, ok := token.Claims["email"].(string); ok {
		c.Set(ContextCallerEmail, email)
	}
	return true
}

// VerifyToken authenticates the request without any role requirement.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			return
		}
		c.Next()
	}
}

// RequireAdmin authenticates the request and requires at least the admin
// role. Super admins pass by role ordering.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			return
		}
		if !CallerRole(c).AtLeast(roles.Admin) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Requires Admin privileges"})
			return
		}
		c.Next()
	}
}

// RequireSuperAdmin authenticates the request and requires the superAdmin
// role.
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.authenticate(c) {
			return
		}
		if !CallerRole(c).AtLeast(roles.SuperAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{Error: "Requires Super Admin privileges"})
			return
		}
		c.Next()
	}
}

// CallerID returns the authenticated caller's account id, or "" if the
// request was not authenticated.
func CallerID(c *gin.Context) string {
	raw, _ := c.Get(ContextCallerID)
	id, _ := raw.(string)
	return id
}

// CallerEmail returns the authenticated caller's email, or "".
func CallerEmail(c *gin.Context) string {
	raw, _ := c.Get(ContextCallerEmail)
	email, _ := raw.(string)
	return email
}

// CallerRole returns the authenticated caller's derived role. Missing
// context resolves to the user role (fail-closed).
func CallerRole(c *gin.Context) roles.Role {
	raw, _ := c.Get(ContextCallerRole)
	role, _ := raw.(roles.Role)
	return role
}
