package api

// ErrorResponse is a generic structure for returning errors via the API.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is a generic structure for simple success messages.
// ID is populated by operations that create a resource.
type MessageResponse struct {
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// SessionResponse describes the authenticated caller for the dashboard's
// client-side route guard. The guard is advisory only; the server-side
// middleware remains the trust boundary.
type SessionResponse struct {
	ID    string `json:"id"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
}
