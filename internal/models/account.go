package models

import (
	"time"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/roles"
)

// Account represents a Firebase Auth user as exposed by the admin API.
// Identity lives entirely in the external provider; this struct is a
// per-request projection, never persisted locally.
type Account struct {
	ID           string       `json:"id"`
	Email        string       `json:"email"`
	DisplayName  string       `json:"displayName,omitempty"`
	PhotoURL     string       `json:"photoURL,omitempty"`
	CreatedAt    time.Time    `json:"createdAt"`
	LastSignInAt *time.Time   `json:"lastSignInAt,omitempty"`
	Claims       roles.Claims `json:"claims"`
	Role         string       `json:"role"`
}
