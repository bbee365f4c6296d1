// Package identity wraps the external identity provider behind a small
// capability surface so services and tests do not depend on the Firebase
// SDK types directly.
package identity

import (
	"context"
	"errors"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/roles"
)

var (
	// ErrNotFound is returned when no account exists for the given id or email.
	ErrNotFound = errors.New("account not found")
	// ErrEmailExists is returned when creating an account with an email
	// that is already registered.
	ErrEmailExists = errors.New("email already in use")
)

// Provider is the identity provider capability surface consumed by the
// admin API: account listing, lifecycle, and custom-claim management.
// Token verification is handled separately by the auth middleware.
type Provider interface {
	// ListAccounts returns up to max accounts. max <= 0 means the provider default.
	ListAccounts(ctx context.Context, max int) ([]models.Account, error)
	GetAccount(ctx context.Context, id string) (*models.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	// CreateAccount registers a new account and returns its id.
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	// SetClaims replaces the account's custom claim set.
	SetClaims(ctx context.Context, id string, claims roles.Claims) error
	DeleteAccount(ctx context.Context, id string) error
}
