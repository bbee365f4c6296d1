package core

import (
	"context"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
)

// AccountService defines account administration operations against the
// identity provider.
type AccountService interface {
	// List returns all accounts with their derived role.
	List(ctx context.Context) ([]models.Account, error)
	// ListAdmins returns exactly the accounts carrying the admin claim,
	// super admins included.
	ListAdmins(ctx context.Context) ([]models.Account, error)
	// CreateAdmin creates an account and grants it the admin claim.
	// It never grants superAdmin.
	CreateAdmin(ctx context.Context, email, password, displayName string) (string, error)
	// Delete removes the target account. It refuses self-deletion and
	// deletion of super admin accounts regardless of the caller's role.
	Delete(ctx context.Context, callerID, targetID string) error
	// Stats summarizes the account population for the dashboard.
	Stats(ctx context.Context) (*models.Stats, error)
	// EnsureSuperAdmin makes sure the designated super admin account
	// carries both the admin and superAdmin claims.
	EnsureSuperAdmin(ctx context.Context, email string) error
}

// DataService reads the end-user feedback and issue collections.
type DataService interface {
	Feedback(ctx context.Context) ([]models.FeedbackEntry, error)
	Issues(ctx context.Context) ([]models.IssueReport, error)
}

// HistoryService reads per-account conversion history.
type HistoryService interface {
	// ForAccount returns the most recent conversions for the account,
	// newest first, capped at the service limit.
	ForAccount(ctx context.Context, accountID string) ([]models.ConversionHistoryEntry, error)
}
