package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/roles"
)

// firebaseProvider implements Provider on top of the Firebase Auth admin client.
type firebaseProvider struct {
	client *auth.Client
}

// NewFirebaseProvider creates a Provider backed by Firebase Auth.
func NewFirebaseProvider(client *auth.Client) Provider {
	if client == nil {
		panic("identity: Firebase Auth client is nil; initialize the Admin SDK before constructing the provider")
	}
	return &firebaseProvider{client: client}
}

func (p *firebaseProvider) ListAccounts(ctx context.Context, max int) ([]models.Account, error) {
	accounts := make([]models.Account, 0, 64)
	iter := p.client.Users(ctx, "")
	for {
		rec, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		accounts = append(accounts, accountFromRecord(rec.UserRecord))
		if max > 0 && len(accounts) >= max {
			break
		}
	}
	return accounts, nil
}

func (p *firebaseProvider) GetAccount(ctx context.Context, id string) (*models.Account, error) {
	rec, err := p.client.GetUser(ctx, id)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, fmt.Errorf("account '%s': %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account '%s': %w", id, err)
	}
	account := accountFromRecord(rec)
	return &account, nil
}

func (p *firebaseProvider) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	rec, err := p.client.GetUserByEmail(ctx, email)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, fmt.Errorf("account for '%s': %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get account by email '%s': %w", email, err)
	}
	account := accountFromRecord(rec)
	return &account, nil
}

func (p *firebaseProvider) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	rec, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", fmt.Errorf("account for '%s': %w", email, ErrEmailExists)
		}
		return "", fmt.Errorf("failed to create account for '%s': %w", email, err)
	}
	return rec.UID, nil
}

func (p *firebaseProvider) SetClaims(ctx context.Context, id string, claims roles.Claims) error {
	if err := p.client.SetCustomUserClaims(ctx, id, claims.ToClaimsMap()); err != nil {
		if auth.IsUserNotFound(err) {
			return fmt.Errorf("account '%s': %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to set claims on account '%s': %w", id, err)
	}
	return nil
}

func (p *firebaseProvider) DeleteAccount(ctx context.Context, id string) error {
	if err := p.client.DeleteUser(ctx, id); err != nil {
		if auth.IsUserNotFound(err) {
			return fmt.Errorf("account '%s': %w", id, ErrNotFound)
		}
		return fmt.Errorf("failed to delete account '%s': %w", id, err)
	}
	return nil
}

// accountFromRecord projects a Firebase user record onto the API account
// shape, deriving the role from the custom claims.
func accountFromRecord(rec *auth.UserRecord) models.Account {
	claims := roles.ClaimsFromToken(rec.CustomClaims)
	account := models.Account{
		ID:          rec.UID,
		Email:       rec.Email,
		DisplayName: rec.DisplayName,
		PhotoURL:    rec.PhotoURL,
		Claims:      claims,
		Role:        roles.FromClaims(claims).String(),
	}
	if rec.UserMetadata != nil {
		if rec.UserMetadata.CreationTimestamp > 0 {
			account.CreatedAt = time.UnixMilli(rec.UserMetadata.CreationTimestamp).UTC()
		}
		if rec.UserMetadata.LastLogInTimestamp > 0 {
			lastSignIn := time.UnixMilli(rec.UserMetadata.LastLogInTimestamp).UTC()
			account.LastSignInAt = &lastSignIn
		}
	}
	return account
}
