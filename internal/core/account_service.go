package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/Muhammadd-01/Currency-Converter-App/internal/identity"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/models"
	"github.com/Muhammadd-01/Currency-Converter-App/internal/roles"
)

// listPageSize caps how many accounts a single listing pulls from the
// identity provider.
const listPageSize = 1000

// accountService implements AccountService against an identity.Provider.
type accountService struct {
	provider identity.Provider
}

// NewAccountService creates a new AccountService instance.
func NewAccountService(provider identity.Provider) AccountService {
	return &accountService{provider: provider}
}

func (s *accountService) List(ctx context.Context) ([]models.Account, error) {
	if s.provider == nil {
		return nil, ErrIdentityUnavailable
	}
	accounts, err := s.provider.ListAccounts(ctx, listPageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) ListAdmins(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	admins := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if a.Claims.Admin {
			admins = append(admins, a)
		}
	}
	return admins, nil
}

func (s *accountService) CreateAdmin(ctx context.Context, email, password, displayName string) (string, error) {
	if s.provider == nil {
		return "", ErrIdentityUnavailable
	}
	if email == "" || password == "" || displayName == "" {
		return "", ErrInvalidInput
	}

	id, err := s.provider.CreateAccount(ctx, email, password, displayName)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			return "", fmt.Errorf("%w: %s", ErrEmailExists, email)
		}
		return "", fmt.Errorf("failed to create admin account: %w", err)
	}

	// Grant the admin claim only. Promotion to super admin is a deliberate
	// out-of-band action, never part of account creation.
	if err := s.provider.SetClaims(ctx, id, roles.Claims{Admin: true}); err != nil {
		return "", fmt.Errorf("account '%s' created but granting admin claim failed: %w", id, err)
	}
	return id, nil
}

func (s *accountService) Delete(ctx context.Context, callerID, targetID string) error {
	if s.provider == nil {
		return ErrIdentityUnavailable
	}
	if targetID == "" {
		return ErrInvalidInput
	}
	if targetID == callerID {
		return ErrSelfDelete
	}

	target, err := s.provider.GetAccount(ctx, targetID)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, targetID)
		}
		return fmt.Errorf("failed to resolve deletion target '%s': %w", targetID, err)
	}
	if target.Claims.SuperAdmin {
		return ErrSuperAdminTarget
	}

	if err := s.provider.DeleteAccount(ctx, targetID); err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrAccountNotFound, targetID)
		}
		return fmt.Errorf("failed to delete account '%s': %w", targetID, err)
	}
	return nil
}

func (s *accountService) Stats(ctx context.Context) (*models.Stats, error) {
	accounts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &models.Stats{TotalUsers: len(accounts)}
	for _, a := range accounts {
		if a.LastSignInAt != nil {
			stats.ActiveUsers++
		}
		if a.Claims.Admin {
			stats.TotalAdmins++
		}
	}
	return stats, nil
}

func (s *accountService) EnsureSuperAdmin(ctx context.Context, email string) error {
	if s.provider == nil {
		return ErrIdentityUnavailable
	}
	if email == "" {
		return nil
	}

	account, err := s.provider.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, identity.ErrNotFound) {
			return fmt.Errorf("%w: super admin '%s'", ErrAccountNotFound, email)
		}
		return fmt.Errorf("failed to look up super admin '%s': %w", email, err)
	}

	// Invariant: a super admin always also carries the admin claim.
	if account.Claims.Admin && account.Claims.SuperAdmin {
		return nil
	}
	if err := s.provider.SetClaims(ctx, account.ID, roles.Claims{Admin: true, SuperAdmin: true}); err != nil {
		return fmt.Errorf("failed to set super admin claims on '%s': %w", account.ID, err)
	}
	return nil
}
