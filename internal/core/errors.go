package core

import "errors"

// Sentinel errors returned by the services. Handlers map these to HTTP
// statuses; anything unrecognized becomes a 500.
var (
	// ErrIdentityUnavailable means the identity provider client was never
	// initialized or is unreachable.
	ErrIdentityUnavailable = errors.New("identity provider not initialized")
	// ErrAccountNotFound means the target account id does not exist.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailExists means an account with the requested email already exists.
	ErrEmailExists = errors.New("email already in use")
	// ErrInvalidInput means a required field was missing or malformed.
	ErrInvalidInput = errors.New("missing or invalid required fields")
	// ErrStoreUnavailable means the data store behind a read could not be
	// reached.
	ErrStoreUnavailable = errors.New("data store unavailable")

	// ErrSelfDelete and ErrSuperAdminTarget enforce the two categorical
	// deletion rules: no caller may delete their own account, and no caller
	// of any role may delete an account holding the superAdmin claim.
	ErrSelfDelete       = errors.New("cannot delete own account")
	ErrSuperAdminTarget = errors.New("cannot delete a super admin account")
)
