package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrDuplicateEmail is returned when creating an account with an email
	// that is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
)

// CreateAccountParams represents parameters for creating an account
type CreateAccountParams struct {
	Email        string
	PasswordHash string
}

// AccountRepository defines the interface for account storage operations.
// Email uniqueness must be enforced atomically by the implementation:
// of two concurrent creates with the same email, exactly one succeeds.
type AccountRepository interface {
	CreateAccount(ctx context.Context, params CreateAccountParams) (Account, error)
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (Account, error)
	// SetMfaSecret overwrites the account's TOTP secret. Last writer wins;
	// a prior secret is invalidated immediately.
	SetMfaSecret(ctx context.Context, id uuid.UUID, secret string) error
}
