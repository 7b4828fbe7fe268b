package account

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemAccountRepository implements AccountRepository using in-memory maps
type InMemAccountRepository struct {
	accounts map[uuid.UUID]Account
	emails   map[string]uuid.UUID
	mu       sync.Mutex
}

// NewInMemAccountRepository creates a new in-memory account repository
func NewInMemAccountRepository() *InMemAccountRepository {
	return &InMemAccountRepository{
		accounts: make(map[uuid.UUID]Account),
		emails:   make(map[string]uuid.UUID),
	}
}

// CreateAccount creates a new account in memory. The email index is checked
// and written under the same lock, so concurrent creates with the same email
// resolve to exactly one winner.
func (r *InMemAccountRepository) CreateAccount(ctx context.Context, params CreateAccountParams) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emails[params.Email]; exists {
		slog.Debug("Account already exists", "email", params.Email)
		return Account{}, ErrDuplicateEmail
	}

	now := time.Now().UTC()
	acct := Account{
		ID:             uuid.New(),
		Email:          params.Email,
		PasswordHash:   params.PasswordHash,
		Mfa:            MfaDisabled(),
		CreatedAt:      now,
		LastModifiedAt: now,
	}

	r.accounts[acct.ID] = acct
	r.emails[acct.Email] = acct.ID
	slog.Debug("Account created", "accountId", acct.ID)
	return acct, nil
}

// GetAccountByEmail retrieves an account by its email. The lookup is
// case-sensitive, matching the stored value.
func (r *InMemAccountRepository) GetAccountByEmail(ctx context.Context, email string) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, exists := r.emails[email]
	if !exists {
		return Account{}, ErrAccountNotFound
	}
	return r.accounts[id], nil
}

// GetAccountByID retrieves an account by its id
func (r *InMemAccountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, exists := r.accounts[id]
	if !exists {
		return Account{}, ErrAccountNotFound
	}
	return acct, nil
}

// SetMfaSecret overwrites the account's TOTP secret
func (r *InMemAccountRepository) SetMfaSecret(ctx context.Context, id uuid.UUID, secret string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	acct, exists := r.accounts[id]
	if !exists {
		return ErrAccountNotFound
	}

	acct.Mfa = MfaEnabled(secret)
	acct.LastModifiedAt = time.Now().UTC()
	r.accounts[id] = acct
	slog.Debug("MFA secret set", "accountId", id)
	return nil
}
