package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	createAccountSQL = `INSERT INTO account (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, mfa_secret, created_at, last_modified_at`
	getAccountByEmailSQL = `SELECT id, email, password_hash, mfa_secret, created_at, last_modified_at
		FROM account WHERE email = $1`
	getAccountByIDSQL = `SELECT id, email, password_hash, mfa_secret, created_at, last_modified_at
		FROM account WHERE id = $1`
	setMfaSecretSQL = `UPDATE account SET mfa_secret = $2, last_modified_at = now() WHERE id = $1`
)

// pgUniqueViolation is the Postgres error code for a unique constraint violation
const pgUniqueViolation = "23505"

// PostgresAccountRepository implements AccountRepository using PostgreSQL.
// The unique index on email makes concurrent registration races resolve to
// a single winner at the storage layer.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresAccountRepository creates a new PostgreSQL-based account repository
func NewPostgresAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{
		pool: pool,
	}
}

// CreateAccount creates a new account row
func (r *PostgresAccountRepository) CreateAccount(ctx context.Context, params CreateAccountParams) (Account, error) {
	row := r.pool.QueryRow(ctx, createAccountSQL, uuid.New(), params.Email, params.PasswordHash)

	acct, err := scanAccount(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return Account{}, ErrDuplicateEmail
		}
		return Account{}, fmt.Errorf("failed to create account: %w", err)
	}
	return acct, nil
}

// GetAccountByEmail retrieves an account by its email
func (r *PostgresAccountRepository) GetAccountByEmail(ctx context.Context, email string) (Account, error) {
	acct, err := scanAccount(r.pool.QueryRow(ctx, getAccountByEmailSQL, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("failed to get account by email: %w", err)
	}
	return acct, nil
}

// GetAccountByID retrieves an account by its id
func (r *PostgresAccountRepository) GetAccountByID(ctx context.Context, id uuid.UUID) (Account, error) {
	acct, err := scanAccount(r.pool.QueryRow(ctx, getAccountByIDSQL, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, fmt.Errorf("failed to get account by id: %w", err)
	}
	return acct, nil
}

// SetMfaSecret overwrites the account's TOTP secret
func (r *PostgresAccountRepository) SetMfaSecret(ctx context.Context, id uuid.UUID, secret string) error {
	tag, err := r.pool.Exec(ctx, setMfaSecretSQL, id, secret)
	if err != nil {
		return fmt.Errorf("failed to set mfa secret: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func scanAccount(row pgx.Row) (Account, error) {
	var (
		acct      Account
		mfaSecret *string
	)
	err := row.Scan(&acct.ID, &acct.Email, &acct.PasswordHash, &mfaSecret, &acct.CreatedAt, &acct.LastModifiedAt)
	if err != nil {
		return Account{}, err
	}
	if mfaSecret != nil {
		acct.Mfa = MfaEnabled(*mfaSecret)
	} else {
		acct.Mfa = MfaDisabled()
	}
	return acct, nil
}
