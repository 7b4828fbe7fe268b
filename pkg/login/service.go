package login

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tasktitan/tasktitan/pkg/account"
	"github.com/tasktitan/tasktitan/pkg/tokengenerator"
	"github.com/tasktitan/tasktitan/pkg/twofa"
)

// LoginService is the auth orchestrator. It composes the account store,
// password hasher, TOTP engine and token issuer into the registration,
// login and MFA enrollment flows. All failures are classified sentinel
// errors; nothing here retries or panics.
type LoginService struct {
	accounts account.AccountRepository
	hasher   PasswordHasher
	tokens   *tokengenerator.TokenService
}

// NewLoginService creates a new LoginService
func NewLoginService(accounts account.AccountRepository, hasher PasswordHasher, tokens *tokengenerator.TokenService) *LoginService {
	return &LoginService{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
	}
}

// MfaSetup is the result of an MFA enrollment: the raw secret for manual
// entry, the otpauth provisioning URI and a rendered QR data URL.
type MfaSetup struct {
	Secret          string
	ProvisioningUri string
	QrCodeUrl       string
}

// Register creates a new account with a hashed password and MFA disabled.
// No session token is issued; logging in is a separate step.
func (s *LoginService) Register(ctx context.Context, email, password string) (account.Account, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return account.Account{}, fmt.Errorf("failed to hash password: %w", err)
	}

	acct, err := s.accounts.CreateAccount(ctx, account.CreateAccountParams{
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, account.ErrDuplicateEmail) {
			return account.Account{}, ErrEmailTaken
		}
		return account.Account{}, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("Account registered", "accountId", acct.ID)
	return acct, nil
}

// Login verifies the password and, when the account has a TOTP secret
// provisioned, the submitted passcode. On success it issues a session token.
func (s *LoginService) Login(ctx context.Context, email, password, passcode string) (tokengenerator.TokenValue, error) {
	acct, err := s.accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, account.ErrAccountNotFound) {
			return tokengenerator.TokenValue{}, ErrInvalidCredentials
		}
		return tokengenerator.TokenValue{}, fmt.Errorf("failed to look up account: %w", err)
	}

	match, err := s.hasher.Verify(password, acct.PasswordHash)
	if err != nil || !match {
		if err != nil {
			slog.Error("Password verification failed", "accountId", acct.ID, "err", err)
		}
		return tokengenerator.TokenValue{}, ErrInvalidCredentials
	}

	if secret, enabled := acct.Mfa.Secret(); enabled {
		if passcode == "" {
			return tokengenerator.TokenValue{}, ErrMfaRequired
		}
		if !twofa.ValidateTotpPasscode(secret, passcode) {
			return tokengenerator.TokenValue{}, ErrInvalidMfaCode
		}
	}

	token, err := s.tokens.IssueAccessToken(acct.ID)
	if err != nil {
		return tokengenerator.TokenValue{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// SetupMfa generates a fresh TOTP secret, persists it to the account and
// returns the provisioning material. Calling it again re-enrolls: the new
// secret overwrites and immediately invalidates the old one.
func (s *LoginService) SetupMfa(ctx context.Context, accountID uuid.UUID) (MfaSetup, error) {
	acct, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		return MfaSetup{}, fmt.Errorf("failed to get account: %w", err)
	}

	secret, err := twofa.GenerateTotpSecret(acct.Email)
	if err != nil {
		return MfaSetup{}, fmt.Errorf("failed to generate totp secret: %w", err)
	}

	if err := s.accounts.SetMfaSecret(ctx, accountID, secret); err != nil {
		return MfaSetup{}, fmt.Errorf("failed to persist totp secret: %w", err)
	}

	uri := twofa.ProvisioningUri(acct.Email, secret)
	qrCodeUrl, err := twofa.QrCodeDataUrl(uri)
	if err != nil {
		return MfaSetup{}, fmt.Errorf("failed to render QR code: %w", err)
	}

	slog.Info("MFA enrolled", "accountId", accountID)
	return MfaSetup{
		Secret:          secret,
		ProvisioningUri: uri,
		QrCodeUrl:       qrCodeUrl,
	}, nil
}

// VerifyMfaCode checks a passcode against the account's stored secret. It is
// a standalone confirmation check: a provisioned secret already gates Login,
// so no stored flag transitions here.
func (s *LoginService) VerifyMfaCode(ctx context.Context, accountID uuid.UUID, passcode string) error {
	acct, err := s.accounts.GetAccountByID(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to get account: %w", err)
	}

	secret, enabled := acct.Mfa.Secret()
	if !enabled || !twofa.ValidateTotpPasscode(secret, passcode) {
		return ErrInvalidMfaCode
	}
	return nil
}
