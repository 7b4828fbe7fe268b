package login

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tasktitan/tasktitan/pkg/account"
	"github.com/tasktitan/tasktitan/pkg/tokengenerator"
)

func newTestService(t *testing.T) (*LoginService, *account.InMemAccountRepository, *tokengenerator.TokenService) {
	t.Helper()
	accounts := account.NewInMemAccountRepository()
	tokens := tokengenerator.NewTokenService(
		tokengenerator.NewJwtTokenGenerator("test-secret", "tasktitan", "tasktitan"))
	service := NewLoginService(accounts, NewBcryptHasher(bcrypt.MinCost), tokens)
	return service, accounts, tokens
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	service, _, tokens := newTestService(t)

	acct, err := service.Register(ctx, "a@x.com", "pw123")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, acct.ID)
	assert.NotEqual(t, "pw123", acct.PasswordHash)

	token, err := service.Login(ctx, "a@x.com", "pw123", "")
	require.NoError(t, err)

	accountID, err := tokens.ValidateAccessToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, acct.ID, accountID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)

	_, err := service.Register(ctx, "a@x.com", "pw123")
	require.NoError(t, err)

	_, err = service.Register(ctx, "a@x.com", "other")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginInvalidCredentialsIndistinguishable(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)

	_, err := service.Register(ctx, "a@x.com", "pw123")
	require.NoError(t, err)

	// Wrong password and unknown email fail with the same classified error
	_, wrongPassword := service.Login(ctx, "a@x.com", "wrong", "")
	_, unknownEmail := service.Login(ctx, "nobody@x.com", "pw123", "")
	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
}

func TestLoginWithMfa(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)

	acct, err := service.Register(ctx, "a@x.com", "pw123")
	require.NoError(t, err)

	setup, err := service.SetupMfa(ctx, acct.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, setup.Secret)
	assert.Contains(t, setup.ProvisioningUri, "otpauth://totp/")
	assert.Contains(t, setup.QrCodeUrl, "data:image/png;base64,")

	// Without a code
	_, err = service.Login(ctx, "a@x.com", "pw123", "")
	assert.ErrorIs(t, err, ErrMfaRequired)

	// With a wrong code
	_, err = service.Login(ctx, "a@x.com", "pw123", "000000")
	assert.ErrorIs(t, err, ErrInvalidMfaCode)

	// With the current code
	code, err := totp.GenerateCode(setup.Secret, time.Now().UTC())
	require.NoError(t, err)
	token, err := service.Login(ctx, "a@x.com", "pw123", code)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)

	// Password is still checked first even when a code is supplied
	_, err = service.Login(ctx, "a@x.com", "wrong", code)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestReEnrollmentInvalidatesOldSecret(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)

	acct, err := service.Register(ctx, "a@x.com", "pw123")
	require.NoError(t, err)

	first, err := service.SetupMfa(ctx, acct.ID)
	require.NoError(t, err)
	second, err := service.SetupMfa(ctx, acct.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.Secret, second.Secret)

	oldCode, err := totp.GenerateCode(first.Secret, time.Now().UTC())
	require.NoError(t, err)
	_, err = service.Login(ctx, "a@x.com", "pw123", oldCode)
	assert.ErrorIs(t, err, ErrInvalidMfaCode)

	newCode, err := totp.GenerateCode(second.Secret, time.Now().UTC())
	require.NoError(t, err)
	_, err = service.Login(ctx, "a@x.com", "pw123", newCode)
	assert.NoError(t, err)
}

func TestVerifyMfaCode(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)

	acct, err := service.Register(ctx, "a@x.com", "pw123")
	require.NoError(t, err)

	// Before enrollment any code is invalid
	err = service.VerifyMfaCode(ctx, acct.ID, "123456")
	assert.ErrorIs(t, err, ErrInvalidMfaCode)

	setup, err := service.SetupMfa(ctx, acct.ID)
	require.NoError(t, err)

	code, err := totp.GenerateCode(setup.Secret, time.Now().UTC())
	require.NoError(t, err)
	assert.NoError(t, service.VerifyMfaCode(ctx, acct.ID, code))
	assert.ErrorIs(t, service.VerifyMfaCode(ctx, acct.ID, "000000"), ErrInvalidMfaCode)
}

func TestSetupMfaUnknownAccount(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService(t)

	_, err := service.SetupMfa(ctx, uuid.New())
	assert.Error(t, err)
}
