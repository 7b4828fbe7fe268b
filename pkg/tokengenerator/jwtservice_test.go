package tokengenerator

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidateAccessToken(t *testing.T) {
	generator := NewJwtTokenGenerator("test-secret", "tasktitan", "tasktitan")
	service := NewTokenService(generator)

	accountID := uuid.New()
	token, err := service.IssueAccessToken(accountID)
	require.NoError(t, err)
	assert.NotEmpty(t, token.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(DefaultAccessTokenExpiry), token.Expiry, time.Minute)

	got, err := service.ValidateAccessToken(token.Token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestValidateExpiredToken(t *testing.T) {
	generator := NewJwtTokenGenerator("test-secret", "tasktitan", "tasktitan")
	service := NewTokenService(generator, WithAccessTokenExpiry(-1*time.Minute))

	token, err := service.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTamperedToken(t *testing.T) {
	generator := NewJwtTokenGenerator("test-secret", "tasktitan", "tasktitan")
	service := NewTokenService(generator)

	token, err := service.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	tampered := token.Token[:len(token.Token)-2] + "xx"
	_, err = service.ValidateAccessToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenSignedWithDifferentSecret(t *testing.T) {
	issuing := NewTokenService(NewJwtTokenGenerator("secret-a", "tasktitan", "tasktitan"))
	validating := NewTokenService(NewJwtTokenGenerator("secret-b", "tasktitan", "tasktitan"))

	token, err := issuing.IssueAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = validating.ValidateAccessToken(token.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateGarbageToken(t *testing.T) {
	service := NewTokenService(NewJwtTokenGenerator("test-secret", "tasktitan", "tasktitan"))

	_, err := service.ValidateAccessToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenWithNonAccountSubject(t *testing.T) {
	generator := NewJwtTokenGenerator("test-secret", "tasktitan", "tasktitan")
	service := NewTokenService(generator)

	tokenStr, _, err := generator.GenerateToken("not-a-uuid", time.Hour)
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(tokenStr)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
