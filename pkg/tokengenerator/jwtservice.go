package tokengenerator

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultAccessTokenExpiry is the default lifetime of issued session tokens
const DefaultAccessTokenExpiry = 1 * time.Hour

// ErrInvalidToken covers every validation failure: bad signature, malformed
// token, or expiry. Callers get one uniform outcome.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService issues and validates session tokens carrying an account
// identity claim. Validation is stateless: a pure function of the token,
// the signing key and the clock.
type TokenService struct {
	generator         TokenGenerator
	accessTokenExpiry time.Duration
}

// TokenValue holds an issued token and its absolute expiry
type TokenValue struct {
	Token  string
	Expiry time.Time
}

// TokenServiceOption is a function that configures a TokenService
type TokenServiceOption func(*TokenService)

// WithAccessTokenExpiry sets the access token expiry duration
func WithAccessTokenExpiry(expiry time.Duration) TokenServiceOption {
	return func(s *TokenService) {
		s.accessTokenExpiry = expiry
	}
}

// NewTokenService creates a new TokenService
func NewTokenService(generator TokenGenerator, options ...TokenServiceOption) *TokenService {
	s := &TokenService{
		generator:         generator,
		accessTokenExpiry: DefaultAccessTokenExpiry,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// IssueAccessToken issues a signed session token whose subject is the
// account id.
func (s *TokenService) IssueAccessToken(accountID uuid.UUID) (TokenValue, error) {
	tokenStr, expiry, err := s.generator.GenerateToken(accountID.String(), s.accessTokenExpiry)
	if err != nil {
		return TokenValue{}, err
	}
	return TokenValue{Token: tokenStr, Expiry: expiry}, nil
}

// ValidateAccessToken verifies signature and expiry and returns the account
// id claim. Tampering and expiry are not distinguished.
func (s *TokenService) ValidateAccessToken(tokenStr string) (uuid.UUID, error) {
	token, err := s.generator.ParseToken(tokenStr)
	if err != nil {
		slog.Debug("Token validation failed", "err", err)
		return uuid.Nil, ErrInvalidToken
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}

	accountID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return accountID, nil
}
