package account

import (
	"time"

	"github.com/google/uuid"
)

// MfaState is a tagged variant describing whether an account has a TOTP
// secret provisioned. Presence of a secret is the only signal that login
// must demand a one-time code.
type MfaState struct {
	enabled bool
	secret  string
}

// MfaDisabled returns the state of an account without a provisioned secret.
func MfaDisabled() MfaState {
	return MfaState{}
}

// MfaEnabled returns the state of an account with the given TOTP secret.
func MfaEnabled(secret string) MfaState {
	return MfaState{enabled: true, secret: secret}
}

// Enabled reports whether a TOTP secret is provisioned.
func (m MfaState) Enabled() bool {
	return m.enabled
}

// Secret returns the provisioned TOTP secret, if any.
func (m MfaState) Secret() (string, bool) {
	return m.secret, m.enabled
}

// Account represents a registered account. Email is unique and immutable
// after creation; PasswordHash is the bcrypt hash of the password and is
// never logged.
type Account struct {
	ID             uuid.UUID
	Email          string
	PasswordHash   string
	Mfa            MfaState
	CreatedAt      time.Time
	LastModifiedAt time.Time
}
