package login

import "errors"

var (
	// ErrEmailTaken is returned by Register when the email is already in use
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable to
	// prevent account enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrMfaRequired is returned by Login when the account has MFA enabled
	// and no passcode was submitted
	ErrMfaRequired = errors.New("mfa code required")

	// ErrInvalidMfaCode is returned when a submitted passcode fails validation
	ErrInvalidMfaCode = errors.New("invalid mfa code")
)
