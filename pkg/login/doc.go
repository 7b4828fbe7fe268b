// Package login provides password hashing and the authentication
// orchestrator for TaskTitan.
//
// # Overview
//
// The login package provides:
//   - PasswordHasher interface with a bcrypt implementation
//   - Registration with atomic duplicate-email handling
//   - Login with an optional TOTP second factor
//   - MFA enrollment (secret + provisioning URI + QR payload)
//   - Standalone MFA code verification
//
// All failures are classified sentinel errors (ErrInvalidCredentials,
// ErrMfaRequired, ErrInvalidMfaCode, ErrEmailTaken) that the HTTP layer
// maps to responses. Unknown email and wrong password intentionally share
// one error to prevent account enumeration.
//
// # Basic Usage
//
//	service := login.NewLoginService(accounts, login.NewBcryptHasher(0), tokens)
//
//	_, err := service.Register(ctx, "user@example.com", "password")
//	token, err := service.Login(ctx, "user@example.com", "password", "")
//
// # Related Packages
//
//   - pkg/account - credential storage
//   - pkg/twofa - TOTP engine
//   - pkg/tokengenerator - session token issue/validate
package login
