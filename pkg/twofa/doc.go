// Package twofa provides the TOTP engine for TaskTitan's second factor.
//
// This package generates shared secrets, builds otpauth provisioning URIs
// for authenticator apps, renders them as QR code data URLs, and validates
// submitted passcodes.
//
// # Overview
//
// The twofa package provides:
//   - Cryptographically random base32 TOTP secrets (20 bytes)
//   - otpauth:// provisioning URI construction
//   - QR code rendering as base64 PNG data URLs
//   - Passcode validation with a ±1 time-step tolerance window
//
// # Basic Usage
//
//	import "github.com/tasktitan/tasktitan/pkg/twofa"
//
//	// Enrollment
//	secret, err := twofa.GenerateTotpSecret("user@example.com")
//	uri := twofa.ProvisioningUri("user@example.com", secret)
//	qr, err := twofa.QrCodeDataUrl(uri)
//
//	// Validation
//	if twofa.ValidateTotpPasscode(secret, "123456") {
//		// code accepted
//	}
//
// # Security Considerations
//
// Codes are accepted for the current 30-second step and one step on either
// side. Consumed codes are not tracked, so a leaked code stays valid for
// its full tolerance window; treat transport of codes accordingly.
//
// # Related Packages
//
//   - pkg/login - auth orchestration that drives enrollment and login
//   - pkg/account - storage of the provisioned secret
package twofa
