package twofa

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"log/slog"
	"net/url"
	"strconv"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	TOTP_ISSUER = "TaskTitan"
	SKEW        = 1
	PERIOD      = 30
	SECRET_SIZE = 20
)

// qrCodeSize is the pixel width and height of rendered QR images
const qrCodeSize = 200

// GenerateTotpSecret generates a fresh base32-encoded TOTP secret for the
// given account label (the account's email).
func GenerateTotpSecret(accountLabel string) (string, error) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      TOTP_ISSUER,
		AccountName: accountLabel,
		Period:      PERIOD,
		SecretSize:  SECRET_SIZE,
		Digits:      otp.DigitsSix,
		Algorithm:   otp.AlgorithmSHA1,
	})
	if err != nil {
		slog.Error("Failed to generate totp secret", "accountLabel", accountLabel, "issuer", TOTP_ISSUER, "error", err)
		return "", err
	}
	slog.Info("Generated new totp secret", "accountLabel", accountLabel)
	return key.Secret(), nil
}

// ProvisioningUri builds the otpauth:// URI that authenticator apps import,
// encoding issuer, account label and secret. The result is deterministic for
// a given label and secret.
func ProvisioningUri(accountLabel, secret string) string {
	v := url.Values{}
	v.Set("secret", secret)
	v.Set("issuer", TOTP_ISSUER)
	v.Set("algorithm", otp.AlgorithmSHA1.String())
	v.Set("digits", otp.DigitsSix.String())
	v.Set("period", strconv.Itoa(PERIOD))

	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     "/" + TOTP_ISSUER + ":" + accountLabel,
		RawQuery: v.Encode(),
	}
	return u.String()
}

// QrCodeDataUrl renders a provisioning URI as a PNG QR code and returns it
// as a base64 data URL suitable for direct embedding in an <img> tag.
func QrCodeDataUrl(provisioningUri string) (string, error) {
	key, err := otp.NewKeyFromURL(provisioningUri)
	if err != nil {
		return "", fmt.Errorf("failed to parse provisioning uri: %w", err)
	}

	img, err := key.Image(qrCodeSize, qrCodeSize)
	if err != nil {
		slog.Error("Failed to render QR code", "error", err)
		return "", fmt.Errorf("failed to render QR code: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("failed to encode QR code png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// ValidateTotpPasscode checks a submitted passcode against the secret for
// the current time step and one step on either side (clock-skew tolerance).
// Malformed input is reported as an invalid code, never an error.
func ValidateTotpPasscode(secret, passcode string) bool {
	return validateTotpPasscodeAt(secret, passcode, time.Now().UTC())
}

func validateTotpPasscodeAt(secret, passcode string, at time.Time) bool {
	valid, err := totp.ValidateCustom(passcode, secret, at, totp.ValidateOpts{
		Period:    PERIOD,
		Skew:      SKEW,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	if err != nil {
		// Wrong length or non-numeric input
		return false
	}
	return valid
}
