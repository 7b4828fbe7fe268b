package twofa

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xlzd/gotp"
)

func generateCodeAt(t *testing.T, secret string, at time.Time) string {
	t.Helper()
	code, err := totp.GenerateCodeCustom(secret, at, totp.ValidateOpts{
		Period:    PERIOD,
		Skew:      SKEW,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	})
	require.NoError(t, err)
	return code
}

func TestGenerateTotpSecret(t *testing.T) {
	secret, err := GenerateTotpSecret("a@x.com")
	require.NoError(t, err)

	// 20 raw bytes encode to 32 base32 characters
	assert.Len(t, secret, 32)

	other, err := GenerateTotpSecret("a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestProvisioningUri(t *testing.T) {
	uri := ProvisioningUri("a@x.com", "JBSWY3DPEHPK3PXPJBSWY3DPEHPK3PXP")

	parsed, err := url.Parse(uri)
	require.NoError(t, err)
	assert.Equal(t, "otpauth", parsed.Scheme)
	assert.Equal(t, "totp", parsed.Host)
	assert.Equal(t, "/TaskTitan:a@x.com", parsed.Path)

	q := parsed.Query()
	assert.Equal(t, "JBSWY3DPEHPK3PXPJBSWY3DPEHPK3PXP", q.Get("secret"))
	assert.Equal(t, "TaskTitan", q.Get("issuer"))
	assert.Equal(t, "6", q.Get("digits"))
	assert.Equal(t, "30", q.Get("period"))

	// Deterministic for the same inputs
	assert.Equal(t, uri, ProvisioningUri("a@x.com", "JBSWY3DPEHPK3PXPJBSWY3DPEHPK3PXP"))
}

func TestValidateTotpPasscodeWindow(t *testing.T) {
	secret, err := GenerateTotpSecret("a@x.com")
	require.NoError(t, err)

	// Mid-step reference keeps the windows stable across the sub-second
	// drift between generate and validate
	ref := time.Date(2025, 6, 1, 12, 0, 15, 0, time.UTC)

	assert.True(t, validateTotpPasscodeAt(secret, generateCodeAt(t, secret, ref), ref))
	assert.True(t, validateTotpPasscodeAt(secret, generateCodeAt(t, secret, ref.Add(-PERIOD*time.Second)), ref))
	assert.True(t, validateTotpPasscodeAt(secret, generateCodeAt(t, secret, ref.Add(PERIOD*time.Second)), ref))

	// Two or more steps away is outside the tolerance window
	assert.False(t, validateTotpPasscodeAt(secret, generateCodeAt(t, secret, ref.Add(-2*PERIOD*time.Second)), ref))
	assert.False(t, validateTotpPasscodeAt(secret, generateCodeAt(t, secret, ref.Add(2*PERIOD*time.Second)), ref))
}

func TestValidateTotpPasscodeMalformed(t *testing.T) {
	secret, err := GenerateTotpSecret("a@x.com")
	require.NoError(t, err)

	assert.False(t, ValidateTotpPasscode(secret, ""))
	assert.False(t, ValidateTotpPasscode(secret, "12345"))
	assert.False(t, ValidateTotpPasscode(secret, "1234567"))
	assert.False(t, ValidateTotpPasscode(secret, "abcdef"))
}

func TestValidateTotpPasscodeCrossImplementation(t *testing.T) {
	secret, err := GenerateTotpSecret("a@x.com")
	require.NoError(t, err)

	// A code produced by an independent TOTP implementation must validate
	ref := time.Date(2025, 6, 1, 12, 0, 15, 0, time.UTC)
	code := gotp.NewDefaultTOTP(secret).At(ref.Unix())
	assert.True(t, validateTotpPasscodeAt(secret, code, ref))
}

func TestQrCodeDataUrl(t *testing.T) {
	secret, err := GenerateTotpSecret("a@x.com")
	require.NoError(t, err)

	dataUrl, err := QrCodeDataUrl(ProvisioningUri("a@x.com", secret))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(dataUrl, "data:image/png;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataUrl, "data:image/png;base64,"))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, qrCodeSize, img.Bounds().Dx())
}

func TestQrCodeDataUrlBadUri(t *testing.T) {
	_, err := QrCodeDataUrl("otpauth://totp/\x00")
	assert.Error(t, err)
}
