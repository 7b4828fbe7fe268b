package api

// RegisterRequest is the body of POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login. MfaToken is required
// only for accounts with MFA enabled.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	MfaToken string `json:"mfaToken,omitempty"`
}

// LoginResponse carries the issued session token
type LoginResponse struct {
	Token string `json:"token"`
}

// MfaSetupResponse carries the QR data URL and the raw secret as a
// manual-entry fallback
type MfaSetupResponse struct {
	QrCodeUrl string `json:"qrCodeUrl"`
	Secret    string `json:"secret"`
}

// MfaVerifyRequest is the body of POST /api/auth/mfa/verify
type MfaVerifyRequest struct {
	Token string `json:"token"`
}

// MessageResponse is the generic message envelope
type MessageResponse struct {
	Message string `json:"message"`
}
