package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/tasktitan/tasktitan/pkg/client"
	"github.com/tasktitan/tasktitan/pkg/login"
)

// Handle exposes the auth endpoints over the login service
type Handle struct {
	loginService *login.LoginService
}

// NewHandle creates a new Handle
func NewHandle(loginService *login.LoginService) *Handle {
	return &Handle{
		loginService: loginService,
	}
}

// Register handles POST /api/auth/register
func (h *Handle) Register(w http.ResponseWriter, r *http.Request) {
	data := RegisterRequest{}
	if err := render.DecodeJSON(r.Body, &data); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "unable to parse body"})
		return
	}

	if data.Email == "" || data.Password == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "email and password are required"})
		return
	}

	_, err := h.loginService.Register(r.Context(), data.Email, data.Password)
	if err != nil {
		if errors.Is(err, login.ErrEmailTaken) {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, MessageResponse{Message: "email already registered"})
			return
		}
		slog.Error("Registration failed", "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, MessageResponse{Message: "registration failed"})
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, MessageResponse{Message: "account registered"})
}

// Login handles POST /api/auth/login. Unknown email and wrong password
// produce identical responses.
func (h *Handle) Login(w http.ResponseWriter, r *http.Request) {
	data := LoginRequest{}
	if err := render.DecodeJSON(r.Body, &data); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "unable to parse body"})
		return
	}

	token, err := h.loginService.Login(r.Context(), data.Email, data.Password, data.MfaToken)
	if err != nil {
		switch {
		case errors.Is(err, login.ErrInvalidCredentials):
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, MessageResponse{Message: "invalid credentials"})
		case errors.Is(err, login.ErrMfaRequired):
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, MessageResponse{Message: "MFA code required"})
		case errors.Is(err, login.ErrInvalidMfaCode):
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, MessageResponse{Message: "invalid MFA code"})
		default:
			slog.Error("Login failed", "err", err)
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, MessageResponse{Message: "login failed"})
		}
		return
	}

	render.JSON(w, r, LoginResponse{Token: token.Token})
}

// MfaSetup handles POST /api/auth/mfa/setup (bearer token required)
func (h *Handle) MfaSetup(w http.ResponseWriter, r *http.Request) {
	accountID, ok := client.AccountID(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, MessageResponse{Message: "Unauthorized"})
		return
	}

	setup, err := h.loginService.SetupMfa(r.Context(), accountID)
	if err != nil {
		slog.Error("MFA setup failed", "accountId", accountID, "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, MessageResponse{Message: "MFA setup failed"})
		return
	}

	render.JSON(w, r, MfaSetupResponse{
		QrCodeUrl: setup.QrCodeUrl,
		Secret:    setup.Secret,
	})
}

// MfaVerify handles POST /api/auth/mfa/verify (bearer token required)
func (h *Handle) MfaVerify(w http.ResponseWriter, r *http.Request) {
	accountID, ok := client.AccountID(r.Context())
	if !ok {
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, MessageResponse{Message: "Unauthorized"})
		return
	}

	data := MfaVerifyRequest{}
	if err := render.DecodeJSON(r.Body, &data); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, MessageResponse{Message: "unable to parse body"})
		return
	}

	if err := h.loginService.VerifyMfaCode(r.Context(), accountID, data.Token); err != nil {
		if errors.Is(err, login.ErrInvalidMfaCode) {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, MessageResponse{Message: "invalid MFA code"})
			return
		}
		slog.Error("MFA verify failed", "accountId", accountID, "err", err)
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, MessageResponse{Message: "MFA verify failed"})
		return
	}

	render.JSON(w, r, MessageResponse{Message: "MFA verified"})
}
