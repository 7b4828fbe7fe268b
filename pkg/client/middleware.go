package client

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type contextKey int

const accountIDKey contextKey = iota

// RequireAccount gates protected routes. It must run after
// jwtauth.Verifier: any verification failure (missing, tampered or expired
// token) yields the same 401, and on success the account id claim is
// stashed in the request context.
func RequireAccount(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			slog.Debug("Unauthenticated request to protected resource", "err", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		accountID, err := uuid.Parse(token.Subject())
		if err != nil {
			slog.Debug("Token subject is not an account id", "err", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), accountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccountID returns the authenticated account id stashed by RequireAccount
func AccountID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(accountIDKey).(uuid.UUID)
	return id, ok
}
