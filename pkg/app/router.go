package app

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/jwtauth/v5"
	"github.com/tasktitan/tasktitan/pkg/client"
	loginapi "github.com/tasktitan/tasktitan/pkg/login/api"
	taskapi "github.com/tasktitan/tasktitan/pkg/task/api"
)

// NewRouter assembles the HTTP surface: public auth endpoints, and MFA and
// task endpoints gated by the bearer-token verifier.
func NewRouter(loginHandle *loginapi.Handle, taskHandle *taskapi.Handle, jwtSecret string) *chi.Mux {
	tokenAuth := jwtauth.New("HS256", []byte(jwtSecret), nil)

	logger := httplog.NewLogger("tasktitan", httplog.Options{
		LogLevel: slog.LevelInfo,
		Concise:  true,
	})

	r := chi.NewRouter()
	r.Use(httplog.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", loginHandle.Register)
		r.Post("/login", loginHandle.Login)

		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenAuth))
			r.Use(client.RequireAccount)
			r.Post("/mfa/setup", loginHandle.MfaSetup)
			r.Post("/mfa/verify", loginHandle.MfaVerify)
		})
	})

	r.Route("/api/tasks", func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(client.RequireAccount)
		taskHandle.Routes(r)
	})

	return r
}
