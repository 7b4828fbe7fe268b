// Command inmem runs the service entirely on in-memory repositories for
// local development. State is lost on restart.
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tasktitan/tasktitan/pkg/account"
	"github.com/tasktitan/tasktitan/pkg/app"
	"github.com/tasktitan/tasktitan/pkg/login"
	loginapi "github.com/tasktitan/tasktitan/pkg/login/api"
	"github.com/tasktitan/tasktitan/pkg/task"
	taskapi "github.com/tasktitan/tasktitan/pkg/task/api"
	"github.com/tasktitan/tasktitan/pkg/tokengenerator"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))

	cfg := app.Config{}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		slog.Error("Failed to read config from env", "err", err)
		os.Exit(1)
	}

	accounts := account.NewInMemAccountRepository()
	tasks := task.NewInMemTaskRepository()

	generator := tokengenerator.NewJwtTokenGenerator(cfg.Jwt.Secret, cfg.Jwt.Issuer, cfg.Jwt.Audience)
	tokens := tokengenerator.NewTokenService(generator)

	hasher := login.NewBcryptHasher(cfg.Password.BcryptCost)
	loginService := login.NewLoginService(accounts, hasher, tokens)
	taskService := task.NewTaskService(tasks)

	router := app.NewRouter(loginapi.NewHandle(loginService), taskapi.NewHandle(taskService), cfg.Jwt.Secret)

	slog.Info("In-memory server starting", "addr", cfg.App.Addr())
	if err := http.ListenAndServe(cfg.App.Addr(), router); err != nil {
		slog.Error("Server failed", "err", err)
		os.Exit(1)
	}
}
