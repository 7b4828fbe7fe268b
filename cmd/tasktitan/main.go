package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/tasktitan/tasktitan/pkg/account"
	"github.com/tasktitan/tasktitan/pkg/app"
	"github.com/tasktitan/tasktitan/pkg/login"
	loginapi "github.com/tasktitan/tasktitan/pkg/login/api"
	"github.com/tasktitan/tasktitan/pkg/task"
	taskapi "github.com/tasktitan/tasktitan/pkg/task/api"
	"github.com/tasktitan/tasktitan/pkg/tokengenerator"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "err", err)
	}

	cfg := app.Config{}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		slog.Error("Failed to read config from env", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Db.ToDatabaseURL())
	if err != nil {
		slog.Error("Failed to create database pool", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	accessTokenExpiry, err := time.ParseDuration(cfg.Jwt.AccessTokenExpiry)
	if err != nil {
		slog.Error("Invalid ACCESS_TOKEN_EXPIRY", "value", cfg.Jwt.AccessTokenExpiry, "err", err)
		os.Exit(1)
	}

	accounts := account.NewPostgresAccountRepository(pool)
	tasks := task.NewPostgresTaskRepository(pool)

	generator := tokengenerator.NewJwtTokenGenerator(cfg.Jwt.Secret, cfg.Jwt.Issuer, cfg.Jwt.Audience)
	tokens := tokengenerator.NewTokenService(generator,
		tokengenerator.WithAccessTokenExpiry(accessTokenExpiry))

	hasher := login.NewBcryptHasher(cfg.Password.BcryptCost)
	loginService := login.NewLoginService(accounts, hasher, tokens)
	taskService := task.NewTaskService(tasks)

	router := app.NewRouter(loginapi.NewHandle(loginService), taskapi.NewHandle(taskService), cfg.Jwt.Secret)

	server := &http.Server{
		Addr:    cfg.App.Addr(),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "err", err)
	}
	slog.Info("Server stopped")
}
