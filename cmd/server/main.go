package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/RINKESH2497/todo-app-fullstack/adapters/db"
	"github.com/RINKESH2497/todo-app-fullstack/adapters/rest"
	"github.com/RINKESH2497/todo-app-fullstack/adapters/rest/handlers"
	"github.com/RINKESH2497/todo-app-fullstack/auth"
	"github.com/RINKESH2497/todo-app-fullstack/config"
	"github.com/RINKESH2497/todo-app-fullstack/core"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	log := mustMakeLogger(cfg.LogLevel)

	if err := run(cfg, log); err != nil {
		log.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	log.Info("starting todo server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dialCtx, cancelDial := context.WithTimeout(ctx, 10*time.Second)
	defer cancelDial()

	storage, err := db.New(dialCtx, log, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		return fmt.Errorf("connect to db: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := storage.Close(closeCtx); err != nil {
			log.Error("failed to close db connection", "error", err)
		}
	}()

	if err := storage.EnsureIndexes(dialCtx); err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}

	deps := handlers.Deps{
		Tasks:  core.NewTaskService(storage),
		Users:  core.NewUserService(storage, auth.NewPasswords(0)),
		Tokens: auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		Store:  storage,
	}

	mux := http.NewServeMux()
	handlers.Register(mux, log, deps, cfg.HTTP.Timeout)

	server := http.Server{
		Addr:              cfg.HTTP.Address,
		ReadHeaderTimeout: cfg.HTTP.Timeout,
		Handler:           rest.LogRequests(log)(mux),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server", "address", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown requested")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func mustMakeLogger(logLevel string) *slog.Logger {
	var level slog.Level
	switch logLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
