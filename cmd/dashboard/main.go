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

	"github.com/spacesedan/tweetverse/config"
	"github.com/spacesedan/tweetverse/internal/api"
	"github.com/spacesedan/tweetverse/internal/logging"
	"github.com/spacesedan/tweetverse/internal/monitoring"
	"github.com/spacesedan/tweetverse/internal/session"
)

const shutdownTimeout = 10 * time.Second

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	settings, err := config.Load()
	if err != nil {
		logging.InitLogger("info")
		slog.Error("[Main] Invalid settings", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logging.InitLogger(settings.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := session.NewStore(settings.SessionTTL())
	go monitoring.RunSessionJanitor(ctx, store, settings.JanitorInterval())

	srv := &http.Server{
		Addr:              settings.Addr,
		Handler:           api.NewServer(settings, store, api.NewHub()).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("[Main] Shutdown failed", slog.String("error", err.Error()))
		}
	}()

	slog.Info("[Main] Dashboard listening",
		slog.String("addr", settings.Addr),
		slog.String("env", env))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("[Main] Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("[Main] Dashboard stopped")
}
