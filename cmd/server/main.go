package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmynk/tiffins/internal/api"
	"github.com/mmynk/tiffins/internal/auth"
	"github.com/mmynk/tiffins/internal/config"
	"github.com/mmynk/tiffins/internal/middleware"
	"github.com/mmynk/tiffins/internal/service"
	"github.com/mmynk/tiffins/internal/storage/sqlite"
	"github.com/mmynk/tiffins/pkg/logging"
)

func main() {
	logging.Setup()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		// The server still boots so /menu and /health work, but every
		// login will fail until the secret is configured.
		slog.Warn("JWT_SECRET is not set; token issuance will fail")
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("storage initialized", "database", cfg.DBPath)

	logger := slog.Default()
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, auth.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	server := api.NewServer(
		service.NewAuthService(authenticator, jwtManager, store, logger),
		service.NewMenuService(store, logger),
		service.NewOrderService(store, logger),
		jwtManager,
	)

	handler := middleware.CORS(cfg.AllowedOrigins)(server.Router())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "address", srv.Addr, "origins", cfg.AllowedOrigins)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
