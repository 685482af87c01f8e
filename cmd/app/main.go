package main

import (
	"context"
	_ "fittrack/docs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fittrack/internal/bootstrap"
	"fittrack/internal/config"
	"fittrack/internal/db"
	"fittrack/internal/logger"
	"fittrack/internal/membership"
	"fittrack/internal/notify"
	"fittrack/internal/server"
	"fittrack/internal/user"
)

// @title FitTrack API
// @version 1.0
// @description API for the FitTrack fitness tracking service: workouts, goals, tiered memberships with redeemable keys, and partner integrations.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting FitTrack application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	notifier := notify.New(cfg.RedisAddr, cfg.WebhookURL)
	defer notifier.Close()
	logger.Info("Notification service initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go notifier.Start(ctx)

	if err := bootstrap.EnsureOwner(ctx,
		user.NewRepository(database),
		membership.NewRepository(database),
		cfg.OwnerEmail,
		cfg.OwnerName,
	); err != nil {
		logger.Errorf("Owner bootstrap failed: %v", err)
	}

	srv := server.New(database, cfg, notifier)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
