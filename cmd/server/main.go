package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"jobunyacar-backend/internal/api"
	"jobunyacar-backend/internal/config"
	"jobunyacar-backend/internal/logger"
	"jobunyacar-backend/internal/repository/postgres"
	"jobunyacar-backend/internal/security"
	"jobunyacar-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Environment overrides can live in a local .env during development
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Jobunyacar Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Server.FrontendURL,
	)
	authSvc := service.NewAuthService(store, tokenManager, emailSvc, cfg.Policy.RequireEmailVerification)
	userSvc := service.NewUserService(store)
	vehicleSvc := service.NewVehicleService(store)
	bookingSvc := service.NewBookingService(store, emailSvc, cfg.Policy.AllowAdminBooking)
	reportSvc := service.NewDamageReportService(store)
	locationSvc := service.NewLocationService(store)

	// Initialize HTTP layer
	handlers := api.NewHandlers(authSvc, userSvc, vehicleSvc, bookingSvc, reportSvc, locationSvc)
	authenticator := api.NewAuthenticator(tokenManager, store)
	router := api.NewRouter(handlers, authenticator, cfg.Server.FrontendURL)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
