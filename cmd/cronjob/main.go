package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"jobunyacar-backend/internal/config"
	"jobunyacar-backend/internal/jobs"
	"jobunyacar-backend/internal/logger"
	"jobunyacar-backend/internal/repository/postgres"
	"jobunyacar-backend/internal/scheduler"
	"jobunyacar-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'reconcile-availability', 'all-nightly')")
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Jobunyacar Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Initialize Services
	emailSvc := service.NewEmailService(
		cfg.Email.APIKey,
		cfg.Email.FromEmail,
		cfg.Email.FromName,
		cfg.Server.FrontendURL,
	)
	bookingSvc := service.NewBookingService(store, emailSvc, cfg.Policy.AllowAdminBooking)

	jobRunner := jobs.NewJobRunner(bookingSvc, cfg)

	// Run-once mode executes a single job and exits
	if *runOnce != "" {
		switch *runOnce {
		case "reconcile-availability":
			jobRunner.ReconcileVehicleAvailability()
		case "all-nightly":
			jobRunner.RunAllNightlyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		logger.Info("Run-once job finished", "job", *runOnce)
		return
	}

	// Scheduled mode
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sched.Stop()
}
