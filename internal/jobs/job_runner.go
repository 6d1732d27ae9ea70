package jobs

import (
	"context"
	"time"

	"jobunyacar-backend/internal/config"
	"jobunyacar-backend/internal/logger"
	"jobunyacar-backend/internal/service"
)

const jobTimeout = 10 * time.Minute

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	bookingSvc service.BookingService
	config     *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(bookingSvc service.BookingService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		bookingSvc: bookingSvc,
		config:     cfg,
	}
}

// Config returns the loaded configuration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	logger.Info("Starting job", "job", jobName)
	if err := jobFunc(ctx); err != nil {
		logger.Error("Job failed", "job", jobName, "error", err)
		return
	}
	logger.Info("Job completed", "job", jobName)
}

// ReconcileVehicleAvailability recomputes every vehicle's cached
// availability from the booking table.
func (jr *JobRunner) ReconcileVehicleAvailability() {
	jr.runWithRecovery("ReconcileVehicleAvailability", jr.bookingSvc.ReconcileVehicleAvailability)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ReconcileVehicleAvailability()
}
