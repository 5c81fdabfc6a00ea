package jobs

import (
	"fmt"
	"log/slog"

	"printshop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	courierPickupJob *CourierPickupJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *JobManager {
	return &JobManager{
		courierPickupJob: NewCourierPickupJob(uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.courierPickupJob.Start(); err != nil {
		return fmt.Errorf("failed to start courier pickup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.courierPickupJob.Stop()
}
