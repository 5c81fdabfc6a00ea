// Package jobs provides scheduled background tasks for the print shop.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around order fulfillment.
//
// # Available Jobs
//
// 1. CourierPickupJob - Runs every minute and logs shipping-company orders
// that are ready for delivery but have no courier designated yet.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with the unit of work factory
//	jobManager := jobs.NewJobManager(uowFactory, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The pickup job observes and logs only; it never mutates order state, so
// its transaction is always rolled back. Scan failures are logged and the
// next tick retries from scratch.
package jobs
