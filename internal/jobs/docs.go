// Package jobs provides scheduled background tasks for the vehicle inventory
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the vehicle service.
//
// # Available Jobs
//
// 1. ReservationReleaseJob - Runs every minute to return vehicles whose
// reservation has exceeded the configured TTL back to Available status
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseHandler, reservationTTL, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The release job uses the cron expression "* * * * *" which means it runs
// every minute. Reservation expiry is measured in hours, so a per-minute
// sweep keeps the inventory fresh without loading the database.
//
// # Error Handling
//
// An empty sweep is a successful no-op; only real failures (database errors,
// broken transitions) are logged.
package jobs
