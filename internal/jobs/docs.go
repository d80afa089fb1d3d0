// Package jobs provides scheduled background tasks for the operations
// platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations the restaurant floor depends on.
//
// # Available Jobs
//
// 1. TableReleaseJob - Runs every second to close settled table orders
// whose grace window has elapsed, freeing their tables for new seatings
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseTablesHandler, grace, logger)
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
// The sweep uses the cron expression "* * * * * *", running every second
// so a table frees within about a second of becoming eligible.
//
// # Error Handling
//
// - Version conflicts with concurrent settlements are expected and ignored
// - Any other sweep failure is logged; the next tick retries from scratch
// - A failed job start aborts application startup
package jobs
