// Package jobs provides scheduled background tasks for the fleet administration system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance required for the fleet administration service.
//
// # Available Jobs
//
// 1. NotificationCleanupJob - Runs hourly to purge read notifications older than the retention window
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, retentionDays, logger)
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
// The cleanup job uses the cron expression "0 0 * * * *" which means it runs at
// the top of every hour. Unread notifications are never purged regardless of age.
//
// # Error Handling
//
// - Cleanup job logs every failure; there are no expected business errors
// - Failed job starts will stop any already running jobs
package jobs
