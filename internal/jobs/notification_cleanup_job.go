package jobs

import (
	"context"
	"log/slog"
	"time"

	"fleetadmin/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// NotificationCleanupJob manages the scheduled purge of aged read notifications.
// Runs hourly and deletes read notifications older than the retention window.
// Unread notifications are kept regardless of age.
type NotificationCleanupJob struct {
	handler       commands.PurgeReadNotificationsCommandHandler
	retentionDays int
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewNotificationCleanupJob creates a new job for purging read notifications.
// Uses PurgeReadNotificationsCommandHandler to delete read notifications whose
// creation date falls outside the retention window.
func NewNotificationCleanupJob(
	handler commands.PurgeReadNotificationsCommandHandler,
	retentionDays int,
	logger *slog.Logger,
) *NotificationCleanupJob {
	return &NotificationCleanupJob{
		handler:       handler,
		retentionDays: retentionDays,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "notification_cleanup_job"),
	}
}

// Start begins the notification cleanup job to run at the top of every hour.
func (j *NotificationCleanupJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)

		cmd, cmdErr := commands.NewPurgeReadNotificationsCommand(cutoff)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Notification cleanup job failed to build command", "error", cmdErr)
			return
		}

		purged, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Notification cleanup job failed", "error", handleErr)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged read notifications", "count", purged, "cutoff", cutoff)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Notification cleanup job started (running hourly)",
		"retention_days", j.retentionDays)
	return nil
}

// Stop stops the notification cleanup job.
func (j *NotificationCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Notification cleanup job stopped")
}
