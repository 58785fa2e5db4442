package commands

import (
	"context"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/notification"
	"fleetadmin/internal/core/ports"
)

// NotificationDispatcher writes user notifications through a repository bound
// to the caller's transaction, so the notification commits or rolls back
// together with the mutation that caused it.
type NotificationDispatcher struct {
	notifications ports.NotificationRepository
}

// NewNotificationDispatcher creates a dispatcher over the given repository.
// The repository must be obtained from the unit of work of the running command.
func NewNotificationDispatcher(notifications ports.NotificationRepository) NotificationDispatcher {
	return NotificationDispatcher{notifications: notifications}
}

// Dispatch creates an unread notification for the given user.
func (d NotificationDispatcher) Dispatch(ctx context.Context, userID kernel.ID, message string, at time.Time) error {
	n, err := notification.NewNotification(userID, message, at)
	if err != nil {
		return err
	}
	return d.notifications.Add(ctx, n)
}
