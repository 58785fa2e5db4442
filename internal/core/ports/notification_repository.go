package ports

import (
	"context"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	// Add persists a new notification to storage.
	// Storage assigns the identifier on insert.
	Add(ctx context.Context, notification *notification.Notification) error

	// MarkAllRead marks every unread notification of the given user as read.
	// Returns the number of notifications updated.
	MarkAllRead(ctx context.Context, userID kernel.ID) (int64, error)

	// DeleteReadOlderThan removes read notifications created before the cutoff.
	// Returns the number of notifications removed. Unread notifications are
	// never removed regardless of age.
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteByUserID removes all notifications addressed to the given user.
	DeleteByUserID(ctx context.Context, userID kernel.ID) error
}
