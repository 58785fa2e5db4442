package ports

import (
	"context"

	"fleetadmin/internal/core/domain/model/activity"
	"fleetadmin/internal/core/domain/model/kernel"
)

// ActivityLogRepository defines the persistence contract for the activity log.
// The log is append-only; entries are never updated once written.
type ActivityLogRepository interface {
	// Add persists a new activity log entry to storage.
	// Storage assigns the identifier on insert.
	Add(ctx context.Context, entry *activity.Entry) error

	// DeleteByUserID removes all activity entries attributed to the given user.
	// Used only when the user account itself is removed.
	DeleteByUserID(ctx context.Context, userID kernel.ID) error
}
