package commands

import (
	"context"
	"time"

	"fleetadmin/internal/core/domain/model/activity"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/ports"
)

// ActivityLogger appends activity log entries through a repository bound to
// the caller's transaction, so the entry commits or rolls back together with
// the mutation it describes.
type ActivityLogger struct {
	entries ports.ActivityLogRepository
}

// NewActivityLogger creates a logger over the given repository.
// The repository must be obtained from the unit of work of the running command.
func NewActivityLogger(entries ports.ActivityLogRepository) ActivityLogger {
	return ActivityLogger{entries: entries}
}

// Log appends an entry attributed to the acting user.
func (l ActivityLogger) Log(ctx context.Context, userID kernel.ID, actionType, description string, at time.Time) error {
	entry, err := activity.NewEntry(userID, actionType, description, at)
	if err != nil {
		return err
	}
	return l.entries.Add(ctx, entry)
}
