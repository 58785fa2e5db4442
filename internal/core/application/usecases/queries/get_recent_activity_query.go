package queries

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

// MaxRecentActivityLimit bounds how many entries a single query may request.
const MaxRecentActivityLimit = 500

var (
	ErrGetRecentActivityQueryIsNotConstructed = errors.New(
		"GetRecentActivityQuery must be created via NewGetRecentActivityQuery constructor",
	)
)

// GetRecentActivityQuery retrieves the most recent activity log entries,
// newest first, bounded by the requested limit.
type GetRecentActivityQuery struct {
	limit int

	guard guard.ConstructorGuard
}

// NewGetRecentActivityQuery creates a query for the activity log tail.
// The limit must be between 1 and MaxRecentActivityLimit.
func NewGetRecentActivityQuery(limit int) (GetRecentActivityQuery, error) {
	if limit < 1 || limit > MaxRecentActivityLimit {
		return GetRecentActivityQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxRecentActivityLimit)
	}

	return GetRecentActivityQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRecentActivityQueryIsNotConstructed if validation fails.
func (q GetRecentActivityQuery) Validate() error {
	return q.guard.Validate(ErrGetRecentActivityQueryIsNotConstructed)
}

// Limit returns the maximum number of entries to retrieve.
func (q GetRecentActivityQuery) Limit() int {
	return q.limit
}

// GetRecentActivityQueryResponse represents one activity log entry in the
// read model.
type GetRecentActivityQueryResponse struct {
	ID          kernel.ID
	UserID      kernel.ID
	ActionType  string
	Description string
	Timestamp   time.Time
}
