package queries

import (
	"context"

	"fleetadmin/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetRecentActivityQueryHandler retrieves the activity log tail from the database.
type GetRecentActivityQueryHandler struct {
	db *gorm.DB
}

// NewGetRecentActivityQueryHandler creates a handler for activity log queries.
// Requires a GORM database connection for query execution.
func NewGetRecentActivityQueryHandler(db *gorm.DB) GetRecentActivityQueryHandler {
	return GetRecentActivityQueryHandler{db: db}
}

// Handle executes the query to retrieve the most recent activity entries.
// Returns entry read models sorted newest first, at most the query's limit.
func (h GetRecentActivityQueryHandler) Handle(
	ctx context.Context,
	query GetRecentActivityQuery,
) ([]GetRecentActivityQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetRecentActivityQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			action_type,
			description,
			timestamp
		FROM activity_log
		ORDER BY timestamp DESC, id DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryResp GetRecentActivityQueryResponse
		var id, userID int64

		err = rows.Scan(
			&id,
			&userID,
			&entryResp.ActionType,
			&entryResp.Description,
			&entryResp.Timestamp,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		entryResp.ID = entryID

		entryUserID, idErr := kernel.NewID(userID)
		if idErr != nil {
			return nil, idErr
		}
		entryResp.UserID = entryUserID

		entries = append(entries, entryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
