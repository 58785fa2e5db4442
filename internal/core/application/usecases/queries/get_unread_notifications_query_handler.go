package queries

import (
	"context"

	"fleetadmin/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetUnreadNotificationsQueryHandler retrieves a user's unread notifications
// from the database.
type GetUnreadNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnreadNotificationsQueryHandler creates a handler for unread notification queries.
// Requires a GORM database connection for query execution.
func NewGetUnreadNotificationsQueryHandler(db *gorm.DB) GetUnreadNotificationsQueryHandler {
	return GetUnreadNotificationsQueryHandler{db: db}
}

// Handle executes the query to retrieve the user's unread notifications.
// Returns notification read models sorted newest first.
func (h GetUnreadNotificationsQueryHandler) Handle(
	ctx context.Context,
	query GetUnreadNotificationsQuery,
) ([]GetUnreadNotificationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	notifications := make([]GetUnreadNotificationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			message,
			created_date
		FROM notifications
		WHERE user_id = ? AND is_read = FALSE
		ORDER BY created_date DESC, id DESC
	`, query.UserID().Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var notificationResp GetUnreadNotificationsQueryResponse
		var id int64

		err = rows.Scan(
			&id,
			&notificationResp.Message,
			&notificationResp.CreatedDate,
		)
		if err != nil {
			return nil, err
		}

		notificationID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		notificationResp.ID = notificationID

		notifications = append(notifications, notificationResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
