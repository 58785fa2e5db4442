package queries

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var (
	ErrGetUnreadNotificationsQueryIsNotConstructed = errors.New(
		"GetUnreadNotificationsQuery must be created via NewGetUnreadNotificationsQuery constructor",
	)
)

// GetUnreadNotificationsQuery retrieves the unread notifications addressed to
// a single user, newest first.
type GetUnreadNotificationsQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetUnreadNotificationsQuery creates a query for a user's unread notifications.
func NewGetUnreadNotificationsQuery(userID kernel.ID) (GetUnreadNotificationsQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUnreadNotificationsQuery{}, err
	}

	return GetUnreadNotificationsQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnreadNotificationsQueryIsNotConstructed if validation fails.
func (q GetUnreadNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetUnreadNotificationsQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose inbox is read.
func (q GetUnreadNotificationsQuery) UserID() kernel.ID {
	return q.userID
}

// GetUnreadNotificationsQueryResponse represents one unread notification in
// the read model.
type GetUnreadNotificationsQueryResponse struct {
	ID          kernel.ID
	Message     string
	CreatedDate time.Time
}
