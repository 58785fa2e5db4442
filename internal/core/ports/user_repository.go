package ports

import (
	"context"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate to storage.
	Add(ctx context.Context, user *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, user *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if no such user exists.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// Delete removes the user with the given identifier.
	// Dependent rows (driver profile, applications, notifications, activity
	// entries) are removed by the use case before this call.
	Delete(ctx context.Context, id kernel.ID) error
}
