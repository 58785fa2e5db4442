package ports

import (
	"context"

	"fleetadmin/internal/core/domain/model/application"
	"fleetadmin/internal/core/domain/model/kernel"
)

// ApplicationRepository defines the persistence contract for job application aggregates.
type ApplicationRepository interface {
	// Add persists a new application aggregate to storage.
	Add(ctx context.Context, application *application.Application) error

	// Update persists changes to an existing application aggregate.
	Update(ctx context.Context, application *application.Application) error

	// Get retrieves an application aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if no such application exists.
	Get(ctx context.Context, id kernel.ID) (*application.Application, error)

	// GetForUpdate retrieves an application aggregate by its unique identifier
	// and locks the underlying row for the remainder of the transaction. Use
	// this when the review status is about to change so concurrent reviews
	// serialize on the row.
	GetForUpdate(ctx context.Context, id kernel.ID) (*application.Application, error)

	// DeleteByUserID removes all applications submitted by the given user.
	DeleteByUserID(ctx context.Context, userID kernel.ID) error
}
