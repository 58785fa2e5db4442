// Package ports defines repository interfaces for the fleet administration domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, driver *driver.Driver) error

	// Update persists changes to an existing driver aggregate,
	// including its vehicle assignment link.
	Update(ctx context.Context, driver *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if no such driver exists.
	Get(ctx context.Context, id kernel.ID) (*driver.Driver, error)

	// GetForUpdate retrieves a driver aggregate by its unique identifier and
	// locks the underlying row for the remainder of the transaction. Use this
	// when the driver's assignment link is about to change so concurrent
	// assignment operations serialize on the row.
	GetForUpdate(ctx context.Context, id kernel.ID) (*driver.Driver, error)

	// GetByUserID retrieves the driver profile backed by the given user account.
	// Returns an error wrapping errs.ErrObjectNotFound if the user has no
	// driver profile.
	GetByUserID(ctx context.Context, userID kernel.ID) (*driver.Driver, error)

	// GetByAssignedVehicleID retrieves the driver currently holding the given
	// vehicle. Returns an error wrapping errs.ErrObjectNotFound if no driver
	// holds the vehicle, which callers read as "the vehicle is free".
	GetByAssignedVehicleID(ctx context.Context, vehicleID kernel.ID) (*driver.Driver, error)

	// Delete removes the driver profile with the given identifier.
	// Deleting an absent driver is not an error.
	Delete(ctx context.Context, id kernel.ID) error
}
