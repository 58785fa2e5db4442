package ports

import (
	"context"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for vehicle aggregates.
type VehicleRepository interface {
	// Add persists a new vehicle aggregate to storage.
	Add(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle aggregate.
	Update(ctx context.Context, vehicle *vehicle.Vehicle) error

	// Get retrieves a vehicle aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if no such vehicle exists.
	Get(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error)

	// GetForUpdate retrieves a vehicle aggregate by its unique identifier and
	// locks the underlying row for the remainder of the transaction. Use this
	// when the vehicle is about to be assigned or released so concurrent
	// assignment operations serialize on the row.
	GetForUpdate(ctx context.Context, id kernel.ID) (*vehicle.Vehicle, error)
}
