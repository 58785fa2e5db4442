package ports

import (
	"context"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/warehouse"
)

// WarehouseRepository defines the persistence contract for warehouse aggregates.
type WarehouseRepository interface {
	// Add persists a new warehouse aggregate to storage.
	Add(ctx context.Context, warehouse *warehouse.Warehouse) error

	// Get retrieves a warehouse aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if no such warehouse exists.
	Get(ctx context.Context, id kernel.ID) (*warehouse.Warehouse, error)
}
