package warehouse

import (
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

// Domain errors for warehouse operations.
var (
	// ErrNameIsRequired is returned when attempting to create a warehouse without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrWarehouseIsNotConstructed is returned when using an improperly initialized Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse constructor")
)

// Warehouse represents a depot where vehicles are parked and vacancies are opened.
type Warehouse struct {
	id      kernel.ID
	name    string
	address string
	guard   guard.ConstructorGuard
}

// NewWarehouse creates a new Warehouse with the specified attributes.
func NewWarehouse(id kernel.ID, name, address string) (*Warehouse, error) {
	warehouse := &Warehouse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		warehouse.setID(id),
		warehouse.setName(name),
	); err != nil {
		return nil, err
	}

	warehouse.address = address
	return warehouse, nil
}

// RestoreWarehouse reconstructs a Warehouse aggregate from persistent storage.
func RestoreWarehouse(id kernel.ID, name, address string) (*Warehouse, error) {
	return NewWarehouse(id, name, address)
}

// Validate ensures the Warehouse instance was properly constructed through NewWarehouse.
func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

// IsEqual compares two warehouses by their unique identifiers.
func (w *Warehouse) IsEqual(other *Warehouse) bool {
	return other != nil && w.id.IsEqual(other.id)
}

// ID returns the warehouse's unique identifier.
func (w *Warehouse) ID() kernel.ID {
	return w.id
}

// Name returns the warehouse's display name.
func (w *Warehouse) Name() string {
	return w.name
}

// Address returns the warehouse's address. May be empty.
func (w *Warehouse) Address() string {
	return w.address
}

func (w *Warehouse) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	w.name = name
	return nil
}
