package vehicle

import (
	"errors"
	"fmt"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrMakeIsRequired is returned when attempting to create a vehicle without a make.
	ErrMakeIsRequired = errs.NewValueIsRequiredError("make")
	// ErrModelIsRequired is returned when attempting to create a vehicle without a model.
	ErrModelIsRequired = errs.NewValueIsRequiredError("model")
	// ErrLicensePlateIsRequired is returned when attempting to create a vehicle without a license plate.
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("licensePlate")
	// ErrVehicleIsNotConstructed is returned when using an improperly initialized Vehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
)

// Vehicle represents a fleet vehicle parked at a warehouse.
// A vehicle can be held by at most one driver at a time; the assignment link
// itself lives on the Driver aggregate, keeping Vehicle free of driver state.
//
// Business rules:
//   - Make, model, and license plate are required
//   - License plate uniqueness is enforced by storage
//   - Every vehicle belongs to exactly one warehouse
type Vehicle struct {
	id           kernel.ID
	make         string
	model        string
	licensePlate string
	warehouseID  kernel.ID
	guard        guard.ConstructorGuard
}

// NewVehicle creates a new Vehicle with the specified attributes.
// This is the only way to create a valid Vehicle instance.
func NewVehicle(id kernel.ID, make, model, licensePlate string, warehouseID kernel.ID) (*Vehicle, error) {
	vehicle := &Vehicle{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vehicle.setID(id),
		vehicle.setMake(make),
		vehicle.setModel(model),
		vehicle.setLicensePlate(licensePlate),
		vehicle.setWarehouseID(warehouseID),
	); err != nil {
		return nil, err
	}

	return vehicle, nil
}

// RestoreVehicle reconstructs a Vehicle aggregate from persistent storage.
func RestoreVehicle(id kernel.ID, make, model, licensePlate string, warehouseID kernel.ID) (*Vehicle, error) {
	return NewVehicle(id, make, model, licensePlate, warehouseID)
}

// Validate ensures the Vehicle instance was properly constructed through NewVehicle.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.ID {
	return v.id
}

// Make returns the vehicle's manufacturer.
func (v *Vehicle) Make() string {
	return v.make
}

// Model returns the vehicle's model name.
func (v *Vehicle) Model() string {
	return v.model
}

// LicensePlate returns the vehicle's license plate.
func (v *Vehicle) LicensePlate() string {
	return v.licensePlate
}

// WarehouseID returns the identifier of the warehouse the vehicle belongs to.
func (v *Vehicle) WarehouseID() kernel.ID {
	return v.warehouseID
}

// Details returns the display string used in notifications and activity entries.
// The format is "{Make} {Model} ({LicensePlate})".
func (v *Vehicle) Details() string {
	return fmt.Sprintf("%s %s (%s)", v.make, v.model, v.licensePlate)
}

func (v *Vehicle) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setMake(make string) error {
	if make == "" {
		return ErrMakeIsRequired
	}
	v.make = make
	return nil
}

func (v *Vehicle) setModel(model string) error {
	if model == "" {
		return ErrModelIsRequired
	}
	v.model = model
	return nil
}

func (v *Vehicle) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return ErrLicensePlateIsRequired
	}
	v.licensePlate = licensePlate
	return nil
}

func (v *Vehicle) setWarehouseID(warehouseID kernel.ID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	v.warehouseID = warehouseID
	return nil
}
