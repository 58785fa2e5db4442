package driver

import (
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

// Domain errors for driver operations.
var (
	// ErrLicenseNumberIsRequired is returned when attempting to create a driver without a license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("licenseNumber")
	// ErrDriverIsNotConstructed is returned when using an improperly initialized Driver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrDriverAlreadyHasVehicle is returned when assigning a vehicle to a driver
	// that already holds one. The existing assignment must be released first.
	ErrDriverAlreadyHasVehicle = errs.NewConflictError("driver already has an assigned vehicle")
	// ErrNoAssignedVehicle is returned when unassigning a driver that holds no vehicle.
	// Callers may treat it as a benign outcome; the driver is already in the target state.
	ErrNoAssignedVehicle = errs.NewConflictError("driver has no assigned vehicle")
)

// Driver represents a driver profile linked to a user account.
// It is the aggregate that owns the vehicle assignment link: a driver holds at
// most one vehicle, and the reciprocal side (one driver per vehicle) is checked
// by the assignment use case against all driver profiles and backed by a unique
// constraint in storage.
//
// Business rules:
//   - A driver always references an existing user account
//   - License number is required
//   - AssignVehicle refuses to overwrite an existing assignment
//   - UnassignVehicle on a free driver reports ErrNoAssignedVehicle and changes nothing
type Driver struct {
	id                kernel.ID
	userID            kernel.ID
	licenseNumber     string
	assignedVehicleID *kernel.ID
	guard             guard.ConstructorGuard
}

// NewDriver creates a new Driver profile with no vehicle assigned.
// This is the only way to create a valid Driver instance.
func NewDriver(id, userID kernel.ID, licenseNumber string) (*Driver, error) {
	driver := &Driver{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		driver.setID(id),
		driver.setUserID(userID),
		driver.setLicenseNumber(licenseNumber),
	); err != nil {
		return nil, err
	}

	return driver, nil
}

// RestoreDriver reconstructs a Driver aggregate from persistent storage,
// including its vehicle assignment if one was persisted.
func RestoreDriver(id, userID kernel.ID, licenseNumber string, assignedVehicleID *kernel.ID) (*Driver, error) {
	driver, err := NewDriver(id, userID, licenseNumber)
	if err != nil {
		return nil, err
	}

	if assignedVehicleID != nil {
		if err := assignedVehicleID.Validate(); err != nil {
			return nil, err
		}
		vehicleID := *assignedVehicleID
		driver.assignedVehicleID = &vehicleID
	}

	return driver, nil
}

// Validate ensures the Driver instance was properly constructed through NewDriver.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by their unique identifiers.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.ID {
	return d.id
}

// UserID returns the identifier of the user account behind this driver profile.
func (d *Driver) UserID() kernel.ID {
	return d.userID
}

// LicenseNumber returns the driver's license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// AssignedVehicleID returns the identifier of the vehicle held by the driver.
// Returns nil if no vehicle is assigned.
func (d *Driver) AssignedVehicleID() *kernel.ID {
	if d.assignedVehicleID == nil {
		return nil
	}
	vehicleID := *d.assignedVehicleID
	return &vehicleID
}

// HasAssignedVehicle reports whether the driver currently holds a vehicle.
func (d *Driver) HasAssignedVehicle() bool {
	return d.assignedVehicleID != nil
}

// AssignVehicle links the driver to the given vehicle.
//
// Returns ErrDriverAlreadyHasVehicle if the driver already holds a vehicle,
// including the one being assigned; an existing assignment must be released
// explicitly before a new one is made. The driver state is unchanged on error.
func (d *Driver) AssignVehicle(vehicleID kernel.ID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	if d.assignedVehicleID != nil {
		return ErrDriverAlreadyHasVehicle
	}

	d.assignedVehicleID = &vehicleID
	return nil
}

// UnassignVehicle releases the driver's vehicle assignment and returns the
// identifier of the vehicle that was held.
//
// Returns ErrNoAssignedVehicle if the driver holds no vehicle. The driver is
// already in the requested state on that path, so callers may treat the error
// as benign; no state is changed.
func (d *Driver) UnassignVehicle() (kernel.ID, error) {
	if d.assignedVehicleID == nil {
		return kernel.ID{}, ErrNoAssignedVehicle
	}

	vehicleID := *d.assignedVehicleID
	d.assignedVehicleID = nil
	return vehicleID, nil
}

func (d *Driver) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	d.userID = userID
	return nil
}

func (d *Driver) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}
	d.licenseNumber = licenseNumber
	return nil
}
