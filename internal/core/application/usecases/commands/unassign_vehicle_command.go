package commands

import (
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var ErrUnassignVehicleCommandIsNotConstructed = errors.New(
	"UnassignVehicleCommand must be created via NewUnassignVehicleCommand constructor",
)

// UnassignVehicleCommand represents a request to release a driver's vehicle
// assignment. Unassigning a driver that holds no vehicle is reported as a
// benign conflict and leaves no trace.
type UnassignVehicleCommand struct { //nolint:recvcheck //using for validation
	actingUserID kernel.ID
	driverID     kernel.ID

	guard guard.ConstructorGuard
}

// NewUnassignVehicleCommand creates a command to release a driver's vehicle assignment.
func NewUnassignVehicleCommand(actingUserID, driverID kernel.ID) (UnassignVehicleCommand, error) {
	command := UnassignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingUserID(actingUserID),
		command.setDriverID(driverID),
	); err != nil {
		return UnassignVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnassignVehicleCommandIsNotConstructed if validation fails.
func (c UnassignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrUnassignVehicleCommandIsNotConstructed)
}

// ActingUserID returns the identifier of the user performing the release.
func (c UnassignVehicleCommand) ActingUserID() kernel.ID {
	return c.actingUserID
}

// DriverID returns the target driver's identifier.
func (c UnassignVehicleCommand) DriverID() kernel.ID {
	return c.driverID
}

func (c *UnassignVehicleCommand) setActingUserID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingUserID = id
	return nil
}

func (c *UnassignVehicleCommand) setDriverID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}
