package commands

import (
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var ErrAssignVehicleCommandIsNotConstructed = errors.New(
	"AssignVehicleCommand must be created via NewAssignVehicleCommand constructor",
)

// AssignVehicleCommand represents a request to assign a vehicle to a driver.
// The assignment is strictly one-to-one in both directions: the handler
// refuses drivers that already hold a vehicle and vehicles already held by
// any driver.
//
// Example:
//
//	cmd, err := NewAssignVehicleCommand(actingUserID, driverID, vehicleID)
//	if err != nil {
//	    return fmt.Errorf("invalid assignment request: %w", err)
//	}
//	handler := NewAssignVehicleCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assignment failed: %w", err)
//	}
type AssignVehicleCommand struct { //nolint:recvcheck //using for validation
	actingUserID kernel.ID
	driverID     kernel.ID
	vehicleID    kernel.ID

	guard guard.ConstructorGuard
}

// NewAssignVehicleCommand creates a command to assign a vehicle to a driver.
// Validates that all three identifiers are constructed.
func NewAssignVehicleCommand(actingUserID, driverID, vehicleID kernel.ID) (AssignVehicleCommand, error) {
	command := AssignVehicleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingUserID(actingUserID),
		command.setDriverID(driverID),
		command.setVehicleID(vehicleID),
	); err != nil {
		return AssignVehicleCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignVehicleCommandIsNotConstructed if validation fails.
func (c AssignVehicleCommand) Validate() error {
	return c.guard.Validate(ErrAssignVehicleCommandIsNotConstructed)
}

// ActingUserID returns the identifier of the user performing the assignment.
func (c AssignVehicleCommand) ActingUserID() kernel.ID {
	return c.actingUserID
}

// DriverID returns the target driver's identifier.
func (c AssignVehicleCommand) DriverID() kernel.ID {
	return c.driverID
}

// VehicleID returns the identifier of the vehicle being assigned.
func (c AssignVehicleCommand) VehicleID() kernel.ID {
	return c.vehicleID
}

func (c *AssignVehicleCommand) setActingUserID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingUserID = id
	return nil
}

func (c *AssignVehicleCommand) setDriverID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.driverID = id
	return nil
}

func (c *AssignVehicleCommand) setVehicleID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vehicleID = id
	return nil
}
