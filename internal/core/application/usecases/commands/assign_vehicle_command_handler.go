package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetadmin/internal/core/domain/model/activity"
	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/vehicle"
	"fleetadmin/internal/pkg/errs"
)

// ErrVehicleAlreadyAssigned is returned when the requested vehicle is already
// held by some driver. The existing assignment must be released first.
var ErrVehicleAlreadyAssigned = errs.NewConflictError("vehicle is already assigned to another driver")

// AssignVehicleCommandHandler orchestrates the vehicle assignment process.
// Locks both the driver and vehicle rows, verifies the reciprocal one-to-one
// invariant, links the vehicle, and writes the driver notification and the
// activity log entry, all within a single transaction.
//
// Example:
//
//	handler := NewAssignVehicleCommandHandler(uowFactory)
//	cmd, _ := NewAssignVehicleCommand(actingUserID, driverID, vehicleID)
//	drv, veh, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    log.Println("Driver or vehicle does not exist")
//	case errors.Is(err, errs.ErrConflict):
//	    log.Println("Driver or vehicle is already taken")
//	case err != nil:
//	    log.Printf("Assignment failed: %v", err)
//	}
type AssignVehicleCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignVehicleCommandHandler creates a handler for vehicle assignment operations.
// Requires an AssignmentUoWFactory for coordinating transactional updates across repositories.
func NewAssignVehicleCommandHandler(uowFactory AssignmentUoWFactory) AssignVehicleCommandHandler {
	return AssignVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle assignment command.
// Returns the updated driver together with the assigned vehicle.
//
// Both the driver and vehicle rows are locked before any precondition is
// evaluated, so two concurrent assignments over the same rows serialize and
// the loser observes the winner's committed state. The free-vehicle check
// queries the assignment links of all drivers; the unique constraint on the
// link column backs the check against races the locks cannot see.
func (h AssignVehicleCommandHandler) Handle(
	ctx context.Context,
	command AssignVehicleCommand,
) (*driver.Driver, *vehicle.Vehicle, error) {
	if err := command.Validate(); err != nil {
		return nil, nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()
	vehicleRepo := uow.VehicleRepository()

	drv, err := driverRepo.GetForUpdate(ctx, command.DriverID())
	if err != nil {
		return nil, nil, err
	}

	veh, err := vehicleRepo.GetForUpdate(ctx, command.VehicleID())
	if err != nil {
		return nil, nil, err
	}

	_, err = driverRepo.GetByAssignedVehicleID(ctx, veh.ID())
	if err == nil {
		return nil, nil, ErrVehicleAlreadyAssigned
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil, err
	}

	if err = drv.AssignVehicle(veh.ID()); err != nil {
		return nil, nil, err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return nil, nil, err
	}

	usr, err := uow.UserRepository().Get(ctx, drv.UserID())
	if err != nil {
		return nil, nil, err
	}

	now := time.Now().UTC()

	if err = NewNotificationDispatcher(uow.NotificationRepository()).Dispatch(
		ctx,
		usr.ID(),
		fmt.Sprintf("You have been assigned vehicle: %s", veh.Details()),
		now,
	); err != nil {
		return nil, nil, err
	}

	if err = NewActivityLogger(uow.ActivityLogRepository()).Log(
		ctx,
		command.ActingUserID(),
		activity.ActionVehicleAssigned,
		fmt.Sprintf("Vehicle %s assigned to %s", veh.Details(), usr.FullName()),
		now,
	); err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return drv, veh, nil
}
