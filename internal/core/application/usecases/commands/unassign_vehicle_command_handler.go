package commands

import (
	"context"
	"fmt"
	"time"

	"fleetadmin/internal/core/domain/model/activity"
	"fleetadmin/internal/core/domain/model/driver"
)

// UnassignVehicleCommandHandler orchestrates the release of a vehicle assignment.
// Locks the driver row, clears the link, and writes the driver notification
// and the activity log entry within a single transaction.
//
// A driver with no assigned vehicle yields driver.ErrNoAssignedVehicle before
// any write happens; the operation is idempotent and the no-op path produces
// no notification and no activity entry.
type UnassignVehicleCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewUnassignVehicleCommandHandler creates a handler for vehicle release operations.
func NewUnassignVehicleCommandHandler(uowFactory AssignmentUoWFactory) UnassignVehicleCommandHandler {
	return UnassignVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle release command.
// Returns the updated driver with the assignment cleared.
func (h UnassignVehicleCommandHandler) Handle(
	ctx context.Context,
	command UnassignVehicleCommand,
) (*driver.Driver, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.GetForUpdate(ctx, command.DriverID())
	if err != nil {
		return nil, err
	}

	vehicleID, err := drv.UnassignVehicle()
	if err != nil {
		return nil, err
	}

	veh, err := uow.VehicleRepository().Get(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if err = driverRepo.Update(ctx, drv); err != nil {
		return nil, err
	}

	usr, err := uow.UserRepository().Get(ctx, drv.UserID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if err = NewNotificationDispatcher(uow.NotificationRepository()).Dispatch(
		ctx,
		usr.ID(),
		fmt.Sprintf("Your vehicle assignment has been removed: %s", veh.Details()),
		now,
	); err != nil {
		return nil, err
	}

	if err = NewActivityLogger(uow.ActivityLogRepository()).Log(
		ctx,
		command.ActingUserID(),
		activity.ActionVehicleUnassigned,
		fmt.Sprintf("Vehicle %s unassigned from %s", veh.Details(), usr.FullName()),
		now,
	); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return drv, nil
}
