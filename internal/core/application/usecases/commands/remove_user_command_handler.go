package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetadmin/internal/core/domain/model/activity"
	"fleetadmin/internal/pkg/errs"
)

// ErrUserStillHasVehicle is returned when removing a user whose driver profile
// still holds a vehicle. The assignment must be released first so the vehicle
// is not silently orphaned.
var ErrUserStillHasVehicle = errs.NewConflictError("user's driver profile still has an assigned vehicle")

// RemoveUserCommandHandler orchestrates user account removal.
// Deletes the driver profile, job applications, notifications, and activity
// entries owned by the user, then the user row itself, and records the
// removal attributed to the acting user, all within a single transaction.
type RemoveUserCommandHandler struct {
	uowFactory RemovalUoWFactory
}

// NewRemoveUserCommandHandler creates a handler for user removal operations.
func NewRemoveUserCommandHandler(uowFactory RemovalUoWFactory) RemoveUserCommandHandler {
	return RemoveUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the user removal command.
func (h RemoveUserCommandHandler) Handle(ctx context.Context, command RemoveUserCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()

	usr, err := userRepo.Get(ctx, command.UserID())
	if err != nil {
		return err
	}

	driverRepo := uow.DriverRepository()

	drv, err := driverRepo.GetByUserID(ctx, usr.ID())
	switch {
	case err == nil:
		if drv.HasAssignedVehicle() {
			return ErrUserStillHasVehicle
		}
		if err = driverRepo.Delete(ctx, drv.ID()); err != nil {
			return err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// User has no driver profile, nothing to cascade there.
	default:
		return err
	}

	if err = uow.ApplicationRepository().DeleteByUserID(ctx, usr.ID()); err != nil {
		return err
	}

	if err = uow.NotificationRepository().DeleteByUserID(ctx, usr.ID()); err != nil {
		return err
	}

	activityRepo := uow.ActivityLogRepository()
	if err = activityRepo.DeleteByUserID(ctx, usr.ID()); err != nil {
		return err
	}

	if err = userRepo.Delete(ctx, usr.ID()); err != nil {
		return err
	}

	if err = NewActivityLogger(activityRepo).Log(
		ctx,
		command.ActingUserID(),
		activity.ActionUserRemoved,
		fmt.Sprintf("User %s removed", usr.FullName()),
		time.Now().UTC(),
	); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
