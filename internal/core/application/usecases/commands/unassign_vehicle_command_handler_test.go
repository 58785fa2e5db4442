package commands_test

import (
	"errors"
	"testing"

	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/core/domain/model/activity"
	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/notification"
	"fleetadmin/internal/core/domain/model/user"
	"fleetadmin/internal/core/domain/model/vehicle"
	"fleetadmin/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type unassignFixture struct {
	actingUserID kernel.ID
	driver       *driver.Driver
	vehicle      *vehicle.Vehicle
	user         *user.User
	cmd          commands.UnassignVehicleCommand
}

func newUnassignFixture(t *testing.T) unassignFixture {
	t.Helper()

	veh, err := vehicle.NewVehicle(mustNewID(t, 9), "Ford", "Transit", "AB-123-CD", mustNewID(t, 4))
	require.NoError(t, err)

	vehicleID := veh.ID()
	drv, err := driver.RestoreDriver(mustNewID(t, 1), mustNewID(t, 2), "DL-12345", &vehicleID)
	require.NoError(t, err)

	usr, err := user.NewUser(mustNewID(t, 2), "John", "Smith", "john@example.com", "secret", "", "")
	require.NoError(t, err)

	cmd, err := commands.NewUnassignVehicleCommand(mustNewID(t, 100), drv.ID())
	require.NoError(t, err)

	return unassignFixture{
		actingUserID: mustNewID(t, 100),
		driver:       drv,
		vehicle:      veh,
		user:         usr,
		cmd:          cmd,
	}
}

func TestUnassignVehicleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	fx := newUnassignFixture(t)

	driverRepo := new(MockDriverRepository)
	vehicleRepo := new(MockVehicleRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)
	activityRepo := new(MockActivityLogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, fx.driver.ID()).Return(fx.driver, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, fx.vehicle.ID()).Return(fx.vehicle, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, fx.driver.UserID()).Return(fx.user, nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", ctx, mock.MatchedBy(func(n *notification.Notification) bool {
			return n.UserID().IsEqual(fx.user.ID()) &&
				n.Message() == "Your vehicle assignment has been removed: Ford Transit (AB-123-CD)" &&
				!n.IsRead()
		})).Return(nil).Once(),
		uow.On("ActivityLogRepository").Return(activityRepo).Once(),
		activityRepo.On("Add", ctx, mock.MatchedBy(func(e *activity.Entry) bool {
			return e.UserID().IsEqual(fx.actingUserID) &&
				e.ActionType() == activity.ActionVehicleUnassigned &&
				e.Description() == "Vehicle Ford Transit (AB-123-CD) unassigned from John Smith"
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignVehicleCommandHandler(factory)
	drv, err := handler.Handle(ctx, fx.cmd)

	require.NoError(t, err)
	require.False(t, fx.driver.HasAssignedVehicle())
	require.True(t, drv.IsEqual(fx.driver))
	require.False(t, drv.HasAssignedVehicle())
	driverRepo.AssertExpectations(t)
	vehicleRepo.AssertExpectations(t)
	notificationRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUnassignVehicleCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UnassignVehicleCommand{} // not constructed properly

	factory := new(MockAssignmentUoWFactory)
	handler := commands.NewUnassignVehicleCommandHandler(factory)
	drv, err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUnassignVehicleCommandIsNotConstructed)
	require.Nil(t, drv)
	factory.AssertNotCalled(t, "Create")
}

func TestUnassignVehicleCommandHandler_Handle_DriverNotFound(t *testing.T) {
	ctx := t.Context()
	fx := newUnassignFixture(t)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, fx.driver.ID()).
			Return(nil, errs.NewObjectNotFoundError("driverId", fx.driver.ID())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignVehicleCommandHandler(factory)
	_, err := handler.Handle(ctx, fx.cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUnassignVehicleCommandHandler_Handle_DriverHasNoVehicle(t *testing.T) {
	ctx := t.Context()
	fx := newUnassignFixture(t)

	// Driver without an assignment, release is a no-op
	freeDriver, err := driver.NewDriver(fx.driver.ID(), fx.driver.UserID(), "DL-12345")
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, fx.driver.ID()).Return(freeDriver, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignVehicleCommandHandler(factory)
	_, err = handler.Handle(ctx, fx.cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrConflict)
	require.ErrorIs(t, err, driver.ErrNoAssignedVehicle)
	driverRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "VehicleRepository")
	uow.AssertNotCalled(t, "NotificationRepository")
	uow.AssertNotCalled(t, "ActivityLogRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestUnassignVehicleCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	fx := newUnassignFixture(t)

	driverRepo := new(MockDriverRepository)
	vehicleRepo := new(MockVehicleRepository)
	userRepo := new(MockUserRepository)
	notificationRepo := new(MockNotificationRepository)
	activityRepo := new(MockActivityLogRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DriverRepository").Return(driverRepo).Once(),
		driverRepo.On("GetForUpdate", ctx, fx.driver.ID()).Return(fx.driver, nil).Once(),
		uow.On("VehicleRepository").Return(vehicleRepo).Once(),
		vehicleRepo.On("Get", ctx, fx.vehicle.ID()).Return(fx.vehicle, nil).Once(),
		driverRepo.On("Update", ctx, mock.AnythingOfType("*driver.Driver")).Return(nil).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		userRepo.On("Get", ctx, fx.driver.UserID()).Return(fx.user, nil).Once(),
		uow.On("NotificationRepository").Return(notificationRepo).Once(),
		notificationRepo.On("Add", ctx, mock.AnythingOfType("*notification.Notification")).Return(nil).Once(),
		uow.On("ActivityLogRepository").Return(activityRepo).Once(),
		activityRepo.On("Add", ctx, mock.AnythingOfType("*activity.Entry")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAssignmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUnassignVehicleCommandHandler(factory)
	_, err := handler.Handle(ctx, fx.cmd)

	require.Error(t, err)
	require.EqualError(t, err, "commit error")
}
