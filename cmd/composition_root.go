package cmd

import (
	"fleetadmin/internal/adapters/out/postgres"
	"fleetadmin/internal/core/application/usecases/commands"
	"fleetadmin/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAssignVehicleCommandHandler() commands.AssignVehicleCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateUnassignVehicleCommandHandler() commands.UnassignVehicleCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUnassignVehicleCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeApplicationStatusCommandHandler() commands.ChangeApplicationStatusCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeApplicationStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateRemoveUserCommandHandler() commands.RemoveUserCommandHandler {
	var f commands.RemovalUoWFactory = FuncRemovalUoWFactory(func() commands.RemovalUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRemoveUserCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkNotificationsReadCommandHandler() commands.MarkNotificationsReadCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkNotificationsReadCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeReadNotificationsCommandHandler() commands.PurgeReadNotificationsCommandHandler {
	var f commands.NotificationUoWFactory = FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeReadNotificationsCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDriverRosterQueryHandler() queries.GetDriverRosterQueryHandler {
	return queries.NewGetDriverRosterQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetApplicationsQueryHandler() queries.GetApplicationsQueryHandler {
	return queries.NewGetApplicationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnreadNotificationsQueryHandler() queries.GetUnreadNotificationsQueryHandler {
	return queries.NewGetUnreadNotificationsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRecentActivityQueryHandler() queries.GetRecentActivityQueryHandler {
	return queries.NewGetRecentActivityQueryHandler(c.gormDB)
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}

type FuncRemovalUoWFactory func() commands.RemovalUoW

func (f FuncRemovalUoWFactory) Create() commands.RemovalUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}
