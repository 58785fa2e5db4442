// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fleetadmin/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// DriverRepoFactory provides access to the driver repository within a transaction.
	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	// VehicleRepoFactory provides access to the vehicle repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// ApplicationRepoFactory provides access to the application repository within a transaction.
	ApplicationRepoFactory interface {
		ApplicationRepository() ports.ApplicationRepository
	}

	// VacancyRepoFactory provides access to the vacancy repository within a transaction.
	VacancyRepoFactory interface {
		VacancyRepository() ports.VacancyRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// ActivityLogRepoFactory provides access to the activity log repository within a transaction.
	ActivityLogRepoFactory interface {
		ActivityLogRepository() ports.ActivityLogRepository
	}

	// AssignmentUoW manages transactions for vehicle assignment operations.
	// Covers the driver and vehicle rows under mutation plus the user lookup
	// and the notification and activity side effects written alongside them.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   driverRepo := uow.DriverRepository()
	//   vehicleRepo := uow.VehicleRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	AssignmentUoW interface {
		TxManager
		DriverRepoFactory
		VehicleRepoFactory
		UserRepoFactory
		NotificationRepoFactory
		ActivityLogRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// WorkflowUoW manages transactions for job application review operations.
	// Covers the application row under mutation plus the vacancy and user
	// lookups and the notification and activity side effects.
	WorkflowUoW interface {
		TxManager
		ApplicationRepoFactory
		VacancyRepoFactory
		UserRepoFactory
		NotificationRepoFactory
		ActivityLogRepoFactory
	}

	// WorkflowUoWFactory creates new workflow unit of work instances.
	WorkflowUoWFactory interface {
		Create() WorkflowUoW
	}

	// RemovalUoW manages transactions for user removal.
	// Covers the user row plus every dependent table the cascade touches.
	RemovalUoW interface {
		TxManager
		UserRepoFactory
		DriverRepoFactory
		ApplicationRepoFactory
		NotificationRepoFactory
		ActivityLogRepoFactory
	}

	// RemovalUoWFactory creates new removal unit of work instances.
	RemovalUoWFactory interface {
		Create() RemovalUoW
	}

	// NotificationUoW manages transactions for notification-only operations:
	// marking a user's inbox read and purging aged read notifications.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
