package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleetadmin/internal/core/domain/model/activity"
	"fleetadmin/internal/core/domain/model/application"
)

// ChangeApplicationStatusCommandHandler orchestrates the job application review.
// Locks the application row, writes the new status, and delivers the applicant
// notification and the activity log entry within a single transaction.
//
// Any valid status may replace any other valid status; re-submitting the
// current status still produces the notification and log entry, matching the
// reviewer's explicit action.
type ChangeApplicationStatusCommandHandler struct {
	uowFactory WorkflowUoWFactory
}

// NewChangeApplicationStatusCommandHandler creates a handler for application review operations.
func NewChangeApplicationStatusCommandHandler(uowFactory WorkflowUoWFactory) ChangeApplicationStatusCommandHandler {
	return ChangeApplicationStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
// Returns the application carrying the new status.
func (h ChangeApplicationStatusCommandHandler) Handle(
	ctx context.Context,
	command ChangeApplicationStatusCommand,
) (*application.Application, error) {
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

	applicationRepo := uow.ApplicationRepository()

	app, err := applicationRepo.GetForUpdate(ctx, command.ApplicationID())
	if err != nil {
		return nil, err
	}

	if err = app.ChangeStatus(command.Status()); err != nil {
		return nil, err
	}

	if err = applicationRepo.Update(ctx, app); err != nil {
		return nil, err
	}

	vac, err := uow.VacancyRepository().Get(ctx, app.VacancyID())
	if err != nil {
		return nil, err
	}

	usr, err := uow.UserRepository().Get(ctx, app.UserID())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if err = NewNotificationDispatcher(uow.NotificationRepository()).Dispatch(
		ctx,
		usr.ID(),
		fmt.Sprintf("Your application for '%s' has been %s.", vac.Title(), strings.ToLower(app.Status().String())),
		now,
	); err != nil {
		return nil, err
	}

	if err = NewActivityLogger(uow.ActivityLogRepository()).Log(
		ctx,
		command.ActingUserID(),
		activity.ActionApplicationProcessed,
		fmt.Sprintf("Application for %s - Status changed to %s", usr.FullName(), app.Status()),
		now,
	); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return app, nil
}
