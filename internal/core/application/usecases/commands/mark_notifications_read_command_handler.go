package commands

import (
	"context"
)

// MarkNotificationsReadCommandHandler marks every unread notification of a
// user as read within a single transaction.
type MarkNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewMarkNotificationsReadCommandHandler creates a handler for inbox acknowledgement.
func NewMarkNotificationsReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationsReadCommandHandler {
	return MarkNotificationsReadCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgement command.
// Returns the number of notifications flipped to read.
func (h MarkNotificationsReadCommandHandler) Handle(
	ctx context.Context,
	command MarkNotificationsReadCommand,
) (int64, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	marked, err := uow.NotificationRepository().MarkAllRead(ctx, command.UserID())
	if err != nil {
		return 0, err
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return marked, nil
}
