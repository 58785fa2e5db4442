package commands

import (
	"context"
)

// PurgeReadNotificationsCommandHandler runs the notification retention sweep.
// Deletes read notifications older than the command's cutoff and reports how
// many were removed.
type PurgeReadNotificationsCommandHandler struct {
	uowFactory NotificationUoWFactory
}

// NewPurgeReadNotificationsCommandHandler creates a handler for retention sweeps.
func NewPurgeReadNotificationsCommandHandler(uowFactory NotificationUoWFactory) PurgeReadNotificationsCommandHandler {
	return PurgeReadNotificationsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the purge command and returns the number of notifications removed.
func (h PurgeReadNotificationsCommandHandler) Handle(
	ctx context.Context,
	command PurgeReadNotificationsCommand,
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

	purged, err := uow.NotificationRepository().DeleteReadOlderThan(ctx, command.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
