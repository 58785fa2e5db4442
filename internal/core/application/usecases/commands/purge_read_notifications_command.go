package commands

import (
	"errors"
	"time"

	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

var (
	ErrPurgeReadNotificationsCommandIsNotConstructed = errors.New(
		"PurgeReadNotificationsCommand must be created via NewPurgeReadNotificationsCommand constructor",
	)
	// ErrCutoffIsRequired is returned when the purge cutoff time is missing.
	ErrCutoffIsRequired = errs.NewValueIsRequiredError("cutoff")
)

// PurgeReadNotificationsCommand represents a retention sweep over the
// notifications table: read notifications created before the cutoff are
// removed. Unread notifications are never touched regardless of age.
type PurgeReadNotificationsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeReadNotificationsCommand creates a command to purge read
// notifications created before the given cutoff.
func NewPurgeReadNotificationsCommand(cutoff time.Time) (PurgeReadNotificationsCommand, error) {
	command := PurgeReadNotificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return PurgeReadNotificationsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeReadNotificationsCommandIsNotConstructed if validation fails.
func (c PurgeReadNotificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeReadNotificationsCommandIsNotConstructed)
}

// Cutoff returns the purge cutoff time.
func (c PurgeReadNotificationsCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *PurgeReadNotificationsCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff
	return nil
}
