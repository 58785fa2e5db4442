package commands

import (
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var ErrMarkNotificationsReadCommandIsNotConstructed = errors.New(
	"MarkNotificationsReadCommand must be created via NewMarkNotificationsReadCommand constructor",
)

// MarkNotificationsReadCommand represents a user acknowledging their inbox:
// every unread notification addressed to the user is marked read. Read
// notifications become eligible for the retention sweep once aged.
type MarkNotificationsReadCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewMarkNotificationsReadCommand creates a command to mark a user's inbox read.
func NewMarkNotificationsReadCommand(userID kernel.ID) (MarkNotificationsReadCommand, error) {
	command := MarkNotificationsReadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setUserID(userID); err != nil {
		return MarkNotificationsReadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMarkNotificationsReadCommandIsNotConstructed if validation fails.
func (c MarkNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationsReadCommandIsNotConstructed)
}

// UserID returns the identifier of the user whose inbox is acknowledged.
func (c MarkNotificationsReadCommand) UserID() kernel.ID {
	return c.userID
}

func (c *MarkNotificationsReadCommand) setUserID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
