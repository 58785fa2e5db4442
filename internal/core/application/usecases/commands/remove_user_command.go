package commands

import (
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

var (
	ErrRemoveUserCommandIsNotConstructed = errors.New(
		"RemoveUserCommand must be created via NewRemoveUserCommand constructor",
	)
	// ErrCannotRemoveSelf is returned when a user tries to remove their own
	// account; the removal would orphan the activity entry recording it.
	ErrCannotRemoveSelf = errs.NewConflictError("cannot remove own account")
)

// RemoveUserCommand represents a request to remove a user account together
// with everything it owns: driver profile, job applications, notifications,
// and activity entries. Removal is refused while the user's driver profile
// still holds a vehicle.
type RemoveUserCommand struct { //nolint:recvcheck //using for validation
	actingUserID kernel.ID
	userID       kernel.ID

	guard guard.ConstructorGuard
}

// NewRemoveUserCommand creates a command to remove a user account.
// The acting user must differ from the target user.
func NewRemoveUserCommand(actingUserID, userID kernel.ID) (RemoveUserCommand, error) {
	command := RemoveUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingUserID(actingUserID),
		command.setUserID(userID),
	); err != nil {
		return RemoveUserCommand{}, err
	}

	if actingUserID.IsEqual(userID) {
		return RemoveUserCommand{}, ErrCannotRemoveSelf
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveUserCommandIsNotConstructed if validation fails.
func (c RemoveUserCommand) Validate() error {
	return c.guard.Validate(ErrRemoveUserCommandIsNotConstructed)
}

// ActingUserID returns the identifier of the user performing the removal.
func (c RemoveUserCommand) ActingUserID() kernel.ID {
	return c.actingUserID
}

// UserID returns the identifier of the account being removed.
func (c RemoveUserCommand) UserID() kernel.ID {
	return c.userID
}

func (c *RemoveUserCommand) setActingUserID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingUserID = id
	return nil
}

func (c *RemoveUserCommand) setUserID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.userID = id
	return nil
}
