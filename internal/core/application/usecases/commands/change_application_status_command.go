package commands

import (
	"errors"

	"fleetadmin/internal/core/domain/model/application"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var ErrChangeApplicationStatusCommandIsNotConstructed = errors.New(
	"ChangeApplicationStatusCommand must be created via NewChangeApplicationStatusCommand constructor",
)

// ChangeApplicationStatusCommand represents a reviewer's decision on a job
// application. The target status is parsed from its string form at
// construction, so a request naming an unknown status is rejected before any
// transaction is opened and leaves no side effects.
//
// Example:
//
//	cmd, err := NewChangeApplicationStatusCommand(actingUserID, applicationID, "Accepted")
//	if err != nil {
//	    return fmt.Errorf("invalid review request: %w", err)
//	}
//	handler := NewChangeApplicationStatusCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("review failed: %w", err)
//	}
type ChangeApplicationStatusCommand struct { //nolint:recvcheck //using for validation
	actingUserID  kernel.ID
	applicationID kernel.ID
	status        application.Status

	guard guard.ConstructorGuard
}

// NewChangeApplicationStatusCommand creates a command to write a review decision.
// The status string must be one of the stored values "Pending", "Accepted",
// or "Rejected"; comparison is exact.
func NewChangeApplicationStatusCommand(
	actingUserID, applicationID kernel.ID,
	status string,
) (ChangeApplicationStatusCommand, error) {
	command := ChangeApplicationStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActingUserID(actingUserID),
		command.setApplicationID(applicationID),
		command.setStatus(status),
	); err != nil {
		return ChangeApplicationStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeApplicationStatusCommandIsNotConstructed if validation fails.
func (c ChangeApplicationStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeApplicationStatusCommandIsNotConstructed)
}

// ActingUserID returns the identifier of the reviewing user.
func (c ChangeApplicationStatusCommand) ActingUserID() kernel.ID {
	return c.actingUserID
}

// ApplicationID returns the target application's identifier.
func (c ChangeApplicationStatusCommand) ApplicationID() kernel.ID {
	return c.applicationID
}

// Status returns the parsed target status.
func (c ChangeApplicationStatusCommand) Status() application.Status {
	return c.status
}

func (c *ChangeApplicationStatusCommand) setActingUserID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.actingUserID = id
	return nil
}

func (c *ChangeApplicationStatusCommand) setApplicationID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.applicationID = id
	return nil
}

func (c *ChangeApplicationStatusCommand) setStatus(status string) error {
	parsed, err := application.StatusFromString(status)
	if err != nil {
		return err
	}

	c.status = parsed
	return nil
}
