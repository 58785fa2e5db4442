package activity

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

// Action types recorded by the administration use cases.
const (
	// ActionVehicleAssigned is recorded when a vehicle is assigned to a driver.
	ActionVehicleAssigned = "Vehicle Assigned"
	// ActionVehicleUnassigned is recorded when a vehicle assignment is released.
	ActionVehicleUnassigned = "Vehicle Unassigned"
	// ActionApplicationProcessed is recorded when a job application status changes.
	ActionApplicationProcessed = "Application Processed"
	// ActionUserRemoved is recorded when a user account is removed.
	ActionUserRemoved = "User Removed"
)

// Domain errors for activity log operations.
var (
	// ErrActionTypeIsRequired is returned when attempting to create an entry without an action type.
	ErrActionTypeIsRequired = errs.NewValueIsRequiredError("actionType")
	// ErrDescriptionIsRequired is returned when attempting to create an entry without a description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrTimestampIsRequired is returned when attempting to create an entry without a timestamp.
	ErrTimestampIsRequired = errs.NewValueIsRequiredError("timestamp")
	// ErrEntryIsNotConstructed is returned when using an improperly initialized Entry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")
)

// Entry represents a single append-only activity log record attributed to the
// acting user. Entries are written in the same transaction as the mutation
// they describe and are never updated afterwards.
//
// A freshly created entry has no identifier yet; the identifier is assigned
// by storage on insert and present on restored instances.
type Entry struct {
	id          kernel.ID
	userID      kernel.ID
	actionType  string
	description string
	timestamp   time.Time
	guard       guard.ConstructorGuard
}

// NewEntry creates an activity log Entry attributed to the given user.
// The identifier is left unset; storage assigns it on insert.
func NewEntry(userID kernel.ID, actionType, description string, timestamp time.Time) (*Entry, error) {
	entry := &Entry{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setUserID(userID),
		entry.setActionType(actionType),
		entry.setDescription(description),
		entry.setTimestamp(timestamp),
	); err != nil {
		return nil, err
	}

	return entry, nil
}

// RestoreEntry reconstructs an Entry from persistent storage.
func RestoreEntry(id, userID kernel.ID, actionType, description string, timestamp time.Time) (*Entry, error) {
	entry, err := NewEntry(userID, actionType, description, timestamp)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	entry.id = id
	return entry, nil
}

// Validate ensures the Entry instance was properly constructed.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's identifier.
// The zero ID means the entry has not been persisted yet.
func (e *Entry) ID() kernel.ID {
	return e.id
}

// UserID returns the identifier of the acting user.
func (e *Entry) UserID() kernel.ID {
	return e.userID
}

// ActionType returns the recorded action type.
func (e *Entry) ActionType() string {
	return e.actionType
}

// Description returns the human-readable description of the action.
func (e *Entry) Description() string {
	return e.description
}

// Timestamp returns the time the action was recorded.
func (e *Entry) Timestamp() time.Time {
	return e.timestamp
}

func (e *Entry) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	e.userID = userID
	return nil
}

func (e *Entry) setActionType(actionType string) error {
	if actionType == "" {
		return ErrActionTypeIsRequired
	}
	e.actionType = actionType
	return nil
}

func (e *Entry) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	e.description = description
	return nil
}

func (e *Entry) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return ErrTimestampIsRequired
	}
	e.timestamp = timestamp
	return nil
}
