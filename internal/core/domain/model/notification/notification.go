package notification

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

// Domain errors for notification operations.
var (
	// ErrMessageIsRequired is returned when attempting to create a notification without a message.
	ErrMessageIsRequired = errs.NewValueIsRequiredError("message")
	// ErrCreatedDateIsRequired is returned when attempting to create a notification without a creation date.
	ErrCreatedDateIsRequired = errs.NewValueIsRequiredError("createdDate")
	// ErrNotificationIsNotConstructed is returned when using an improperly initialized Notification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")
)

// Notification represents a message delivered to a user's inbox.
// Notifications are created unread as a side effect of assignment and
// application workflow operations, marked read when the user views them,
// and eventually purged by the retention job once read and aged out.
//
// A freshly created notification has no identifier yet; the identifier is
// assigned by storage on insert and present on restored instances.
type Notification struct {
	id          kernel.ID
	userID      kernel.ID
	message     string
	isRead      bool
	createdDate time.Time
	guard       guard.ConstructorGuard
}

// NewNotification creates an unread Notification addressed to the given user.
// The identifier is left unset; storage assigns it on insert.
func NewNotification(userID kernel.ID, message string, createdDate time.Time) (*Notification, error) {
	notification := &Notification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		notification.setUserID(userID),
		notification.setMessage(message),
		notification.setCreatedDate(createdDate),
	); err != nil {
		return nil, err
	}

	return notification, nil
}

// RestoreNotification reconstructs a Notification from persistent storage.
func RestoreNotification(
	id, userID kernel.ID,
	message string,
	isRead bool,
	createdDate time.Time,
) (*Notification, error) {
	notification, err := NewNotification(userID, message, createdDate)
	if err != nil {
		return nil, err
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	notification.id = id
	notification.isRead = isRead
	return notification, nil
}

// Validate ensures the Notification instance was properly constructed.
func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

// ID returns the notification's identifier.
// The zero ID means the notification has not been persisted yet.
func (n *Notification) ID() kernel.ID {
	return n.id
}

// UserID returns the identifier of the addressed user.
func (n *Notification) UserID() kernel.ID {
	return n.userID
}

// Message returns the notification text.
func (n *Notification) Message() string {
	return n.message
}

// IsRead reports whether the user has seen the notification.
func (n *Notification) IsRead() bool {
	return n.isRead
}

// CreatedDate returns the creation timestamp.
func (n *Notification) CreatedDate() time.Time {
	return n.createdDate
}

// MarkRead marks the notification as seen by the user.
// Marking an already read notification is a no-op.
func (n *Notification) MarkRead() {
	n.isRead = true
}

func (n *Notification) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	n.userID = userID
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return ErrMessageIsRequired
	}
	n.message = message
	return nil
}

func (n *Notification) setCreatedDate(createdDate time.Time) error {
	if createdDate.IsZero() {
		return ErrCreatedDateIsRequired
	}
	n.createdDate = createdDate
	return nil
}
