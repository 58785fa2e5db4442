// Package notificationrepo provides data transfer objects and mapping functions for
// notification persistence. Notification identifiers are assigned by the database
// on insert; the domain constructor deliberately leaves them zero.
package notificationrepo

import (
	"time"

	"fleetadmin/internal/core/domain/model/notification"
)

// NotificationDTO represents the database structure for persisting notifications.
type NotificationDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index"`
	Message     string    `gorm:"type:text;not null"`
	IsRead      bool      `gorm:"not null;default:false"`
	CreatedDate time.Time `gorm:"not null"`
}

// TableName specifies the database table name for notification entities.
func (NotificationDTO) TableName() string {
	return "notifications"
}

// fromDomain converts a notification to its database representation.
// A zero domain ID maps to zero, letting the database assign the key.
func fromDomain(notification *notification.Notification) NotificationDTO {
	return NotificationDTO{
		ID:          notification.ID().Value(),
		UserID:      notification.UserID().Value(),
		Message:     notification.Message(),
		IsRead:      notification.IsRead(),
		CreatedDate: notification.CreatedDate(),
	}
}
