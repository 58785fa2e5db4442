// Package activityrepo provides data transfer objects and mapping functions for
// activity log persistence. Entry identifiers are assigned by the database on
// insert; the domain constructor deliberately leaves them zero.
package activityrepo

import (
	"time"

	"fleetadmin/internal/core/domain/model/activity"
)

// EntryDTO represents the database structure for persisting activity log entries.
type EntryDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	UserID      int64     `gorm:"not null;index"`
	ActionType  string    `gorm:"type:varchar(64);not null"`
	Description string    `gorm:"type:text;not null"`
	Timestamp   time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for activity log entries.
func (EntryDTO) TableName() string {
	return "activity_log"
}

// fromDomain converts an activity log entry to its database representation.
// A zero domain ID maps to zero, letting the database assign the key.
func fromDomain(entry *activity.Entry) EntryDTO {
	return EntryDTO{
		ID:          entry.ID().Value(),
		UserID:      entry.UserID().Value(),
		ActionType:  entry.ActionType(),
		Description: entry.Description(),
		Timestamp:   entry.Timestamp(),
	}
}
