package activityrepo

import (
	"context"

	"fleetadmin/internal/core/domain/model/activity"
	"fleetadmin/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormActivityLogRepository implements ActivityLogRepository using GORM.
// The log is append-only; entries are never updated once written.
type GormActivityLogRepository struct {
	db *gorm.DB
}

// NewGormActivityLogRepository creates a new GORM activity log repository.
func NewGormActivityLogRepository(db *gorm.DB) *GormActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

// Add saves a new activity log entry to the database. The database assigns
// the identifier on insert.
func (r *GormActivityLogRepository) Add(ctx context.Context, entry *activity.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// DeleteByUserID removes all activity entries attributed to the given user.
func (r *GormActivityLogRepository) DeleteByUserID(ctx context.Context, userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&EntryDTO{}, "user_id = ?", userID.Value()).Error
}
