package notificationrepo

import (
	"context"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/notification"

	"gorm.io/gorm"
)

// GormNotificationRepository implements NotificationRepository using GORM.
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GORM notification repository.
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// Add saves a new notification to the database. The database assigns the
// identifier on insert.
func (r *GormNotificationRepository) Add(ctx context.Context, aggregate *notification.Notification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// MarkAllRead marks every unread notification of the given user as read.
// Returns the number of notifications updated.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, userID kernel.ID) (int64, error) {
	if err := userID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).
		Model(&NotificationDTO{}).
		Where("user_id = ? AND is_read = FALSE", userID.Value()).
		Update("is_read", true)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// DeleteReadOlderThan removes read notifications created before the cutoff.
// Unread notifications are never removed regardless of age.
func (r *GormNotificationRepository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_read = TRUE AND created_date < ?", cutoff).
		Delete(&NotificationDTO{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

// DeleteByUserID removes all notifications addressed to the given user.
func (r *GormNotificationRepository) DeleteByUserID(ctx context.Context, userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&NotificationDTO{}, "user_id = ?", userID.Value()).Error
}
