package applicationrepo

import (
	"context"
	"errors"

	"fleetadmin/internal/core/domain/model/application"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormApplicationRepository implements ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db *gorm.DB
}

// NewGormApplicationRepository creates a new GORM application repository.
func NewGormApplicationRepository(db *gorm.DB) *GormApplicationRepository {
	return &GormApplicationRepository{db: db}
}

// Add saves a new application to the database.
func (r *GormApplicationRepository) Add(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing application to the database.
func (r *GormApplicationRepository) Update(ctx context.Context, aggregate *application.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Explicit column map instead of Save, which inserts when the row is gone.
	result := r.db.WithContext(ctx).
		Model(&ApplicationDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"vacancy_id":       dto.VacancyID,
			"user_id":          dto.UserID,
			"license_number":   dto.LicenseNumber,
			"resume_path":      dto.ResumePath,
			"status":           dto.Status,
			"application_date": dto.ApplicationDate,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("application", aggregate.ID().Value())
	}

	return nil
}

// Get retrieves an application by ID.
func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.ID) (*application.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", id.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves an application by ID holding a row-level lock until
// the surrounding transaction completes.
func (r *GormApplicationRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*application.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", id.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteByUserID removes all applications submitted by the given user.
func (r *GormApplicationRepository) DeleteByUserID(ctx context.Context, userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&ApplicationDTO{}, "user_id = ?", userID.Value()).Error
}
