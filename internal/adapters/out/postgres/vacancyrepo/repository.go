package vacancyrepo

import (
	"context"
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/vacancy"
	"fleetadmin/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormVacancyRepository implements VacancyRepository using GORM.
type GormVacancyRepository struct {
	db *gorm.DB
}

// NewGormVacancyRepository creates a new GORM vacancy repository.
func NewGormVacancyRepository(db *gorm.DB) *GormVacancyRepository {
	return &GormVacancyRepository{db: db}
}

// Add saves a new vacancy to the database.
func (r *GormVacancyRepository) Add(ctx context.Context, aggregate *vacancy.Vacancy) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a vacancy by ID.
func (r *GormVacancyRepository) Get(ctx context.Context, id kernel.ID) (*vacancy.Vacancy, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VacancyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vacancy", id.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}
