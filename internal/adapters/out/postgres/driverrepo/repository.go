package driverrepo

import (
	"context"
	"errors"

	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDriverRepository implements DriverRepository using GORM.
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GORM driver repository.
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Add saves a new driver to the database.
func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("driver", err)
		}
		return err
	}

	return nil
}

// Update saves an existing driver to the database, including the vehicle
// assignment link. The unique index on assigned_vehicle_id turns a racing
// double assignment into a conflict error here.
func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Explicit column map instead of Save: Save falls back to an insert when
	// the row does not exist, which would silently resurrect deleted drivers.
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"user_id":             dto.UserID,
			"license_number":      dto.LicenseNumber,
			"assigned_vehicle_id": dto.AssignedVehicleID,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("assignedVehicleId", result.Error)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver", aggregate.ID().Value())
	}

	return nil
}

// Get retrieves a driver by ID.
func (r *GormDriverRepository) Get(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetForUpdate retrieves a driver by ID holding a row-level lock until the
// surrounding transaction completes.
func (r *GormDriverRepository) GetForUpdate(ctx context.Context, id kernel.ID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("driver", id.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByUserID retrieves the driver profile backed by the given user account.
func (r *GormDriverRepository) GetByUserID(ctx context.Context, userID kernel.ID) (*driver.Driver, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userId", userID.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByAssignedVehicleID retrieves the driver currently holding the given
// vehicle. A not-found result means the vehicle is free.
func (r *GormDriverRepository) GetByAssignedVehicleID(ctx context.Context, vehicleID kernel.ID) (*driver.Driver, error) {
	if err := vehicleID.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).First(&dto, "assigned_vehicle_id = ?", vehicleID.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignedVehicleId", vehicleID.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the driver profile with the given ID. Deleting an absent
// driver is not an error.
func (r *GormDriverRepository) Delete(ctx context.Context, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).Delete(&DriverDTO{}, "id = ?", id.Value()).Error
}
