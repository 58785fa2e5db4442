// Package applicationrepo provides data transfer objects and mapping functions for
// job application persistence. This package implements the repository pattern for the
// application domain aggregate, handling the conversion between domain entities and
// database representations.
package applicationrepo

import (
	"time"

	"fleetadmin/internal/core/domain/model/application"
	"fleetadmin/internal/core/domain/model/kernel"
)

// ApplicationDTO represents the database structure for persisting job application aggregates.
// Status is stored in its string form so the stored values read naturally in SQL.
type ApplicationDTO struct {
	ID              int64     `gorm:"primaryKey"`
	VacancyID       int64     `gorm:"not null;index"`
	UserID          int64     `gorm:"not null;index"`
	LicenseNumber   string    `gorm:"type:varchar(64);not null"`
	ResumePath      *string   `gorm:"type:varchar(512)"`
	Status          string    `gorm:"type:varchar(32);not null"`
	ApplicationDate time.Time `gorm:"not null"`
}

// TableName specifies the database table name for application entities.
// Overrides GORM's default naming convention to use "applications".
func (ApplicationDTO) TableName() string {
	return "applications"
}

// fromDomain converts an application domain aggregate to its database representation.
func fromDomain(application *application.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:              application.ID().Value(),
		VacancyID:       application.VacancyID().Value(),
		UserID:          application.UserID().Value(),
		LicenseNumber:   application.LicenseNumber(),
		ResumePath:      application.ResumePath(),
		Status:          application.Status().String(),
		ApplicationDate: application.ApplicationDate(),
	}
}

// toDomain converts a database DTO to an application domain aggregate.
func toDomain(dto ApplicationDTO) (*application.Application, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	vacancyID, err := kernel.NewID(dto.VacancyID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}

	status, err := application.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return application.RestoreApplication(
		id,
		vacancyID,
		userID,
		dto.LicenseNumber,
		dto.ResumePath,
		status,
		dto.ApplicationDate,
	)
}
