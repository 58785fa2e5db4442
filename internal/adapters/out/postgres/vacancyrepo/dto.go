// Package vacancyrepo provides data transfer objects and mapping functions for vacancy persistence.
package vacancyrepo

import (
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/vacancy"
)

// VacancyDTO represents the database structure for persisting vacancy aggregates.
type VacancyDTO struct {
	ID          int64  `gorm:"primaryKey"`
	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	WarehouseID int64  `gorm:"not null;index"`
}

// TableName specifies the database table name for vacancy entities.
func (VacancyDTO) TableName() string {
	return "vacancies"
}

// fromDomain converts a vacancy domain aggregate to its database representation.
func fromDomain(vacancy *vacancy.Vacancy) VacancyDTO {
	return VacancyDTO{
		ID:          vacancy.ID().Value(),
		Title:       vacancy.Title(),
		Description: vacancy.Description(),
		WarehouseID: vacancy.WarehouseID().Value(),
	}
}

// toDomain converts a database DTO to a vacancy domain aggregate.
func toDomain(dto VacancyDTO) (*vacancy.Vacancy, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.NewID(dto.WarehouseID)
	if err != nil {
		return nil, err
	}

	return vacancy.RestoreVacancy(id, dto.Title, dto.Description, warehouseID)
}
