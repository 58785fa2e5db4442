// Package driverrepo provides data transfer objects and mapping functions for driver persistence.
// This package implements the repository pattern for the driver domain aggregate, handling
// the conversion between domain entities and database representations.
package driverrepo

import (
	"fleetadmin/internal/core/domain/model/driver"
	"fleetadmin/internal/core/domain/model/kernel"
)

// DriverDTO represents the database structure for persisting driver aggregates.
// The unique index on AssignedVehicleID enforces at the database level that a
// vehicle is held by at most one driver; NULL values do not collide.
type DriverDTO struct {
	ID                int64  `gorm:"primaryKey"`
	UserID            int64  `gorm:"not null;uniqueIndex"`
	LicenseNumber     string `gorm:"type:varchar(64);not null"`
	AssignedVehicleID *int64 `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for driver entities.
// Overrides GORM's default naming convention to use "drivers" instead of "driver_dtos".
func (DriverDTO) TableName() string {
	return "drivers"
}

// fromDomain converts a driver domain aggregate to its database representation.
func fromDomain(driver *driver.Driver) DriverDTO {
	var assignedVehicleID *int64
	if id := driver.AssignedVehicleID(); id != nil {
		raw := id.Value()
		assignedVehicleID = &raw
	}

	return DriverDTO{
		ID:                driver.ID().Value(),
		UserID:            driver.UserID().Value(),
		LicenseNumber:     driver.LicenseNumber(),
		AssignedVehicleID: assignedVehicleID,
	}
}

// toDomain converts a database DTO to a driver domain aggregate.
func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.NewID(dto.UserID)
	if err != nil {
		return nil, err
	}

	var assignedVehicleID *kernel.ID
	if dto.AssignedVehicleID != nil {
		vehicleID, vehicleErr := kernel.NewID(*dto.AssignedVehicleID)
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		assignedVehicleID = &vehicleID
	}

	return driver.RestoreDriver(id, userID, dto.LicenseNumber, assignedVehicleID)
}
