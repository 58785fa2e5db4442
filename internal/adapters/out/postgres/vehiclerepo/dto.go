// Package vehiclerepo provides data transfer objects and mapping functions for vehicle persistence.
// This package implements the repository pattern for the vehicle domain aggregate, handling
// the conversion between domain entities and database representations.
package vehiclerepo

import (
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/vehicle"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
type VehicleDTO struct {
	ID           int64  `gorm:"primaryKey"`
	Make         string `gorm:"type:varchar(255);not null"`
	Model        string `gorm:"type:varchar(255);not null"`
	LicensePlate string `gorm:"type:varchar(32);not null;uniqueIndex"`
	WarehouseID  int64  `gorm:"not null;index"`
}

// TableName specifies the database table name for vehicle entities.
// Overrides GORM's default naming convention to use "vehicles" instead of "vehicle_dtos".
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle domain aggregate to its database representation.
func fromDomain(vehicle *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:           vehicle.ID().Value(),
		Make:         vehicle.Make(),
		Model:        vehicle.Model(),
		LicensePlate: vehicle.LicensePlate(),
		WarehouseID:  vehicle.WarehouseID().Value(),
	}
}

// toDomain converts a database DTO to a vehicle domain aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.NewID(dto.WarehouseID)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, dto.Make, dto.Model, dto.LicensePlate, warehouseID)
}
