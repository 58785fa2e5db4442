// Package warehouserepo provides data transfer objects and mapping functions for warehouse persistence.
package warehouserepo

import (
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/warehouse"
)

// WarehouseDTO represents the database structure for persisting warehouse aggregates.
type WarehouseDTO struct {
	ID      int64  `gorm:"primaryKey"`
	Name    string `gorm:"type:varchar(255);not null"`
	Address string `gorm:"type:varchar(512)"`
}

// TableName specifies the database table name for warehouse entities.
func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// fromDomain converts a warehouse domain aggregate to its database representation.
func fromDomain(warehouse *warehouse.Warehouse) WarehouseDTO {
	return WarehouseDTO{
		ID:      warehouse.ID().Value(),
		Name:    warehouse.Name(),
		Address: warehouse.Address(),
	}
}

// toDomain converts a database DTO to a warehouse domain aggregate.
func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreWarehouse(id, dto.Name, dto.Address)
}
