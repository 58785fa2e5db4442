// Package userrepo provides data transfer objects and mapping functions for user persistence.
// This package implements the repository pattern for the user domain aggregate, handling
// the conversion between domain entities and database representations.
package userrepo

import (
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
type UserDTO struct {
	ID            int64  `gorm:"primaryKey"`
	FirstName     string `gorm:"type:varchar(255);not null"`
	LastName      string `gorm:"type:varchar(255);not null"`
	Email         string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Password      string `gorm:"type:varchar(255);not null"`
	ContactNumber string `gorm:"type:varchar(64)"`
	Address       string `gorm:"type:varchar(512)"`
}

// TableName specifies the database table name for user entities.
// Overrides GORM's default naming convention to use "users" instead of "user_dtos".
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(user *user.User) UserDTO {
	return UserDTO{
		ID:            user.ID().Value(),
		FirstName:     user.FirstName(),
		LastName:      user.LastName(),
		Email:         user.Email(),
		Password:      user.Password(),
		ContactNumber: user.ContactNumber(),
		Address:       user.Address(),
	}
}

// toDomain converts a database DTO to a user domain aggregate.
func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.Password,
		dto.ContactNumber,
		dto.Address,
	)
}
