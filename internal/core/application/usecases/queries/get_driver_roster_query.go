package queries

import (
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var (
	ErrGetDriverRosterQueryIsNotConstructed = errors.New(
		"GetDriverRosterQuery must be created via NewGetDriverRosterQuery constructor",
	)
)

// GetDriverRosterQuery retrieves the full driver roster: every driver profile
// with the driver's name, license number, and the currently assigned vehicle
// if any.
//
// Example:
//
//	query := NewGetDriverRosterQuery()
//	handler := NewGetDriverRosterQueryHandler(db)
//
//	roster, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve roster: %w", err)
//	}
//
//	for _, d := range roster {
//	    fmt.Printf("%s (%s)\n", d.FullName, d.LicenseNumber)
//	}
type GetDriverRosterQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDriverRosterQuery creates a query to retrieve the driver roster.
// This is a parameterless query that fetches the complete driver list.
func NewGetDriverRosterQuery() GetDriverRosterQuery {
	return GetDriverRosterQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetDriverRosterQueryIsNotConstructed if validation fails.
func (q GetDriverRosterQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRosterQueryIsNotConstructed)
}

// GetDriverRosterQueryResponse represents one driver in the roster read model.
// VehicleDetails and WarehouseName are nil for drivers with no assigned vehicle.
type GetDriverRosterQueryResponse struct {
	ID             kernel.ID
	UserID         kernel.ID
	FullName       string
	LicenseNumber  string
	VehicleDetails *string
	WarehouseName  *string
}
