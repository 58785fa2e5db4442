package queries

import (
	"context"
	"database/sql"
	"fmt"

	"fleetadmin/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetDriverRosterQueryHandler retrieves the driver roster from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetDriverRosterQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverRosterQueryHandler creates a handler for driver roster queries.
// Requires a GORM database connection for query execution.
func NewGetDriverRosterQueryHandler(db *gorm.DB) GetDriverRosterQueryHandler {
	return GetDriverRosterQueryHandler{db: db}
}

// Handle executes the query to retrieve the driver roster.
// Returns a slice of driver read models sorted by the driver's last name,
// with the assigned vehicle and its warehouse joined in where present.
func (h GetDriverRosterQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRosterQuery,
) ([]GetDriverRosterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roster := make([]GetDriverRosterQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.user_id,
			u.first_name,
			u.last_name,
			d.license_number,
			v.make,
			v.model,
			v.license_plate,
			w.name
		FROM drivers d
		JOIN users u ON u.id = d.user_id
		LEFT JOIN vehicles v ON v.id = d.assigned_vehicle_id
		LEFT JOIN warehouses w ON w.id = v.warehouse_id
		ORDER BY u.last_name, u.first_name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var driverResp GetDriverRosterQueryResponse
		var id, userID int64
		var firstName, lastName string
		var vehicleMake, vehicleModel, licensePlate, warehouseName sql.NullString

		err = rows.Scan(
			&id,
			&userID,
			&firstName,
			&lastName,
			&driverResp.LicenseNumber,
			&vehicleMake,
			&vehicleModel,
			&licensePlate,
			&warehouseName,
		)
		if err != nil {
			return nil, err
		}

		driverID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		driverResp.ID = driverID

		driverUserID, idErr := kernel.NewID(userID)
		if idErr != nil {
			return nil, idErr
		}
		driverResp.UserID = driverUserID

		driverResp.FullName = firstName + " " + lastName

		if vehicleMake.Valid {
			details := fmt.Sprintf("%s %s (%s)", vehicleMake.String, vehicleModel.String, licensePlate.String)
			driverResp.VehicleDetails = &details
		}
		if warehouseName.Valid {
			name := warehouseName.String
			driverResp.WarehouseName = &name
		}

		roster = append(roster, driverResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
