package queries

import (
	"context"

	"fleetadmin/internal/core/domain/model/application"
	"fleetadmin/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetApplicationsQueryHandler retrieves job applications from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetApplicationsQueryHandler struct {
	db *gorm.DB
}

// NewGetApplicationsQueryHandler creates a handler for application list queries.
// Requires a GORM database connection for query execution.
func NewGetApplicationsQueryHandler(db *gorm.DB) GetApplicationsQueryHandler {
	return GetApplicationsQueryHandler{db: db}
}

// Handle executes the query to retrieve all job applications.
// Returns application read models joined with applicant names and vacancy
// titles, newest submissions first.
func (h GetApplicationsQueryHandler) Handle(
	ctx context.Context,
	query GetApplicationsQuery,
) ([]GetApplicationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	applications := make([]GetApplicationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			a.id,
			u.first_name,
			u.last_name,
			v.title,
			a.license_number,
			a.status,
			a.application_date
		FROM applications a
		JOIN users u ON u.id = a.user_id
		JOIN vacancies v ON v.id = a.vacancy_id
		ORDER BY a.application_date DESC, a.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var appResp GetApplicationsQueryResponse
		var id int64
		var firstName, lastName, status string

		err = rows.Scan(
			&id,
			&firstName,
			&lastName,
			&appResp.VacancyTitle,
			&appResp.LicenseNumber,
			&status,
			&appResp.ApplicationDate,
		)
		if err != nil {
			return nil, err
		}

		appID, idErr := kernel.NewID(id)
		if idErr != nil {
			return nil, idErr
		}
		appResp.ID = appID

		parsedStatus, statusErr := application.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		appResp.Status = parsedStatus

		appResp.ApplicantName = firstName + " " + lastName
		applications = append(applications, appResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}
