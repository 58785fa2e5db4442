// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/application"
	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/guard"
)

var (
	ErrGetApplicationsQueryIsNotConstructed = errors.New(
		"GetApplicationsQuery must be created via NewGetApplicationsQuery constructor",
	)
)

// GetApplicationsQuery retrieves every job application in the system together
// with the applicant's name and the vacancy title, newest submissions first.
//
// Example:
//
//	query := NewGetApplicationsQuery()
//	handler := NewGetApplicationsQueryHandler(db)
//
//	applications, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve applications: %w", err)
//	}
//
//	for _, app := range applications {
//	    fmt.Printf("%s applied for %s: %s\n", app.ApplicantName, app.VacancyTitle, app.Status)
//	}
type GetApplicationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetApplicationsQuery creates a query to retrieve all job applications.
// This is a parameterless query that fetches the complete application list.
func NewGetApplicationsQuery() GetApplicationsQuery {
	return GetApplicationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetApplicationsQueryIsNotConstructed if validation fails.
func (q GetApplicationsQuery) Validate() error {
	return q.guard.Validate(ErrGetApplicationsQueryIsNotConstructed)
}

// GetApplicationsQueryResponse represents a job application in the read model.
// Contains the applicant and vacancy context needed for the review screen.
type GetApplicationsQueryResponse struct {
	ID              kernel.ID
	ApplicantName   string
	VacancyTitle    string
	LicenseNumber   string
	Status          application.Status
	ApplicationDate time.Time
}
