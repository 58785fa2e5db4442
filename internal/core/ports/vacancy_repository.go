package ports

import (
	"context"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/core/domain/model/vacancy"
)

// VacancyRepository defines the persistence contract for vacancy aggregates.
type VacancyRepository interface {
	// Add persists a new vacancy aggregate to storage.
	Add(ctx context.Context, vacancy *vacancy.Vacancy) error

	// Get retrieves a vacancy aggregate by its unique identifier.
	// Returns an error wrapping errs.ErrObjectNotFound if no such vacancy exists.
	Get(ctx context.Context, id kernel.ID) (*vacancy.Vacancy, error)
}
