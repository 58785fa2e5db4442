package vacancy

import (
	"errors"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

// Domain errors for vacancy operations.
var (
	// ErrTitleIsRequired is returned when attempting to create a vacancy without a title.
	ErrTitleIsRequired = errs.NewValueIsRequiredError("title")
	// ErrVacancyIsNotConstructed is returned when using an improperly initialized Vacancy.
	ErrVacancyIsNotConstructed = errors.New("Vacancy must be created via NewVacancy constructor")
)

// Vacancy represents an open driver position at a warehouse.
// Job applications reference a vacancy; its title appears in the notification
// sent to the applicant when the application is processed.
type Vacancy struct {
	id          kernel.ID
	title       string
	description string
	warehouseID kernel.ID
	guard       guard.ConstructorGuard
}

// NewVacancy creates a new Vacancy with the specified attributes.
func NewVacancy(id kernel.ID, title, description string, warehouseID kernel.ID) (*Vacancy, error) {
	vacancy := &Vacancy{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		vacancy.setID(id),
		vacancy.setTitle(title),
		vacancy.setWarehouseID(warehouseID),
	); err != nil {
		return nil, err
	}

	vacancy.description = description
	return vacancy, nil
}

// RestoreVacancy reconstructs a Vacancy aggregate from persistent storage.
func RestoreVacancy(id kernel.ID, title, description string, warehouseID kernel.ID) (*Vacancy, error) {
	return NewVacancy(id, title, description, warehouseID)
}

// Validate ensures the Vacancy instance was properly constructed through NewVacancy.
func (v *Vacancy) Validate() error {
	if v == nil {
		return ErrVacancyIsNotConstructed
	}
	return v.guard.Validate(ErrVacancyIsNotConstructed)
}

// IsEqual compares two vacancies by their unique identifiers.
func (v *Vacancy) IsEqual(other *Vacancy) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vacancy's unique identifier.
func (v *Vacancy) ID() kernel.ID {
	return v.id
}

// Title returns the vacancy's title.
func (v *Vacancy) Title() string {
	return v.title
}

// Description returns the vacancy's description. May be empty.
func (v *Vacancy) Description() string {
	return v.description
}

// WarehouseID returns the identifier of the warehouse the vacancy is opened for.
func (v *Vacancy) WarehouseID() kernel.ID {
	return v.warehouseID
}

func (v *Vacancy) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vacancy) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}
	v.title = title
	return nil
}

func (v *Vacancy) setWarehouseID(warehouseID kernel.ID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	v.warehouseID = warehouseID
	return nil
}
