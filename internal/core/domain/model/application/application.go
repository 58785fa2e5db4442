package application

import (
	"errors"
	"time"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

// Domain errors for job application operations.
var (
	// ErrLicenseNumberIsRequired is returned when attempting to create an application without a license number.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("licenseNumber")
	// ErrApplicationDateIsRequired is returned when attempting to create an application without a submission date.
	ErrApplicationDateIsRequired = errs.NewValueIsRequiredError("applicationDate")
	// ErrApplicationIsNotConstructed is returned when using an improperly initialized Application.
	ErrApplicationIsNotConstructed = errors.New("Application must be created via NewApplication constructor")
)

// Application represents a job application submitted by a user for a vacancy.
// It is the aggregate root of the review workflow: reviewers move the
// application between Pending, Accepted, and Rejected, and every status write
// produces a notification to the applicant plus an activity log entry, all
// committed in the same transaction by the use case layer.
type Application struct {
	id              kernel.ID
	vacancyID       kernel.ID
	userID          kernel.ID
	licenseNumber   string
	resumePath      *string
	status          Status
	applicationDate time.Time
	guard           guard.ConstructorGuard
}

// NewApplication creates a newly submitted Application in Pending status.
func NewApplication(
	id, vacancyID, userID kernel.ID,
	licenseNumber string,
	resumePath *string,
	applicationDate time.Time,
) (*Application, error) {
	return RestoreApplication(id, vacancyID, userID, licenseNumber, resumePath, Pending, applicationDate)
}

// RestoreApplication reconstructs an Application aggregate from persistent storage.
func RestoreApplication(
	id, vacancyID, userID kernel.ID,
	licenseNumber string,
	resumePath *string,
	status Status,
	applicationDate time.Time,
) (*Application, error) {
	app := &Application{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		app.setID(id),
		app.setVacancyID(vacancyID),
		app.setUserID(userID),
		app.setLicenseNumber(licenseNumber),
		app.setStatus(status),
		app.setApplicationDate(applicationDate),
	); err != nil {
		return nil, err
	}

	if resumePath != nil {
		path := *resumePath
		app.resumePath = &path
	}

	return app, nil
}

// Validate ensures the Application instance was properly constructed.
func (a *Application) Validate() error {
	if a == nil {
		return ErrApplicationIsNotConstructed
	}
	return a.guard.Validate(ErrApplicationIsNotConstructed)
}

// IsEqual compares two applications by their unique identifiers.
func (a *Application) IsEqual(other *Application) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the application's unique identifier.
func (a *Application) ID() kernel.ID {
	return a.id
}

// VacancyID returns the identifier of the vacancy applied for.
func (a *Application) VacancyID() kernel.ID {
	return a.vacancyID
}

// UserID returns the identifier of the applicant's user account.
func (a *Application) UserID() kernel.ID {
	return a.userID
}

// LicenseNumber returns the license number stated on the application.
func (a *Application) LicenseNumber() string {
	return a.licenseNumber
}

// ResumePath returns the stored resume file path.
// Returns nil if no resume was attached.
func (a *Application) ResumePath() *string {
	if a.resumePath == nil {
		return nil
	}
	path := *a.resumePath
	return &path
}

// Status returns the current review status of the application.
func (a *Application) Status() Status {
	return a.status
}

// ApplicationDate returns the submission timestamp.
func (a *Application) ApplicationDate() time.Time {
	return a.applicationDate
}

// ChangeStatus writes a new review status.
//
// Any valid status may replace any other valid status, including writing the
// value the application already holds; reviewers may flip decisions or return
// an application to Pending. Invalid statuses are rejected without changing
// state.
func (a *Application) ChangeStatus(status Status) error {
	return a.setStatus(status)
}

func (a *Application) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Application) setVacancyID(vacancyID kernel.ID) error {
	if err := vacancyID.Validate(); err != nil {
		return err
	}
	a.vacancyID = vacancyID
	return nil
}

func (a *Application) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	a.userID = userID
	return nil
}

func (a *Application) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}
	a.licenseNumber = licenseNumber
	return nil
}

func (a *Application) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}

func (a *Application) setApplicationDate(applicationDate time.Time) error {
	if applicationDate.IsZero() {
		return ErrApplicationDateIsRequired
	}
	a.applicationDate = applicationDate
	return nil
}
