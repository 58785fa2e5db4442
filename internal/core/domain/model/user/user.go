package user

import (
	"errors"
	"fmt"
	"strings"

	"fleetadmin/internal/core/domain/model/kernel"
	"fleetadmin/internal/pkg/errs"
	"fleetadmin/internal/pkg/guard"
)

// Domain errors for user operations.
var (
	// ErrFirstNameIsRequired is returned when attempting to create a user without a first name.
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("firstName")
	// ErrLastNameIsRequired is returned when attempting to create a user without a last name.
	ErrLastNameIsRequired = errs.NewValueIsRequiredError("lastName")
	// ErrEmailIsRequired is returned when attempting to create a user without an email.
	ErrEmailIsRequired = errs.NewValueIsRequiredError("email")
	// ErrPasswordIsRequired is returned when attempting to create a user without a password.
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
	// ErrUserIsNotConstructed is returned when using an improperly initialized User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
)

// User represents an account in the fleet administration system.
// Every actor, whether an administrator, a driver, or an applicant, is backed
// by a User row; drivers additionally hold a Driver profile referencing it.
//
// Business rules:
//   - First name, last name, email, and password are required
//   - Email must contain an @ separator; uniqueness is enforced by storage
//   - Contact number and address are optional
type User struct {
	id            kernel.ID
	firstName     string
	lastName      string
	email         string
	password      string
	contactNumber string
	address       string
	guard         guard.ConstructorGuard
}

// NewUser creates a new User with the specified attributes.
// This is the only way to create a valid User instance; all required
// attributes are validated and errors are aggregated.
func NewUser(
	id kernel.ID,
	firstName, lastName, email, password, contactNumber, address string,
) (*User, error) {
	user := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		user.setID(id),
		user.setFirstName(firstName),
		user.setLastName(lastName),
		user.setEmail(email),
		user.setPassword(password),
	); err != nil {
		return nil, err
	}

	user.contactNumber = contactNumber
	user.address = address
	return user, nil
}

// RestoreUser reconstructs a User aggregate from persistent storage.
// The restored user behaves identically to one created through NewUser.
func RestoreUser(
	id kernel.ID,
	firstName, lastName, email, password, contactNumber, address string,
) (*User, error) {
	return NewUser(id, firstName, lastName, email, password, contactNumber, address)
}

// Validate ensures the User instance was properly constructed through NewUser.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by their unique identifiers.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.ID {
	return u.id
}

// FirstName returns the user's first name.
func (u *User) FirstName() string {
	return u.firstName
}

// LastName returns the user's last name.
func (u *User) LastName() string {
	return u.lastName
}

// FullName returns the display name used in notifications and activity entries.
// The format is "{FirstName} {LastName}".
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.firstName, u.lastName)
}

// Email returns the user's email address.
func (u *User) Email() string {
	return u.email
}

// Password returns the stored credential.
// Stored as provided; credential hardening is outside this model.
func (u *User) Password() string {
	return u.password
}

// ContactNumber returns the user's contact number. May be empty.
func (u *User) ContactNumber() string {
	return u.contactNumber
}

// Address returns the user's postal address. May be empty.
func (u *User) Address() string {
	return u.address
}

func (u *User) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setFirstName(firstName string) error {
	if firstName == "" {
		return ErrFirstNameIsRequired
	}
	u.firstName = firstName
	return nil
}

func (u *User) setLastName(lastName string) error {
	if lastName == "" {
		return ErrLastNameIsRequired
	}
	u.lastName = lastName
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	u.password = password
	return nil
}
