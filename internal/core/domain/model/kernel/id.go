package kernel

import (
	"strconv"

	"fleetadmin/internal/pkg/errs"
)

// MinIDValue is the smallest identifier value the database sequences produce.
const MinIDValue int64 = 1

// ErrIDIsNotConstructed indicates that an ID was not properly initialized through
// the NewID constructor. This error is returned when validating a zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID")

// ID is a value object that represents a database-assigned integer identifier.
// It wraps an int64 sequence value to provide domain-specific behavior and ensure
// immutability. ID is used as the identifier for entities and aggregates
// throughout the domain model.
//
// The zero value of ID is invalid and must be constructed using NewID with a
// positive value, typically one produced by a database identity column.
//
// ID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // handle error
//	}
//
//	// Use as entity identifier
//	type Vehicle struct {
//	    ID kernel.ID
//	    // other fields...
//	}
type ID struct {
	value int64
}

// NewID creates an ID from a positive integer value.
// Returns an error if the value is below MinIDValue; zero and negative values
// never identify a stored row.
//
// Example:
//
//	driverID, err := kernel.NewID(7)
//	if err != nil {
//	    return fmt.Errorf("invalid driver ID: %w", err)
//	}
func NewID(value int64) (ID, error) {
	if value < MinIDValue {
		return ID{}, errs.NewValueIsOutOfRangeError("id", value, MinIDValue, int64(1<<62))
	}
	return ID{value: value}, nil
}

// Value returns the underlying integer value of the ID.
// This is typically used when mapping the identifier to storage or transport.
func (i ID) Value() int64 {
	return i.value
}

// String returns the decimal string representation of the ID.
// For a zero value ID this returns "0".
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}

// IsEqual compares two IDs for equality.
// Returns true if both IDs represent the same value, false otherwise.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Validate checks if the ID is properly constructed.
// Returns ErrIDIsNotConstructed if the ID is a zero value.
//
// This method is useful for validating domain objects during construction
// or when receiving identifiers from external sources.
func (i ID) Validate() error {
	if i.value == 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}
