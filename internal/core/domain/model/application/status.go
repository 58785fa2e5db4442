package application

import (
	"fmt"

	"fleetadmin/internal/pkg/errs"
)

// Status represents the review state of a job application.
//
// Every application starts as Pending. Any valid status may be written over
// any other valid status: reviewers may flip a decision or return an
// application to Pending, so the transition graph is intentionally permissive.
//
// Status is a value object that provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an application is submitted.
	// Applications in this status are waiting for a reviewer decision.
	Pending

	// Accepted indicates the application has been approved.
	Accepted

	// Rejected indicates the application has been declined.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "Pending",
		Accepted: "Accepted",
		Rejected: "Rejected",
	}
}

// StatusFromString parses a status from its persisted string representation.
// The comparison is exact; the stored values are "Pending", "Accepted", and
// "Rejected". Returns an error for any other input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Accepted, Rejected.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Pending", "Accepted", or "Rejected" for valid statuses and
// "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
