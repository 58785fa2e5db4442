// Package application provides the job application aggregate and its review
// status workflow for the fleet administration system.
//
// The package includes:
//   - Application: The aggregate root representing a submitted application
//   - Status: A value object for the Pending / Accepted / Rejected workflow
//
// Key business rules:
//   - Applications are submitted in Pending status
//   - Any valid status may be written over any other valid status
//   - Status changes are paired with applicant notifications and activity
//     log entries by the use case layer
package application
