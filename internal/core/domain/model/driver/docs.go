// Package driver provides the Driver aggregate for the fleet administration
// system. The Driver profile owns the driver-to-vehicle assignment link and
// enforces the "one vehicle per driver" half of the reciprocal one-to-one
// assignment invariant; the "one driver per vehicle" half is checked by the
// assignment use case and backed by a unique constraint in storage.
package driver
