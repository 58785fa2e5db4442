// Package user provides the User aggregate for the fleet administration system.
// A User is the account behind every actor in the system; driver profiles,
// job applications, notifications, and activity entries all reference it.
package user
