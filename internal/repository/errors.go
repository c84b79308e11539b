// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios. For
// example, ErrNotFound indicates that a record with the requested
// identifier does not exist, while ErrUsernameExists signals that a
// create operation collided with the unique username constraint.
package repository

import "errors"

// ErrNotFound is returned when a read targets a record that does not
// exist (or, for sessions, one that has already expired). Handlers
// should translate this into an HTTP 404 response, or 401 for
// session lookups.
var ErrNotFound = errors.New("not found")

// ErrUsernameExists is returned when a user create operation fails the
// unique username constraint. The constraint in the database is the
// sole race-prevention mechanism; the repository does not pre-lock.
// Handlers should translate this into an HTTP 400 response.
var ErrUsernameExists = errors.New("username already exists")
