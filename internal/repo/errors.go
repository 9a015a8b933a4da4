package repo

import "errors"

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when an insert hits the users.email
	// unique constraint.
	ErrEmailTaken = errors.New("email already registered")
)
