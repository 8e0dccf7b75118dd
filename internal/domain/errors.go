package domain

import "errors"

// Sentinel errors shared by repositories, services and controllers.
var (
	// ErrNotFound is returned when an id or natural key does not resolve to a row.
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a field is missing or malformed.
	ErrValidation = errors.New("validation failed")
	// ErrConstraintViolation is returned when a foreign key references a missing parent row.
	ErrConstraintViolation = errors.New("constraint violation")
)
