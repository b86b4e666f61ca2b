package model

import "errors"

var (
	// ErrNotFound is returned when an entity does not exist or a collection is empty
	// where emptiness is treated as absence.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the caller is not entitled to the entity
	// or presented wrong credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrBadRequest is returned when a request body is missing or is not a JSON object.
	ErrBadRequest = errors.New("data not provided or not json")
	// ErrInvalidData is returned when a field has the wrong representation or fails validation.
	ErrInvalidData = errors.New("invalid data")
	// ErrAlreadyExists is returned on unique constraint violations.
	ErrAlreadyExists = errors.New("already exists")
)
