package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// checklist or checklist item does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. blank destination, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrConfiguration is returned when a lookup key has no entry in the static
// template tables, such as a weather band outside hot, mild and cold.
// The call fails before any items are produced.
var ErrConfiguration = errors.New("configuration error")
