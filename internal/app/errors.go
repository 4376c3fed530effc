package app

import "errors"

// Shared service-boundary errors. Handlers map these onto the HTTP taxonomy
// (400/401/403/404); anything else becomes a generic 500.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)
