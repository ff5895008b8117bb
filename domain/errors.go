package domain

import "errors"

// Error taxonomy shared by every service. Services wrap these with context via
// fmt.Errorf("...: %w", Err...); the rest layer maps them to HTTP status codes.
// Existence is always checked before authorization, so callers never learn
// whether a nonexistent resource would have been forbidden.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)
