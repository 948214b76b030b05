package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource (destination, session) does not exist.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. blank comment text, unknown mode, malformed visitor series).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrNoSelection is returned by controller operations that need a selected
// destination when none is selected.
// Handlers should map this to HTTP 409 Conflict.
var ErrNoSelection = errors.New("no destination selected")
