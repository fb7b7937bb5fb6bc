// Package repository defines error types that are reused across the
// repositories. These sentinel values allow the handler layer to
// distinguish between failure scenarios and map them to the right
// HTTP status without parsing driver error strings everywhere.
package repository

import "errors"

// ErrUsernameExists is returned when registration collides with an
// existing username. Handlers translate this into an HTTP 400 with
// the duplicate-username message.
var ErrUsernameExists = errors.New("username already exists")

// ErrVenueNotFound is returned when an operation references a venue
// id that does not exist. Handlers translate this into HTTP 404.
var ErrVenueNotFound = errors.New("venue not found")

// ErrVenueBooked is returned when a booking is attempted on a venue
// whose is_booked flag is already set, including the case where a
// concurrent transaction won the conditional update. Handlers
// translate this into HTTP 400.
var ErrVenueBooked = errors.New("venue already booked")
