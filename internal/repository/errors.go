// Package repository defines error types that are reused across
// multiple repositories. These sentinel values allow higher layers
// such as handlers to distinguish between different failure
// scenarios: validation failures, business conflicts surfaced by the
// database's unique indexes, and authorization problems.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation
// on a resource they do not own. Handlers should translate this
// into an HTTP 403 response.
var ErrForbidden = errors.New("forbidden")

// ErrEmailExists is returned when registering with an email that is
// already taken (unique index on users.email).
var ErrEmailExists = errors.New("email already exists")

// ErrSeatTaken is returned when the unique index on
// (booking_date, shift, seat_number) rejects a booking insert:
// another user holds that seat for that shift and date. Handlers
// should translate this into an HTTP 409 response.
var ErrSeatTaken = errors.New("seat already taken")

// ErrShiftAlreadyBooked is returned when the unique index on
// (booking_date, shift, user_id) rejects a booking insert: the user
// already holds a seat for that shift and date. Handlers should
// translate this into an HTTP 409 response.
var ErrShiftAlreadyBooked = errors.New("shift already booked by user")

// ErrAdmissionNotFound is returned when a user has no admission on
// record yet.
var ErrAdmissionNotFound = errors.New("admission not found")

// ErrAlreadyCheckedIn is returned when a user attempts to open a
// second attendance row for the same shift and date.
var ErrAlreadyCheckedIn = errors.New("already checked in")

// ErrNoOpenAttendance is returned when checking out without an open
// attendance row.
var ErrNoOpenAttendance = errors.New("no open attendance")
