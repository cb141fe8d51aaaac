package model

import "time"

// SeatBooking assigns one seat to one user for one shift on one
// calendar date, as stored in the `seat_bookings` table.  The table
// carries two uniqueness guarantees enforced by the database:
// at most one 'booked' row per (booking_date, shift, seat_number),
// and at most one 'booked' row per (booking_date, shift, user_id).
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – user holding the seat.
//  Shift      – shift id (morning, noon, evening, night).
//  SeatNumber – seat label (S1..S50).
//  Status     – 'booked' or 'available'.
//  BookingDate – calendar date the booking applies to.
//  CreatedAt  – timestamp of creation.
type SeatBooking struct {
	ID          uint64    // seat_bookings.id
	UserID      uint64    // seat_bookings.user_id
	Shift       string    // seat_bookings.shift
	SeatNumber  string    // seat_bookings.seat_number
	Status      string    // seat_bookings.status
	BookingDate time.Time // seat_bookings.booking_date (DATE)
	CreatedAt   time.Time // seat_bookings.created_at
}

// Booking status values stored on seat_bookings.status.
const (
	BookingBooked    = "booked"
	BookingAvailable = "available"
)
