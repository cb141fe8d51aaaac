// Package booking implements the seat-availability and conflict
// rules for a single booking day.  The checks here operate on rows
// already loaded from the database; the final word on contended
// seats belongs to the unique indexes on seat_bookings, which the
// repository surfaces as the same conflict errors.
package booking

import (
	"errors"

	"github.com/iliyamo/library-seat-booking/internal/model"
)

// ErrShiftAlreadyBooked is returned when the user already holds a
// booked seat for the target shift on the target date.  A user gets
// exactly one seat per shift per day.
var ErrShiftAlreadyBooked = errors.New("shift already booked by user")

// ErrSeatTaken is returned when another user already holds the
// target seat for the target shift on the target date.
var ErrSeatTaken = errors.New("seat already taken")

// Board is a read-only view of one day's booked seats, partitioned
// into everyone's rows and the current user's subset.  Build it from
// a fresh load; it holds no authoritative state of its own.
type Board struct {
	All  []model.SeatBooking // every 'booked' row for the day
	Mine []model.SeatBooking // the subset belonging to the current user
}

// NewBoard partitions the day's booked rows by owner.
func NewBoard(all []model.SeatBooking, userID uint64) Board {
	b := Board{All: all}
	for _, row := range all {
		if row.UserID == userID {
			b.Mine = append(b.Mine, row)
		}
	}
	return b
}

// SeatBooked reports whether anyone holds the given seat for the
// given shift.
func (b Board) SeatBooked(shiftID, seat string) bool {
	for _, row := range b.All {
		if row.Shift == shiftID && row.SeatNumber == seat && row.Status == model.BookingBooked {
			return true
		}
	}
	return false
}

// UserHasShift reports whether the current user already holds any
// seat for the given shift.
func (b Board) UserHasShift(shiftID string) bool {
	for _, row := range b.Mine {
		if row.Shift == shiftID && row.Status == model.BookingBooked {
			return true
		}
	}
	return false
}

// UserSeatForShift returns the seat the current user holds for the
// given shift, or "" when none is held.
func (b Board) UserSeatForShift(shiftID string) string {
	for _, row := range b.Mine {
		if row.Shift == shiftID && row.Status == model.BookingBooked {
			return row.SeatNumber
		}
	}
	return ""
}

// Check validates a seat selection against the board.  The
// shift-level rule is checked first: once a user holds a seat for a
// shift, every further selection for that shift is rejected, even
// the seat they already hold.
func (b Board) Check(shiftID, seat string) error {
	if b.UserHasShift(shiftID) {
		return ErrShiftAlreadyBooked
	}
	if b.SeatBooked(shiftID, seat) {
		return ErrSeatTaken
	}
	return nil
}
