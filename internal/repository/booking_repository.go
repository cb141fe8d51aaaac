package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/library-seat-booking/internal/model"
)

// BookingRepo provides access to the 'seat_bookings' table.  The
// table carries two unique indexes among 'booked' rows:
//
//   uniq_seat (booking_date, shift, seat_number)
//   uniq_user (booking_date, shift, user_id)
//
// InsertBooked relies on them for conflict-freedom: the insert is
// the atomic "book it if still free" step, so two users racing for
// the same seat can never both succeed regardless of what their
// earlier availability reads said.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Index names referenced when translating duplicate-key errors.
const (
	seatIndex = "uniq_seat"
	userIndex = "uniq_user"
)

const bookingColumns = `id,user_id,shift,seat_number,status,booking_date,created_at`

// InsertBooked atomically inserts a 'booked' row for (user, shift,
// seat, date).  A duplicate on the seat index maps to ErrSeatTaken;
// a duplicate on the user index maps to ErrShiftAlreadyBooked.  On
// success the generated ID is populated on the record.
func (r *BookingRepo) InsertBooked(ctx context.Context, b *model.SeatBooking) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO seat_bookings (user_id, shift, seat_number, status, booking_date) VALUES (?,?,?,?,?)",
		b.UserID, b.Shift, b.SeatNumber, model.BookingBooked, b.BookingDate.Format("2006-01-02"))
	if err != nil {
		switch {
		case duplicateOnKey(err, seatIndex):
			return ErrSeatTaken
		case duplicateOnKey(err, userIndex):
			return ErrShiftAlreadyBooked
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	b.Status = model.BookingBooked
	return nil
}

// ListBookedByDate returns every 'booked' row for the given calendar
// date across all users, ordered by shift then seat.
func (r *BookingRepo) ListBookedByDate(ctx context.Context, day string) ([]model.SeatBooking, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM seat_bookings
		 WHERE booking_date=? AND status=?
		 ORDER BY shift, seat_number`,
		day, model.BookingBooked)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

// ListBookedByDateAndUser returns the user's 'booked' rows for the
// given calendar date.
func (r *BookingRepo) ListBookedByDateAndUser(ctx context.Context, day string, userID uint64) ([]model.SeatBooking, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+bookingColumns+` FROM seat_bookings
		 WHERE booking_date=? AND status=? AND user_id=?
		 ORDER BY shift, seat_number`,
		day, model.BookingBooked, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]model.SeatBooking, error) {
	out := []model.SeatBooking{}
	for rows.Next() {
		var b model.SeatBooking
		if err := rows.Scan(&b.ID, &b.UserID, &b.Shift, &b.SeatNumber, &b.Status, &b.BookingDate, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
