package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/library-seat-booking/internal/model"
)

// AttendanceRepo provides access to the 'attendance' table.  One
// row exists per (user, shift, date); check-in opens it, check-out
// stamps check_out_time.
type AttendanceRepo struct{ DB *sql.DB }

func NewAttendanceRepo(db *sql.DB) *AttendanceRepo { return &AttendanceRepo{DB: db} }

const attendanceColumns = `id,user_id,shift,check_in_time,check_out_time,date,created_at`

// CheckIn opens an attendance row for (user, shift, today).  The
// unique index on (date, shift, user_id) turns a second check-in
// into ErrAlreadyCheckedIn.
func (r *AttendanceRepo) CheckIn(ctx context.Context, userID uint64, shiftID, day string, at time.Time) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO attendance (user_id, shift, check_in_time, date) VALUES (?,?,?,?)",
		userID, shiftID, at, day)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrAlreadyCheckedIn
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// CheckOut stamps check_out_time on the user's open row for (shift,
// day).  ErrNoOpenAttendance is returned when there is nothing to
// close.
func (r *AttendanceRepo) CheckOut(ctx context.Context, userID uint64, shiftID, day string, at time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE attendance SET check_out_time=?
		 WHERE user_id=? AND shift=? AND date=? AND check_out_time IS NULL`,
		at, userID, shiftID, day)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoOpenAttendance
	}
	return nil
}

// ListByUserRange returns the user's attendance rows between the
// given dates (inclusive), newest first.
func (r *AttendanceRepo) ListByUserRange(ctx context.Context, userID uint64, from, to string) ([]model.Attendance, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance
		 WHERE user_id=? AND date BETWEEN ? AND ?
		 ORDER BY date DESC, shift`,
		userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttendance(rows)
}

// ListByDateShift returns every attendance row for (date, shift),
// used by the admin overview.
func (r *AttendanceRepo) ListByDateShift(ctx context.Context, day, shiftID string) ([]model.Attendance, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+attendanceColumns+` FROM attendance
		 WHERE date=? AND shift=?
		 ORDER BY check_in_time`,
		day, shiftID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanAttendance(rows)
}

func scanAttendance(rows *sql.Rows) ([]model.Attendance, error) {
	out := []model.Attendance{}
	for rows.Next() {
		var (
			a       model.Attendance
			in, out2 sql.NullTime
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.Shift, &in, &out2, &a.Date, &a.CreatedAt); err != nil {
			return nil, err
		}
		if in.Valid {
			a.CheckInTime = &in.Time
		}
		if out2.Valid {
			a.CheckOutTime = &out2.Time
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
