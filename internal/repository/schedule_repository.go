package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/library-seat-booking/internal/model"
)

// ScheduleRepo provides access to the 'study_schedules' table.
type ScheduleRepo struct{ DB *sql.DB }

func NewScheduleRepo(db *sql.DB) *ScheduleRepo { return &ScheduleRepo{DB: db} }

// Create inserts a study schedule entry and populates its ID.
func (r *ScheduleRepo) Create(ctx context.Context, s *model.StudySchedule) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO study_schedules
			(user_id, title, subject, start_time, end_time, date, reminder_enabled)
		 VALUES (?,?,?,?,?,?,?)`,
		s.UserID, s.Title, s.Subject, s.StartTime, s.EndTime, s.Date.Format("2006-01-02"), s.ReminderEnabled)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// ListByUserDate returns the user's schedule entries for one date,
// ordered by start time.
func (r *ScheduleRepo) ListByUserDate(ctx context.Context, userID uint64, day string) ([]model.StudySchedule, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id,user_id,title,subject,start_time,end_time,date,reminder_enabled,created_at
		 FROM study_schedules WHERE user_id=? AND date=? ORDER BY start_time`,
		userID, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.StudySchedule{}
	for rows.Next() {
		var s model.StudySchedule
		if err := rows.Scan(&s.ID, &s.UserID, &s.Title, &s.Subject, &s.StartTime, &s.EndTime,
			&s.Date, &s.ReminderEnabled, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Delete removes a schedule entry.  Ownership is enforced here: a
// row that exists but belongs to another user yields ErrForbidden,
// a missing row yields sql.ErrNoRows.
func (r *ScheduleRepo) Delete(ctx context.Context, id, userID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM study_schedules WHERE id=? AND user_id=?", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	var owner uint64
	err = r.DB.QueryRowContext(ctx,
		"SELECT user_id FROM study_schedules WHERE id=? LIMIT 1", id).Scan(&owner)
	if err != nil {
		return err // sql.ErrNoRows when the entry never existed
	}
	return ErrForbidden
}
