package model

import "time"

// StudySchedule is a personal study plan entry owned by a single
// user, as stored in the `study_schedules` table.  Times are kept
// as "HH:MM" strings since the entry describes a wall-clock plan,
// not an absolute instant.
type StudySchedule struct {
	ID              uint64    // study_schedules.id
	UserID          uint64    // study_schedules.user_id
	Title           string    // study_schedules.title
	Subject         string    // study_schedules.subject
	StartTime       string    // study_schedules.start_time ("HH:MM")
	EndTime         string    // study_schedules.end_time ("HH:MM")
	Date            time.Time // study_schedules.date (DATE)
	ReminderEnabled bool      // study_schedules.reminder_enabled
	CreatedAt       time.Time // study_schedules.created_at
}
