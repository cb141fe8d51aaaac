package model

import "time"

// Attendance records a user's presence for one shift on one date.
// A row is opened on check-in and closed when check_out_time is set.
type Attendance struct {
	ID           uint64     // attendance.id
	UserID       uint64     // attendance.user_id
	Shift        string     // attendance.shift
	CheckInTime  *time.Time // attendance.check_in_time (nullable)
	CheckOutTime *time.Time // attendance.check_out_time (nullable)
	Date         time.Time  // attendance.date (DATE)
	CreatedAt    time.Time  // attendance.created_at
}
