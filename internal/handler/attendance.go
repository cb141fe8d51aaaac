package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-booking/internal/model"
	"github.com/iliyamo/library-seat-booking/internal/repository"
	"github.com/iliyamo/library-seat-booking/internal/shift"
)

// AttendanceHandler serves shift check-in and check-out.  A user may
// check in once per (shift, date) and must have a booked seat for
// that shift today; the seat requirement keeps walk-ins without a
// reservation out of the attendance log.
type AttendanceHandler struct {
	Attendance *repository.AttendanceRepo
	Bookings   *repository.BookingRepo
}

func NewAttendanceHandler(attendance *repository.AttendanceRepo, bookings *repository.BookingRepo) *AttendanceHandler {
	if attendance == nil || bookings == nil {
		panic("nil repository passed to NewAttendanceHandler")
	}
	return &AttendanceHandler{Attendance: attendance, Bookings: bookings}
}

type attendanceReq struct {
	Shift string `json:"shift"`
}

// attendanceView is the JSON shape of an attendance row.
type attendanceView struct {
	ID           uint64  `json:"id"`
	Shift        string  `json:"shift"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
}

func toAttendanceView(a model.Attendance) attendanceView {
	v := attendanceView{
		ID:    a.ID,
		Shift: a.Shift,
		Date:  a.Date.Format(dateLayout),
	}
	if a.CheckInTime != nil {
		s := a.CheckInTime.Format(time.RFC3339)
		v.CheckInTime = &s
	}
	if a.CheckOutTime != nil {
		s := a.CheckOutTime.Format(time.RFC3339)
		v.CheckOutTime = &s
	}
	return v
}

// CheckIn handles POST /v1/attendance/check-in.
func (h *AttendanceHandler) CheckIn(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req attendanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Shift = strings.ToLower(strings.TrimSpace(req.Shift))
	if !shift.Valid(req.Shift) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	day := today()
	mine, err := h.Bookings.ListBookedByDateAndUser(ctx, day, userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	hasSeat := false
	for _, b := range mine {
		if b.Shift == req.Shift {
			hasSeat = true
			break
		}
	}
	if !hasSeat {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "no seat booked for this shift today"})
	}

	now := time.Now().UTC()
	id, err := h.Attendance.CheckIn(ctx, userID, req.Shift, day, now)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyCheckedIn) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "already checked in"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check-in failed"})
	}

	in := now.Format(time.RFC3339)
	return c.JSON(http.StatusCreated, echo.Map{
		"attendance": attendanceView{ID: id, Shift: req.Shift, Date: day, CheckInTime: &in},
	})
}

// CheckOut handles POST /v1/attendance/check-out.  It closes today's
// open row for the shift.
func (h *AttendanceHandler) CheckOut(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req attendanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Shift = strings.ToLower(strings.TrimSpace(req.Shift))
	if !shift.Valid(req.Shift) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	now := time.Now().UTC()
	if err := h.Attendance.CheckOut(ctx, userID, req.Shift, today(), now); err != nil {
		if errors.Is(err, repository.ErrNoOpenAttendance) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "no open check-in for this shift"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "check-out failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"checked_out_at": now.Format(time.RFC3339)})
}

// History handles GET /v1/attendance.  Optional ?from= and ?to=
// bound the range; the default is the last 30 days.
func (h *AttendanceHandler) History(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	to, ok := parseDay(c.QueryParam("to"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid to date"})
	}
	from := c.QueryParam("from")
	if from == "" {
		from = time.Now().UTC().AddDate(0, 0, -30).Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, from); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid from date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Attendance.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	views := make([]attendanceView, 0, len(items))
	for _, a := range items {
		views = append(views, toAttendanceView(a))
	}
	return c.JSON(http.StatusOK, echo.Map{"from": from, "to": to, "items": views})
}
