package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-booking/internal/model"
	"github.com/iliyamo/library-seat-booking/internal/repository"
	"github.com/iliyamo/library-seat-booking/internal/shift"
)

// AdminHandler bundles the staff-facing views: who is seated today,
// pending admissions, open tickets and attendance per shift.  Every
// route behind it requires the ADMIN role.
type AdminHandler struct {
	AdmissionRepo  *repository.AdmissionRepo
	BookingRepo    *repository.BookingRepo
	AttendanceRepo *repository.AttendanceRepo
	HelpRepo       *repository.HelpRepo
}

func NewAdminHandler(admissions *repository.AdmissionRepo, bookings *repository.BookingRepo,
	attendance *repository.AttendanceRepo, help *repository.HelpRepo) *AdminHandler {
	if admissions == nil || bookings == nil || attendance == nil || help == nil {
		panic("nil repository passed to NewAdminHandler")
	}
	return &AdminHandler{AdmissionRepo: admissions, BookingRepo: bookings, AttendanceRepo: attendance, HelpRepo: help}
}

// Bookings handles GET /v1/admin/bookings.  Optional ?date= selects
// the day, defaulting to today.
func (h *AdminHandler) Bookings(c echo.Context) error {
	day, ok := parseDay(c.QueryParam("date"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.BookingRepo.ListBookedByDate(ctx, day)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	type adminBookingView struct {
		ID         uint64 `json:"id"`
		UserID     uint64 `json:"user_id"`
		Shift      string `json:"shift"`
		SeatNumber string `json:"seat_number"`
	}
	views := make([]adminBookingView, 0, len(items))
	for _, b := range items {
		views = append(views, adminBookingView{
			ID:         b.ID,
			UserID:     b.UserID,
			Shift:      b.Shift,
			SeatNumber: b.SeatNumber,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"date": day, "items": views})
}

// Admissions handles GET /v1/admin/admissions.  Optional ?status=
// filters to pending or paid.
func (h *AdminHandler) Admissions(c echo.Context) error {
	status := strings.ToLower(strings.TrimSpace(c.QueryParam("status")))
	switch status {
	case "", model.PaymentPending, model.PaymentPaid:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be pending or paid"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.AdmissionRepo.ListByStatus(ctx, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	views := make([]admissionView, 0, len(items))
	for _, a := range items {
		views = append(views, toAdmissionView(a))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": views})
}

// Attendance handles GET /v1/admin/attendance.  It returns the
// attendance log for one shift on one day; ?shift= is required,
// ?date= defaults to today.
func (h *AdminHandler) Attendance(c echo.Context) error {
	shiftID := strings.ToLower(strings.TrimSpace(c.QueryParam("shift")))
	if !shift.Valid(shiftID) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift"})
	}
	day, ok := parseDay(c.QueryParam("date"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.AttendanceRepo.ListByDateShift(ctx, day, shiftID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	type adminAttendanceView struct {
		attendanceView
		UserID uint64 `json:"user_id"`
	}
	views := make([]adminAttendanceView, 0, len(items))
	for _, a := range items {
		views = append(views, adminAttendanceView{attendanceView: toAttendanceView(a), UserID: a.UserID})
	}
	return c.JSON(http.StatusOK, echo.Map{"date": day, "shift": shiftID, "items": views})
}

// HelpRequests handles GET /v1/admin/help.  Optional ?status=
// filters by ticket status.
func (h *AdminHandler) HelpRequests(c echo.Context) error {
	status := strings.ToLower(strings.TrimSpace(c.QueryParam("status")))
	switch status {
	case "", model.HelpOpen, model.HelpInProgress, model.HelpResolved:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.HelpRepo.ListAll(ctx, status)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	type adminHelpView struct {
		helpView
		UserID uint64 `json:"user_id"`
	}
	views := make([]adminHelpView, 0, len(items))
	for _, t := range items {
		views = append(views, adminHelpView{helpView: toHelpView(t), UserID: t.UserID})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": views})
}

type respondReq struct {
	Response string `json:"response"`
	Status   string `json:"status"` // in_progress | resolved
}

// Respond handles POST /v1/admin/help/:id/respond.  It attaches a
// response and advances the ticket status.
func (h *AdminHandler) Respond(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request id"})
	}

	var req respondReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Response = strings.TrimSpace(req.Response)
	req.Status = strings.ToLower(strings.TrimSpace(req.Status))
	if req.Response == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "response required"})
	}
	switch req.Status {
	case model.HelpInProgress, model.HelpResolved:
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be in_progress or resolved"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.HelpRepo.Respond(ctx, id, req.Response, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "respond failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"id": id, "status": req.Status})
}
