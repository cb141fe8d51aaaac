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
)

// ScheduleHandler serves personal study schedule entries.  Entries
// belong to a single user; listing and deletion are scoped to the
// caller.
type ScheduleHandler struct {
	Schedules *repository.ScheduleRepo
}

func NewScheduleHandler(schedules *repository.ScheduleRepo) *ScheduleHandler {
	if schedules == nil {
		panic("nil repository passed to NewScheduleHandler")
	}
	return &ScheduleHandler{Schedules: schedules}
}

type scheduleReq struct {
	Title           string `json:"title"`
	Subject         string `json:"subject"`
	StartTime       string `json:"start_time"` // "HH:MM"
	EndTime         string `json:"end_time"`   // "HH:MM"
	Date            string `json:"date"`       // "YYYY-MM-DD", defaults to today
	ReminderEnabled bool   `json:"reminder_enabled"`
}

type scheduleView struct {
	ID              uint64 `json:"id"`
	Title           string `json:"title"`
	Subject         string `json:"subject"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	Date            string `json:"date"`
	ReminderEnabled bool   `json:"reminder_enabled"`
}

func toScheduleView(s model.StudySchedule) scheduleView {
	return scheduleView{
		ID:              s.ID,
		Title:           s.Title,
		Subject:         s.Subject,
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		Date:            s.Date.Format(dateLayout),
		ReminderEnabled: s.ReminderEnabled,
	}
}

// validClock reports whether v is a well-formed "HH:MM" value.
func validClock(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil
}

// Create handles POST /v1/schedules.
func (h *ScheduleHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req scheduleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Subject = strings.TrimSpace(req.Subject)
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title required"})
	}
	if !validClock(req.StartTime) || !validClock(req.EndTime) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time and end_time must be HH:MM"})
	}
	if req.EndTime <= req.StartTime {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_time must be after start_time"})
	}
	day, ok := parseDay(req.Date)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}

	entry := &model.StudySchedule{
		UserID:          userID,
		Title:           req.Title,
		Subject:         req.Subject,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Date:            mustParseDay(day),
		ReminderEnabled: req.ReminderEnabled,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Schedules.Create(ctx, entry); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create schedule failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"schedule": toScheduleView(*entry)})
}

// List handles GET /v1/schedules.  Optional ?date= selects the day,
// defaulting to today.
func (h *ScheduleHandler) List(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	day, ok := parseDay(c.QueryParam("date"))
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	items, err := h.Schedules.ListByUserDate(ctx, userID, day)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	views := make([]scheduleView, 0, len(items))
	for _, s := range items {
		views = append(views, toScheduleView(s))
	}
	return c.JSON(http.StatusOK, echo.Map{"date": day, "items": views})
}

// Delete handles DELETE /v1/schedules/:id.
func (h *ScheduleHandler) Delete(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid schedule id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Schedules.Delete(ctx, id, userID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "schedule not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "not your schedule"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
