package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-booking/internal/booking"
	"github.com/iliyamo/library-seat-booking/internal/model"
	"github.com/iliyamo/library-seat-booking/internal/queue"
	"github.com/iliyamo/library-seat-booking/internal/repository"
	queue_publisher "github.com/iliyamo/library-seat-booking/internal/service"
	"github.com/iliyamo/library-seat-booking/internal/shift"
)

// admissionSource is the slice of AdmissionRepo the booking flow
// needs.  Kept narrow so tests can stand in for the database.
type admissionSource interface {
	LatestByUser(ctx context.Context, userID uint64) (model.Admission, error)
}

// bookingStore is the slice of BookingRepo the booking flow needs.
type bookingStore interface {
	InsertBooked(ctx context.Context, b *model.SeatBooking) error
	ListBookedByDate(ctx context.Context, day string) ([]model.SeatBooking, error)
	ListBookedByDateAndUser(ctx context.Context, day string, userID uint64) ([]model.SeatBooking, error)
}

// BookingHandler coordinates seat booking for students.  Each
// request loads the user's latest admission and the day's booked
// rows fresh from the database; there is no authoritative
// client-side state.  Conflicts are checked against that snapshot
// first for specific error messages, then enforced for real by the
// unique indexes behind BookingRepo.InsertBooked, so a race between
// two users for the same seat resolves to exactly one winner.
type BookingHandler struct {
	Admissions admissionSource
	Bookings   bookingStore
}

// NewBookingHandler constructs a BookingHandler.  All dependencies
// must be non-nil.
func NewBookingHandler(admissions admissionSource, bookings bookingStore) *BookingHandler {
	if admissions == nil || bookings == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Admissions: admissions, Bookings: bookings}
}

// seatView is one seat on the availability board.
type seatView struct {
	SeatNumber string `json:"seat_number"`
	Booked     bool   `json:"booked"`
	Mine       bool   `json:"mine"`
}

// bookingView is the JSON shape of a seat booking row.
type bookingView struct {
	ID          uint64 `json:"id"`
	Shift       string `json:"shift"`
	SeatNumber  string `json:"seat_number"`
	BookingDate string `json:"booking_date"`
}

func toBookingView(b model.SeatBooking) bookingView {
	return bookingView{
		ID:          b.ID,
		Shift:       b.Shift,
		SeatNumber:  b.SeatNumber,
		BookingDate: b.BookingDate.Format(dateLayout),
	}
}

// Board handles GET /v1/booking/board.  It returns the caller's
// admission state, the shifts they may book (their admission's
// selected shifts), today's seat availability for the requested
// shift and the caller's own bookings for today.  The optional
// ?shift= parameter selects the shift to render; it defaults to the
// first shift on the admission.
func (h *BookingHandler) Board(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	adm, err := h.Admissions.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAdmissionNotFound) {
			return c.JSON(http.StatusOK, echo.Map{
				"admission": nil,
				"message":   "complete your admission and payment to book seats",
			})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	selected := splitShifts(adm.SelectedShifts)
	shiftID := c.QueryParam("shift")
	if shiftID == "" && len(selected) > 0 {
		shiftID = selected[0]
	}
	if shiftID != "" && !shift.Valid(shiftID) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift"})
	}

	day := today()
	all, err := h.Bookings.ListBookedByDate(ctx, day)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	board := booking.NewBoard(all, userID)

	seats := make([]seatView, 0, shift.SeatCount)
	if shiftID != "" {
		for _, s := range shift.SeatNumbers() {
			seats = append(seats, seatView{
				SeatNumber: s,
				Booked:     board.SeatBooked(shiftID, s),
				Mine:       board.UserSeatForShift(shiftID) == s,
			})
		}
	}

	mine := make([]bookingView, 0, len(board.Mine))
	for _, b := range board.Mine {
		mine = append(mine, toBookingView(b))
	}

	return c.JSON(http.StatusOK, echo.Map{
		"admission": echo.Map{
			"id":              adm.ID,
			"payment_status":  adm.PaymentStatus,
			"selected_shifts": selected,
			"active":          adm.ActiveOn(time.Now().UTC()),
		},
		"date":        day,
		"shift":       shiftID,
		"seats":       seats,
		"my_bookings": mine,
	})
}

type bookReq struct {
	Shift      string `json:"shift"`
	SeatNumber string `json:"seat_number"`
}

// Book handles POST /v1/bookings.  Preconditions are validated
// locally before any write: a paid, currently valid admission that
// covers the requested shift, a known shift and seat id.  Conflict
// rules then run against a fresh snapshot, and the insert itself is
// the atomic insert-if-absent step.  On success the day's state is
// reloaded and returned alongside the new booking.
func (h *BookingHandler) Book(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req bookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Shift = strings.ToLower(strings.TrimSpace(req.Shift))
	req.SeatNumber = strings.ToUpper(strings.TrimSpace(req.SeatNumber))
	if req.Shift == "" || req.SeatNumber == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "shift and seat_number required"})
	}
	if !shift.Valid(req.Shift) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid shift"})
	}
	if !shift.ValidSeat(req.SeatNumber) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat number"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	adm, err := h.Admissions.LatestByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAdmissionNotFound) {
			return c.JSON(http.StatusForbidden, echo.Map{"error": "no admission on record"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if !adm.Paid() {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "admission payment pending"})
	}
	if !adm.ActiveOn(time.Now().UTC()) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "admission expired"})
	}
	if !containsShift(splitShifts(adm.SelectedShifts), req.Shift) {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "shift not covered by admission"})
	}

	day := today()
	all, err := h.Bookings.ListBookedByDate(ctx, day)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	board := booking.NewBoard(all, userID)
	if err := board.Check(req.Shift, req.SeatNumber); err != nil {
		switch {
		case errors.Is(err, booking.ErrShiftAlreadyBooked):
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "shift already booked",
				"seat":  board.UserSeatForShift(req.Shift),
			})
		case errors.Is(err, booking.ErrSeatTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat already taken"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	rec := &model.SeatBooking{
		UserID:      userID,
		Shift:       req.Shift,
		SeatNumber:  req.SeatNumber,
		BookingDate: mustParseDay(day),
	}
	if err := h.Bookings.InsertBooked(ctx, rec); err != nil {
		// The snapshot passed but the unique index disagreed:
		// someone else won the race between our read and write.
		switch {
		case errors.Is(err, repository.ErrSeatTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat already taken"})
		case errors.Is(err, repository.ErrShiftAlreadyBooked):
			return c.JSON(http.StatusConflict, echo.Map{"error": "shift already booked"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}

	// Best-effort event; a broker outage never fails the booking.
	go func(ev queue.SeatBookedEvent) {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer pubCancel()
		_ = queue_publisher.PublishSeatBooked(pubCtx, ev)
	}(queue.SeatBookedEvent{
		BookingID:   rec.ID,
		UserID:      userID,
		Shift:       rec.Shift,
		SeatNumber:  rec.SeatNumber,
		BookingDate: day,
		BookedAt:    time.Now().UTC().Format(time.RFC3339),
	})

	// Refresh so the response reflects the committed state.
	mine, err := h.Bookings.ListBookedByDateAndUser(ctx, day, userID)
	if err != nil {
		mine = []model.SeatBooking{*rec}
	}
	views := make([]bookingView, 0, len(mine))
	for _, b := range mine {
		views = append(views, toBookingView(b))
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"booking":     toBookingView(*rec),
		"my_bookings": views,
	})
}

// MyBookings handles GET /v1/bookings/mine.  It returns the caller's
// booked seats for today.
func (h *BookingHandler) MyBookings(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	mine, err := h.Bookings.ListBookedByDateAndUser(ctx, today(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	views := make([]bookingView, 0, len(mine))
	for _, b := range mine {
		views = append(views, toBookingView(b))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": views})
}

// splitShifts parses the comma separated selected_shifts column.
func splitShifts(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func containsShift(ids []string, id string) bool {
	for _, s := range ids {
		if s == id {
			return true
		}
	}
	return false
}

// mustParseDay converts a wire-format date produced by today() back
// to time.Time.  It cannot fail for values this package generates.
func mustParseDay(day string) time.Time {
	t, _ := time.Parse(dateLayout, day)
	return t
}
