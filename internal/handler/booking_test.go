package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/library-seat-booking/internal/model"
	"github.com/iliyamo/library-seat-booking/internal/repository"
)

// stubAdmissions satisfies admissionSource without a database.
type stubAdmissions struct {
	adm model.Admission
	err error
}

func (s stubAdmissions) LatestByUser(context.Context, uint64) (model.Admission, error) {
	return s.adm, s.err
}

// stubBookings satisfies bookingStore; inserts are recorded in memory.
type stubBookings struct {
	all       []model.SeatBooking
	insertErr error
	inserted  *model.SeatBooking
}

func (s *stubBookings) InsertBooked(_ context.Context, b *model.SeatBooking) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	b.ID = 101
	b.Status = model.BookingBooked
	s.inserted = b
	return nil
}

func (s *stubBookings) ListBookedByDate(context.Context, string) ([]model.SeatBooking, error) {
	return s.all, nil
}

func (s *stubBookings) ListBookedByDateAndUser(_ context.Context, _ string, userID uint64) ([]model.SeatBooking, error) {
	out := []model.SeatBooking{}
	for _, b := range s.all {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	if s.inserted != nil && s.inserted.UserID == userID {
		out = append(out, *s.inserted)
	}
	return out, nil
}

func paidAdmission(shifts string) model.Admission {
	start := time.Now().UTC().AddDate(0, 0, -1)
	end := start.AddDate(0, 3, 0)
	return model.Admission{
		ID:             5,
		UserID:         7,
		SelectedShifts: shifts,
		PaymentStatus:  model.PaymentPaid,
		StartDate:      &start,
		EndDate:        &end,
	}
}

func newBookCtx(body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", float64(7))
	return c, rec
}

// Validation failures must be rejected before any repository access;
// the handler below has live *sql.DB-backed repos with no DB.
func TestBookValidation(t *testing.T) {
	h := NewBookingHandler(repository.NewAdmissionRepo(nil), repository.NewBookingRepo(nil))

	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"missing seat", `{"shift":"morning"}`},
		{"unknown shift", `{"shift":"midnight","seat_number":"S1"}`},
		{"seat zero", `{"shift":"morning","seat_number":"S0"}`},
		{"seat out of range", `{"shift":"morning","seat_number":"S51"}`},
		{"padded seat", `{"shift":"morning","seat_number":"S01"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newBookCtx(tt.body)
			require.NoError(t, h.Book(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// Shift ids and seat numbers are normalized before validation, so
// clients may send "Morning" or "s12"; the stored row carries the
// canonical forms.
func TestBookNormalizesInput(t *testing.T) {
	store := &stubBookings{}
	h := NewBookingHandler(stubAdmissions{adm: paidAdmission("morning,noon")}, store)

	c, rec := newBookCtx(`{"shift":" Morning ","seat_number":"s12"}`)
	require.NoError(t, h.Book(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, store.inserted)
	assert.Equal(t, "morning", store.inserted.Shift)
	assert.Equal(t, "S12", store.inserted.SeatNumber)
	assert.Equal(t, uint64(7), store.inserted.UserID)
}

// Admission preconditions gate every booking write: no admission,
// unpaid, expired window, or a shift outside the admission all
// reject with 403 and nothing reaches the store.
func TestBookAdmissionPreconditions(t *testing.T) {
	expired := paidAdmission("morning")
	pastStart := time.Now().UTC().AddDate(0, -4, 0)
	pastEnd := time.Now().UTC().AddDate(0, -1, 0)
	expired.StartDate = &pastStart
	expired.EndDate = &pastEnd

	unpaid := paidAdmission("morning")
	unpaid.PaymentStatus = model.PaymentPending
	unpaid.StartDate = nil
	unpaid.EndDate = nil

	tests := []struct {
		name       string
		admissions stubAdmissions
		errMsg     string
	}{
		{"no admission", stubAdmissions{err: repository.ErrAdmissionNotFound}, "no admission on record"},
		{"unpaid admission", stubAdmissions{adm: unpaid}, "admission payment pending"},
		{"expired window", stubAdmissions{adm: expired}, "admission expired"},
		{"shift not covered", stubAdmissions{adm: paidAdmission("noon,evening")}, "shift not covered by admission"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &stubBookings{}
			h := NewBookingHandler(tt.admissions, store)

			c, rec := newBookCtx(`{"shift":"morning","seat_number":"S1"}`)
			require.NoError(t, h.Book(c))
			assert.Equal(t, http.StatusForbidden, rec.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.errMsg, resp["error"])
			assert.Nil(t, store.inserted)
		})
	}
}

func TestBookConflicts(t *testing.T) {
	admissions := stubAdmissions{adm: paidAdmission("morning,noon")}
	day := time.Now().UTC()

	t.Run("shift already booked", func(t *testing.T) {
		store := &stubBookings{all: []model.SeatBooking{
			{ID: 1, UserID: 7, Shift: "morning", SeatNumber: "S3", Status: model.BookingBooked, BookingDate: day},
		}}
		c, rec := newBookCtx(`{"shift":"morning","seat_number":"S9"}`)
		require.NoError(t, NewBookingHandler(admissions, store).Book(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "shift already booked")
		assert.Nil(t, store.inserted)
	})

	t.Run("seat taken by another user", func(t *testing.T) {
		store := &stubBookings{all: []model.SeatBooking{
			{ID: 2, UserID: 8, Shift: "morning", SeatNumber: "S9", Status: model.BookingBooked, BookingDate: day},
		}}
		c, rec := newBookCtx(`{"shift":"morning","seat_number":"S9"}`)
		require.NoError(t, NewBookingHandler(admissions, store).Book(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "seat already taken")
		assert.Nil(t, store.inserted)
	})

	// Snapshot passed but the unique index disagreed: the insert
	// races through and the duplicate maps back to a 409.
	t.Run("race lost on insert", func(t *testing.T) {
		store := &stubBookings{insertErr: repository.ErrSeatTaken}
		c, rec := newBookCtx(`{"shift":"morning","seat_number":"S9"}`)
		require.NoError(t, NewBookingHandler(admissions, store).Book(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "seat already taken")
	})
}

func TestSplitShifts(t *testing.T) {
	assert.Equal(t, []string{"evening", "morning"}, splitShifts("evening,morning"))
	assert.Equal(t, []string{"noon"}, splitShifts("noon"))
	assert.Empty(t, splitShifts(""))
	assert.Equal(t, []string{"morning", "noon"}, splitShifts(" morning , noon ,"))
}

func TestContainsShift(t *testing.T) {
	sel := []string{"morning", "night"}
	assert.True(t, containsShift(sel, "night"))
	assert.False(t, containsShift(sel, "noon"))
	assert.False(t, containsShift(nil, "morning"))
}
