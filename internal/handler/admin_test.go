package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/library-seat-booking/internal/repository"
)

func newAdminHandler() *AdminHandler {
	return NewAdminHandler(
		repository.NewAdmissionRepo(nil),
		repository.NewBookingRepo(nil),
		repository.NewAttendanceRepo(nil),
		repository.NewHelpRepo(nil),
	)
}

func adminGet(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// Query-parameter validation rejects before any repository access;
// the handler below has no live DB behind it.
func TestAdminQueryValidation(t *testing.T) {
	h := newAdminHandler()

	tests := []struct {
		name   string
		call   func(echo.Context) error
		target string
	}{
		{"bookings bad date", h.Bookings, "/v1/admin/bookings?date=yesterday"},
		{"admissions bad status", h.Admissions, "/v1/admin/admissions?status=unpaid"},
		{"attendance missing shift", h.Attendance, "/v1/admin/attendance"},
		{"attendance bad shift", h.Attendance, "/v1/admin/attendance?shift=midnight"},
		{"attendance bad date", h.Attendance, "/v1/admin/attendance?shift=morning&date=nope"},
		{"help bad status", h.HelpRequests, "/v1/admin/help?status=closed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := adminGet(tt.target)
			require.NoError(t, tt.call(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestAdminRespondValidation(t *testing.T) {
	h := newAdminHandler()

	post := func(id, body string) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/v1/admin/help/"+id+"/respond", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		require.NoError(t, h.Respond(c))
		return rec
	}

	assert.Equal(t, http.StatusBadRequest, post("abc", `{"response":"done","status":"resolved"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post("3", `{"response":"","status":"resolved"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post("3", `{"response":"done","status":"closed"}`).Code)
}
